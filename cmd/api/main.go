package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JuliusM5/lidija-sub000/cmd/app"
	"github.com/JuliusM5/lidija-sub000/internal/config"
	handlers "github.com/JuliusM5/lidija-sub000/internal/handler"
	"github.com/JuliusM5/lidija-sub000/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	repo, services := app.App(cfg)
	handler := handlers.NewHandlers(repo, services, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	// Public API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/recipes", handler.GetRecipes).Methods(http.MethodGet)
	api.HandleFunc("/recipes/{id}", handler.GetRecipe).Methods(http.MethodGet)
	api.HandleFunc("/categories", handler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/tags", handler.GetTags).Methods(http.MethodGet)
	api.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/subscribe", handler.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/about", handler.GetAbout).Methods(http.MethodGet)

	// Admin API, bearer-token gated
	admin := r.PathPrefix("/admin-api").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.Auth(services.Auth)))
	admin.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	admin.HandleFunc("/auth/verify", handler.Verify).Methods(http.MethodGet)
	admin.HandleFunc("/recipes", handler.AdminListRecipes).Methods(http.MethodGet)
	admin.HandleFunc("/recipes", handler.AdminCreateRecipe).Methods(http.MethodPost)
	admin.HandleFunc("/recipes/{id}", handler.AdminGetRecipe).Methods(http.MethodGet)
	admin.HandleFunc("/recipes/{id}", handler.AdminUpdateRecipe).Methods(http.MethodPut)
	admin.HandleFunc("/recipes/{id}", handler.AdminDeleteRecipe).Methods(http.MethodDelete)
	admin.HandleFunc("/comments", handler.AdminListComments).Methods(http.MethodGet)
	admin.HandleFunc("/comments/{id}/status", handler.AdminSetCommentStatus).Methods(http.MethodPut)
	admin.HandleFunc("/comments/{id}", handler.AdminDeleteComment).Methods(http.MethodDelete)
	admin.HandleFunc("/media", handler.AdminListMedia).Methods(http.MethodGet)
	admin.HandleFunc("/media", handler.AdminUploadMedia).Methods(http.MethodPost)
	admin.HandleFunc("/media/{directory}/{filename}", handler.AdminDeleteMedia).Methods(http.MethodDelete)
	admin.HandleFunc("/about", handler.GetAbout).Methods(http.MethodGet)
	admin.HandleFunc("/about", handler.AdminUpdateAbout).Methods(http.MethodPut)
	admin.HandleFunc("/subscribers", handler.AdminListSubscribers).Methods(http.MethodGet)
	admin.HandleFunc("/subscribers/{id}", handler.AdminDeleteSubscriber).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", handler.AdminStats).Methods(http.MethodGet)

	// Uploaded images
	r.PathPrefix("/img/").Handler(http.StripPrefix("/img/", http.FileServer(http.Dir(cfg.UploadsDir))))

	handlerChain := middleware.Chain(
		r,
		middleware.CORS,
		middleware.Recover,
		middleware.Logging,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("server listening on %s (env %s)", addr, cfg.AppEnv)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
