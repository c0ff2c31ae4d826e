package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/JuliusM5/lidija-sub000/internal/config"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	RecipeService  service.RecipeService
	CommentService service.CommentService
	MediaService   service.MediaService
	RecipeRepo     repository.RecipeRepository
	CommentRepo    repository.CommentRepository
	CategoryRepo   repository.CategoryRepository
	MediaRepo      repository.MediaRepository
	AboutRepo      repository.AboutRepository
	SubscriberRepo repository.SubscriberRepository
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		RecipeService:  services.Recipe,
		CommentService: services.Comment,
		MediaService:   services.Media,
		RecipeRepo:     repo.Recipe,
		CommentRepo:    repo.Comment,
		CategoryRepo:   repo.Category,
		MediaRepo:      repo.Media,
		AboutRepo:      repo.About,
		SubscriberRepo: repo.Subscriber,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
