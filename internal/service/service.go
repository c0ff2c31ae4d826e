package service

import (
	"github.com/JuliusM5/lidija-sub000/internal/config"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

type Service struct {
	Auth    AuthService
	Recipe  RecipeService
	Comment CommentService
	Media   MediaService
}

func NewService(repo *repository.Repository, cfg *config.Config, uploads *store.Uploads) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, cfg),
		Recipe:  NewRecipeService(repo.Recipe, uploads),
		Comment: NewCommentService(repo.Comment),
		Media:   NewMediaService(repo.Media, uploads),
	}
}
