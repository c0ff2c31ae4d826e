package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

const recipeImageDir = "recipes"

// UploadedImage is an incoming multipart file, decoupled from net/http.
type UploadedImage struct {
	Filename string
	Reader   io.Reader
}

type RecipeService interface {
	Create(ctx context.Context, recipe *models.Recipe, image *UploadedImage) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe, image *UploadedImage) (*models.Recipe, error)
	Delete(ctx context.Context, id string) error
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
	uploads    *store.Uploads
}

func NewRecipeService(recipeRepo repository.RecipeRepository, uploads *store.Uploads) RecipeService {
	return &recipeService{recipeRepo: recipeRepo, uploads: uploads}
}

func (s *recipeService) Create(ctx context.Context, recipe *models.Recipe, image *UploadedImage) (*models.Recipe, error) {
	if image != nil {
		filename, err := s.uploads.SaveImage(recipeImageDir, image.Filename, image.Reader)
		if err != nil {
			return nil, fmt.Errorf("upload recipe image: %w", err)
		}
		recipe.Image = filename
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		if recipe.Image != "" {
			s.uploads.Remove(recipeImageDir, recipe.Image)
		}
		return nil, err
	}
	return recipe, nil
}

// Update replaces the stored image only when a new file is supplied; the
// previous file is removed after the record update succeeds.
func (s *recipeService) Update(ctx context.Context, recipe *models.Recipe, image *UploadedImage) (*models.Recipe, error) {
	existing, err := s.recipeRepo.GetByID(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	oldImage := existing.Image
	if image != nil {
		filename, err := s.uploads.SaveImage(recipeImageDir, image.Filename, image.Reader)
		if err != nil {
			return nil, fmt.Errorf("upload recipe image: %w", err)
		}
		recipe.Image = filename
	}

	updated, err := s.recipeRepo.Update(ctx, recipe)
	if err != nil {
		if image != nil && recipe.Image != "" {
			s.uploads.Remove(recipeImageDir, recipe.Image)
		}
		return nil, err
	}

	if image != nil && oldImage != "" && oldImage != updated.Image {
		if err := s.uploads.Remove(recipeImageDir, oldImage); err != nil {
			log.Printf("could not remove replaced image %s: %v", oldImage, err)
		}
	}
	return updated, nil
}

// Delete removes the record, then unlinks its image best-effort: a failed
// file removal is logged, never surfaced.
func (s *recipeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.recipeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.Image != "" {
		if err := s.uploads.Remove(recipeImageDir, deleted.Image); err != nil {
			log.Printf("could not remove image of deleted recipe %s: %v", id, err)
		}
	}
	return nil
}
