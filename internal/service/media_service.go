package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

type MediaService interface {
	Upload(ctx context.Context, directory string, image *UploadedImage) (*models.MediaFile, error)
	Delete(ctx context.Context, directory, filename string) error
}

type mediaService struct {
	mediaRepo repository.MediaRepository
	uploads   *store.Uploads
}

func NewMediaService(mediaRepo repository.MediaRepository, uploads *store.Uploads) MediaService {
	return &mediaService{mediaRepo: mediaRepo, uploads: uploads}
}

func (s *mediaService) Upload(ctx context.Context, directory string, image *UploadedImage) (*models.MediaFile, error) {
	if !isKnownDir(directory) {
		return nil, fmt.Errorf("unknown media directory %q: %w", directory, repository.ErrInvalid)
	}

	filename, err := s.uploads.SaveImage(directory, image.Filename, image.Reader)
	if err != nil {
		return nil, err
	}

	return &models.MediaFile{
		ID:         filename,
		URL:        s.uploads.URL(directory, filename),
		Directory:  directory,
		Type:       mime.TypeByExtension(filepath.Ext(filename)),
		ModifiedAt: time.Now().UTC(),
	}, nil
}

func (s *mediaService) Delete(ctx context.Context, directory, filename string) error {
	if !isKnownDir(directory) {
		return fmt.Errorf("unknown media directory %q: %w", directory, repository.ErrInvalid)
	}
	return s.mediaRepo.Delete(ctx, directory, filename)
}

func isKnownDir(directory string) bool {
	for _, d := range store.KnownDirs {
		if d == directory {
			return true
		}
	}
	return false
}
