package repository

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

// MediaRepositoryImpl derives the media list from the upload directories;
// there is no persisted metadata beyond the filesystem stat.
type MediaRepositoryImpl struct {
	uploads *store.Uploads
}

func NewMediaRepository(uploads *store.Uploads) *MediaRepositoryImpl {
	return &MediaRepositoryImpl{uploads: uploads}
}

func (r *MediaRepositoryImpl) List(ctx context.Context, directory string) ([]models.MediaFile, error) {
	dirs := store.KnownDirs
	if directory != "" {
		dirs = []string{filepath.Base(directory)}
	}

	files := []models.MediaFile{}
	for _, dir := range dirs {
		entries, err := os.ReadDir(r.uploads.Dir(dir))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !isImageEntry(e.Name()) {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			files = append(files, models.MediaFile{
				ID:         e.Name(),
				URL:        r.uploads.URL(dir, e.Name()),
				Directory:  dir,
				Type:       mime.TypeByExtension(filepath.Ext(e.Name())),
				Size:       info.Size(),
				ModifiedAt: info.ModTime(),
			})
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

func (r *MediaRepositoryImpl) Delete(ctx context.Context, directory, filename string) error {
	err := r.uploads.Remove(directory, filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("media file %s/%s: %w", directory, filename, ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *MediaRepositoryImpl) Count(ctx context.Context) (int, error) {
	return r.uploads.Count(), nil
}

func isImageEntry(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}
