package repository

import (
	"context"
	"fmt"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

const aboutCollection = "about"

type AboutRepositoryImpl struct {
	store *store.Store
}

func NewAboutRepository(s *store.Store) *AboutRepositoryImpl {
	return &AboutRepositoryImpl{store: s}
}

// Get returns the singleton about page, or a default skeleton when the file
// is absent.
func (r *AboutRepositoryImpl) Get(ctx context.Context) (*models.AboutPage, error) {
	var page models.AboutPage
	if err := r.store.LoadInto(aboutCollection, &page); err != nil {
		return nil, fmt.Errorf("load about page: %w", err)
	}
	if page.Title == "" {
		page.Title = "Apie mane"
		page.Subtitle = "Lidijos receptų dienoraštis"
	}
	if page.Sections == nil {
		page.Sections = []models.AboutSection{}
	}
	return &page, nil
}

func (r *AboutRepositoryImpl) Save(ctx context.Context, page *models.AboutPage) error {
	if page.Sections == nil {
		page.Sections = []models.AboutSection{}
	}
	if err := r.store.Save(aboutCollection, page); err != nil {
		return fmt.Errorf("save about page: %w", err)
	}
	return nil
}
