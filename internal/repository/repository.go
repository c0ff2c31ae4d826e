package repository

import (
	"context"
	"errors"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
	ErrInvalid   = errors.New("invalid reference")
)

// OffsetPagination is the public API convention (?offset=&limit=).
type OffsetPagination struct {
	Offset int
	Limit  int
}

// PagePagination is the admin API convention (?page=&per_page=).
type PagePagination struct {
	Page    int
	PerPage int
}

type OffsetMeta struct {
	Total   int  `json:"total"`
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type PageMeta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Pages   int `json:"pages"`
}

type RecipeFilter struct {
	Status   string
	Featured *bool
	Category string
	Tag      string
	Search   string
	Latest   bool
	Popular  bool
}

type RecipeRepository interface {
	List(ctx context.Context, filter RecipeFilter, p OffsetPagination) ([]models.Recipe, OffsetMeta, error)
	ListPaged(ctx context.Context, filter RecipeFilter, p PagePagination) ([]models.Recipe, PageMeta, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	GetPublished(ctx context.Context, idOrSlug string) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	Delete(ctx context.Context, id string) (*models.Recipe, error)
	Count(ctx context.Context) (published int, drafts int, err error)
}

type CommentFilter struct {
	RecipeID string
	Status   string
}

type CommentRepository interface {
	ListThreads(ctx context.Context, recipeID string) ([]models.CommentThread, error)
	ListPaged(ctx context.Context, filter CommentFilter, p PagePagination) ([]models.Comment, PageMeta, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	SetStatus(ctx context.Context, id, status string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	CountPending(ctx context.Context) (int, error)
}

type CategoryRepository interface {
	List(ctx context.Context, p PagePagination) ([]models.Category, PageMeta, error)
	Get(ctx context.Context, name string) (*models.Category, error)
	Tags(ctx context.Context) ([]models.TagCount, error)
}

type MediaRepository interface {
	List(ctx context.Context, directory string) ([]models.MediaFile, error)
	Delete(ctx context.Context, directory, filename string) error
	Count(ctx context.Context) (int, error)
}

type AboutRepository interface {
	Get(ctx context.Context) (*models.AboutPage, error)
	Save(ctx context.Context, page *models.AboutPage) error
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type SubscriberRepository interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Create(ctx context.Context, email string) (*models.Subscriber, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Recipe     RecipeRepository
	Comment    CommentRepository
	Category   CategoryRepository
	Media      MediaRepository
	About      AboutRepository
	User       UserRepository
	Subscriber SubscriberRepository
}

func NewRepository(s *store.Store, uploads *store.Uploads) *Repository {
	recipes := NewRecipeRepository(s)
	return &Repository{
		Recipe:     recipes,
		Comment:    NewCommentRepository(s, recipes),
		Category:   NewCategoryRepository(recipes),
		Media:      NewMediaRepository(uploads),
		About:      NewAboutRepository(s),
		User:       NewUserRepository(s),
		Subscriber: NewSubscriberRepository(s),
	}
}
