package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/xid"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

const commentsCollection = "comments"

type CommentRepositoryImpl struct {
	store   *store.Store
	recipes RecipeRepository
}

func NewCommentRepository(s *store.Store, recipes RecipeRepository) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{store: s, recipes: recipes}
}

func (r *CommentRepositoryImpl) all() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.store.LoadInto(commentsCollection, &comments); err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	return comments, nil
}

// ListThreads returns the approved comments of a recipe as a two-level
// structure: top-level comments newest-first, each carrying its replies in
// chronological order. Replies of unapproved parents are dropped.
func (r *CommentRepositoryImpl) ListThreads(ctx context.Context, recipeID string) ([]models.CommentThread, error) {
	comments, err := r.all()
	if err != nil {
		return nil, err
	}

	threads := []models.CommentThread{}
	byID := make(map[string]int)
	for _, c := range comments {
		if c.RecipeID != recipeID || c.Status != models.CommentStatusApproved || c.ParentID != "" {
			continue
		}
		byID[c.ID] = len(threads)
		threads = append(threads, models.CommentThread{Comment: c, Replies: []models.Comment{}})
	}

	for _, c := range comments {
		if c.RecipeID != recipeID || c.Status != models.CommentStatusApproved || c.ParentID == "" {
			continue
		}
		if idx, ok := byID[c.ParentID]; ok {
			threads[idx].Replies = append(threads[idx].Replies, c)
		}
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].CreatedAt.After(threads[j].CreatedAt)
	})
	for i := range threads {
		replies := threads[i].Replies
		sort.SliceStable(replies, func(a, b int) bool {
			return replies[a].CreatedAt.Before(replies[b].CreatedAt)
		})
	}
	return threads, nil
}

func (r *CommentRepositoryImpl) ListPaged(ctx context.Context, filter CommentFilter, p PagePagination) ([]models.Comment, PageMeta, error) {
	comments, err := r.all()
	if err != nil {
		return nil, PageMeta{}, err
	}

	var out []models.Comment
	for _, c := range comments {
		if filter.RecipeID != "" && c.RecipeID != filter.RecipeID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}

	total := len(out)
	start := (p.Page - 1) * p.PerPage
	if start > total {
		start = total
	}
	end := start + p.PerPage
	if end > total {
		end = total
	}

	meta := PageMeta{
		Total:   total,
		Page:    p.Page,
		PerPage: p.PerPage,
		Pages:   (total + p.PerPage - 1) / p.PerPage,
	}
	return out[start:end], meta, nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	comments, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i], nil
		}
	}
	return nil, fmt.Errorf("comment %s: %w", id, ErrNotFound)
}

// Create stores a new comment. The referenced recipe must exist; a reply's
// parent must exist and belong to the same recipe.
func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if _, err := r.recipes.GetByID(ctx, comment.RecipeID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("recipe %s: %w", comment.RecipeID, ErrInvalid)
		}
		return err
	}

	if comment.ID == "" {
		comment.ID = xid.New().String()
	}
	if comment.Status == "" {
		comment.Status = models.CommentStatusPending
	}
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	var comments []models.Comment
	return r.store.Update(commentsCollection, &comments, func() error {
		if comment.ParentID != "" {
			var parent *models.Comment
			for i := range comments {
				if comments[i].ID == comment.ParentID {
					parent = &comments[i]
					break
				}
			}
			if parent == nil {
				return fmt.Errorf("parent comment %s: %w", comment.ParentID, ErrInvalid)
			}
			if parent.RecipeID != comment.RecipeID {
				return fmt.Errorf("parent comment belongs to another recipe: %w", ErrInvalid)
			}
		}
		comments = append(comments, *comment)
		return nil
	})
}

func (r *CommentRepositoryImpl) SetStatus(ctx context.Context, id, status string) (*models.Comment, error) {
	switch status {
	case models.CommentStatusPending, models.CommentStatusApproved, models.CommentStatusSpam:
	default:
		return nil, fmt.Errorf("unknown comment status %q: %w", status, ErrInvalid)
	}

	var comments []models.Comment
	var updated *models.Comment
	err := r.store.Update(commentsCollection, &comments, func() error {
		for i := range comments {
			if comments[i].ID == id {
				comments[i].Status = status
				comments[i].UpdatedAt = time.Now().UTC()
				copied := comments[i]
				updated = &copied
				return nil
			}
		}
		return fmt.Errorf("comment %s: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a comment and any replies pointing at it.
func (r *CommentRepositoryImpl) Delete(ctx context.Context, id string) error {
	var comments []models.Comment
	return r.store.Update(commentsCollection, &comments, func() error {
		found := false
		kept := comments[:0]
		for _, c := range comments {
			if c.ID == id {
				found = true
				continue
			}
			if c.ParentID == id {
				continue
			}
			kept = append(kept, c)
		}
		if !found {
			return fmt.Errorf("comment %s: %w", id, ErrNotFound)
		}
		comments = kept
		return nil
	})
}

func (r *CommentRepositoryImpl) CountPending(ctx context.Context) (int, error) {
	comments, err := r.all()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range comments {
		if c.Status == models.CommentStatusPending {
			n++
		}
	}
	return n, nil
}
