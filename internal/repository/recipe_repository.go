package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/slugutil"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

const (
	recipesCollection = "recipes"

	defaultPublicLimit = 12
	maxPublicLimit     = 50
	highlightLimit     = 6 // implicit cap for latest/popular shelves
	defaultPerPage     = 10
	maxPerPage         = 100
)

type RecipeRepositoryImpl struct {
	store *store.Store
}

func NewRecipeRepository(s *store.Store) *RecipeRepositoryImpl {
	return &RecipeRepositoryImpl{store: s}
}

// all loads the collection and backfills missing slugs, persisting the fix
// on the first read that needs it.
func (r *RecipeRepositoryImpl) all() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.store.LoadInto(recipesCollection, &recipes); err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	dirty := false
	for i := range recipes {
		if recipes[i].Slug == "" && recipes[i].Title != "" {
			recipes[i].Slug = slugutil.Slugify(recipes[i].Title)
			dirty = true
		}
	}
	if dirty {
		if err := r.store.Save(recipesCollection, recipes); err != nil {
			return nil, fmt.Errorf("backfill slugs: %w", err)
		}
	}
	return recipes, nil
}

// allPublished feeds the derived category/tag aggregation.
func (r *RecipeRepositoryImpl) allPublished() ([]models.Recipe, error) {
	recipes, err := r.all()
	if err != nil {
		return nil, err
	}
	out := recipes[:0:0]
	for _, rec := range recipes {
		if rec.Status == models.RecipeStatusPublished {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matchesFilter(rec models.Recipe, filter RecipeFilter) bool {
	if filter.Status != "" && rec.Status != filter.Status {
		return false
	}
	if filter.Featured != nil && rec.Featured != *filter.Featured {
		return false
	}
	if filter.Category != "" && !containsFold(rec.Categories, filter.Category) {
		return false
	}
	if filter.Tag != "" && !containsFold(rec.Tags, filter.Tag) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(rec.Title), needle) &&
			!strings.Contains(strings.ToLower(rec.Intro), needle) {
			return false
		}
	}
	return true
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func (r *RecipeRepositoryImpl) filtered(filter RecipeFilter) ([]models.Recipe, error) {
	recipes, err := r.all()
	if err != nil {
		return nil, err
	}

	var out []models.Recipe
	for _, rec := range recipes {
		if matchesFilter(rec, filter) {
			out = append(out, rec)
		}
	}

	if filter.Popular {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *RecipeRepositoryImpl) List(ctx context.Context, filter RecipeFilter, p OffsetPagination) ([]models.Recipe, OffsetMeta, error) {
	recipes, err := r.filtered(filter)
	if err != nil {
		return nil, OffsetMeta{}, err
	}

	if p.Limit <= 0 {
		if filter.Latest || filter.Popular {
			p.Limit = highlightLimit
		} else {
			p.Limit = defaultPublicLimit
		}
	}
	if p.Limit > maxPublicLimit {
		p.Limit = maxPublicLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	total := len(recipes)
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	meta := OffsetMeta{
		Total:   total,
		Offset:  p.Offset,
		Limit:   p.Limit,
		HasMore: p.Offset+p.Limit < total,
	}
	return recipes[start:end], meta, nil
}

func (r *RecipeRepositoryImpl) ListPaged(ctx context.Context, filter RecipeFilter, p PagePagination) ([]models.Recipe, PageMeta, error) {
	recipes, err := r.filtered(filter)
	if err != nil {
		return nil, PageMeta{}, err
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}

	total := len(recipes)
	pages := (total + p.PerPage - 1) / p.PerPage
	start := (p.Page - 1) * p.PerPage
	if start > total {
		start = total
	}
	end := start + p.PerPage
	if end > total {
		end = total
	}

	meta := PageMeta{Total: total, Page: p.Page, PerPage: p.PerPage, Pages: pages}
	return recipes[start:end], meta, nil
}

func (r *RecipeRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	recipes, err := r.all()
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
}

// GetPublished resolves a published recipe by ID or slug and increments its
// view counter as a side effect, persisting immediately.
func (r *RecipeRepositoryImpl) GetPublished(ctx context.Context, idOrSlug string) (*models.Recipe, error) {
	var recipes []models.Recipe
	var found *models.Recipe

	err := r.store.Update(recipesCollection, &recipes, func() error {
		for i := range recipes {
			rec := &recipes[i]
			if rec.Status != models.RecipeStatusPublished {
				continue
			}
			if rec.ID == idOrSlug || (rec.Slug != "" && rec.Slug == idOrSlug) {
				rec.Views++
				copied := *rec
				found = &copied
				return nil
			}
		}
		return fmt.Errorf("recipe %s: %w", idOrSlug, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = store.NewID()
	}
	if recipe.Slug == "" {
		recipe.Slug = slugutil.Slugify(recipe.Title)
	}
	if recipe.Status == "" {
		recipe.Status = models.RecipeStatusDraft
	}
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	recipe.Views = 0
	normalizeLists(recipe)

	var recipes []models.Recipe
	return r.store.Update(recipesCollection, &recipes, func() error {
		for i := range recipes {
			if recipes[i].ID == recipe.ID {
				return fmt.Errorf("recipe %s: %w", recipe.ID, ErrDuplicate)
			}
		}
		recipes = append(recipes, *recipe)
		return nil
	})
}

// Update replaces the editable fields of an existing recipe. CreatedAt and
// Views are preserved; the slug follows the title when it changes.
func (r *RecipeRepositoryImpl) Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	var recipes []models.Recipe
	var updated *models.Recipe

	err := r.store.Update(recipesCollection, &recipes, func() error {
		for i := range recipes {
			if recipes[i].ID != recipe.ID {
				continue
			}
			existing := recipes[i]

			recipe.CreatedAt = existing.CreatedAt
			recipe.Views = existing.Views
			recipe.UpdatedAt = time.Now().UTC()
			if recipe.Title != existing.Title || recipe.Slug == "" {
				recipe.Slug = slugutil.Slugify(recipe.Title)
			}
			if recipe.Image == "" {
				recipe.Image = existing.Image
			}
			normalizeLists(recipe)

			recipes[i] = *recipe
			copied := recipes[i]
			updated = &copied
			return nil
		}
		return fmt.Errorf("recipe %s: %w", recipe.ID, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record and returns it so the caller can clean up the
// image file.
func (r *RecipeRepositoryImpl) Delete(ctx context.Context, id string) (*models.Recipe, error) {
	var recipes []models.Recipe
	var deleted *models.Recipe

	err := r.store.Update(recipesCollection, &recipes, func() error {
		for i := range recipes {
			if recipes[i].ID == id {
				copied := recipes[i]
				deleted = &copied
				recipes = append(recipes[:i], recipes[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *RecipeRepositoryImpl) Count(ctx context.Context) (int, int, error) {
	recipes, err := r.all()
	if err != nil {
		return 0, 0, err
	}
	published, drafts := 0, 0
	for _, rec := range recipes {
		if rec.Status == models.RecipeStatusPublished {
			published++
		} else {
			drafts++
		}
	}
	return published, drafts, nil
}

// normalizeLists keeps list fields JSON-friendly: never null, entries trimmed.
func normalizeLists(recipe *models.Recipe) {
	recipe.Categories = cleanList(recipe.Categories)
	recipe.Tags = cleanList(recipe.Tags)
	recipe.Ingredients = cleanList(recipe.Ingredients)
	recipe.Steps = cleanList(recipe.Steps)
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
