package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/slugutil"
)

// categoryDescriptions is the static Lithuanian description table. Categories
// outside it fall back to a templated default.
var categoryDescriptions = map[string]string{
	"Pusryčiai":   "Receptai geram dienos startui – nuo košių iki omletų.",
	"Pietūs":      "Sotūs pietų patiekalai visai šeimai.",
	"Vakarienė":   "Lengvi ir greiti vakarienės receptai.",
	"Desertai":    "Saldumynai, pyragai ir kiti gardumynai.",
	"Sriubos":     "Šiltos ir šaltos sriubos kiekvienam sezonui.",
	"Užkandžiai":  "Greiti užkandžiai svečiams ir kasdienai.",
	"Salotos":     "Gaivios salotos iš sezoninių daržovių.",
	"Gėrimai":     "Namų gamybos gėrimai ir kokteiliai.",
	"Konservavimas": "Atsargos žiemai – marinatai, uogienės, raugintos daržovės.",
}

func describeCategory(name string) string {
	if desc, ok := categoryDescriptions[name]; ok {
		return desc
	}
	for key, desc := range categoryDescriptions {
		if strings.EqualFold(key, name) {
			return desc
		}
	}
	return fmt.Sprintf("Visi „%s“ kategorijos receptai.", name)
}

// CategoryRepositoryImpl derives categories and tags from the published
// recipes on every call; nothing is persisted. Acceptable while the recipe
// collection stays small enough to scan per request.
type CategoryRepositoryImpl struct {
	recipes *RecipeRepositoryImpl
}

func NewCategoryRepository(recipes *RecipeRepositoryImpl) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{recipes: recipes}
}

func (r *CategoryRepositoryImpl) derive() ([]models.Category, error) {
	recipes, err := r.recipes.allPublished()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	names := make(map[string]string) // lowercase -> first-seen spelling
	for _, rec := range recipes {
		for _, cat := range rec.Categories {
			key := strings.ToLower(cat)
			if _, ok := names[key]; !ok {
				names[key] = cat
			}
			counts[key]++
		}
	}

	categories := make([]models.Category, 0, len(counts))
	for key, count := range counts {
		name := names[key]
		categories = append(categories, models.Category{
			Name:        name,
			Slug:        slugutil.Slugify(name),
			Description: describeCategory(name),
			RecipeCount: count,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
	return categories, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, p PagePagination) ([]models.Category, PageMeta, error) {
	categories, err := r.derive()
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

	total := len(categories)
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
	return categories[start:end], meta, nil
}

// Get resolves a category by name or slug.
func (r *CategoryRepositoryImpl) Get(ctx context.Context, name string) (*models.Category, error) {
	categories, err := r.derive()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) || categories[i].Slug == slugutil.Slugify(name) {
			return &categories[i], nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", name, ErrNotFound)
}

func (r *CategoryRepositoryImpl) Tags(ctx context.Context) ([]models.TagCount, error) {
	recipes, err := r.recipes.allPublished()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	for _, rec := range recipes {
		for _, tag := range rec.Tags {
			key := strings.ToLower(tag)
			if _, ok := names[key]; !ok {
				names[key] = tag
			}
			counts[key]++
		}
	}

	tags := make([]models.TagCount, 0, len(counts))
	for key, count := range counts {
		tags = append(tags, models.TagCount{Name: names[key], Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i].Name) < strings.ToLower(tags[j].Name)
	})
	return tags, nil
}
