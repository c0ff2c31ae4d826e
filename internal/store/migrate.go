package store

import (
	"log"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/slugutil"
)

// MigrateLegacy runs once at startup. Old data files contain recipe IDs with
// a random suffix appended after the UUID and recipes saved before slugs
// existed; both are repaired in place. Comment foreign keys follow the
// recipe IDs. Idempotent: a clean data set passes through untouched.
func MigrateLegacy(s *Store) error {
	renamed := make(map[string]string)
	fixedSlugs := 0

	var recipes []models.Recipe
	err := s.Update("recipes", &recipes, func() error {
		seen := make(map[string]bool, len(recipes))
		for i := range recipes {
			seen[recipes[i].ID] = true
		}
		for i := range recipes {
			if normalized := slugutil.NormalizeID(recipes[i].ID); normalized != recipes[i].ID {
				if seen[normalized] {
					// Normalizing would collide with an existing record; leave it.
					continue
				}
				renamed[recipes[i].ID] = normalized
				seen[normalized] = true
				recipes[i].ID = normalized
			}
			if recipes[i].Slug == "" && recipes[i].Title != "" {
				recipes[i].Slug = slugutil.Slugify(recipes[i].Title)
				fixedSlugs++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(renamed) > 0 {
		var comments []models.Comment
		err = s.Update("comments", &comments, func() error {
			for i := range comments {
				if id, ok := renamed[comments[i].RecipeID]; ok {
					comments[i].RecipeID = id
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if len(renamed) > 0 || fixedSlugs > 0 {
		log.Printf("migration: normalized %d recipe IDs, backfilled %d slugs", len(renamed), fixedSlugs)
	}
	return nil
}
