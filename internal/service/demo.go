package service

import (
	"context"
	"log"

	"github.com/JuliusM5/lidija-sub000/internal/models"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
)

// demoRecipes replaces the old client-side sample content. It is only loaded
// when DEMO_MODE is set and the recipe collection is empty.
var demoRecipes = []models.Recipe{
	{
		Title:      "Cepelinai su mėsa",
		Intro:      "Tradiciniai lietuviški cepelinai su maltos mėsos įdaru ir spirgučių padažu.",
		Categories: []string{"Pietūs"},
		Tags:       []string{"bulvės", "tradicinis"},
		PrepTime:   "40 min",
		CookTime:   "30 min",
		Servings:   "4",
		Ingredients: []string{
			"2 kg bulvių",
			"400 g kiaulienos faršo",
			"1 svogūnas",
			"200 g rūkytos šoninės",
			"200 ml grietinės",
		},
		Steps: []string{
			"Dalį bulvių išvirkite ir sugrūskite, likusias sutarkuokite ir nuspauskite.",
			"Sumaišykite bulvių masę, įdėkite pasūdytą faršą ir suformuokite cepelinus.",
			"Virkite pasūdytame vandenyje apie 25 minutes.",
			"Paruoškite spirgučių ir grietinės padažą.",
		},
		Status:   models.RecipeStatusPublished,
		Featured: true,
	},
	{
		Title:      "Šaltibarščiai",
		Intro:      "Gaivi vasaros sriuba iš burokėlių ir kefyro.",
		Categories: []string{"Sriubos"},
		Tags:       []string{"vasara", "burokėliai"},
		PrepTime:   "15 min",
		CookTime:   "20 min",
		Servings:   "4",
		Ingredients: []string{
			"1 l kefyro",
			"2 virti burokėliai",
			"2 agurkai",
			"4 kiaušiniai",
			"krapų",
		},
		Steps: []string{
			"Sutarkuokite burokėlius ir supjaustykite agurkus.",
			"Užpilkite kefyru, pagardinkite krapais ir druska.",
			"Patiekite su virtomis bulvėmis ir kiaušiniu.",
		},
		Status:   models.RecipeStatusPublished,
		Featured: true,
	},
	{
		Title:      "Obuolių pyragas",
		Intro:      "Paprastas močiutės obuolių pyragas su cinamonu.",
		Categories: []string{"Desertai"},
		Tags:       []string{"obuoliai", "pyragas"},
		PrepTime:   "20 min",
		CookTime:   "45 min",
		Servings:   "8",
		Ingredients: []string{
			"5 obuoliai",
			"250 g miltų",
			"150 g cukraus",
			"3 kiaušiniai",
			"šaukštelis cinamono",
		},
		Steps: []string{
			"Išplakite kiaušinius su cukrumi, įmaišykite miltus.",
			"Sudėkite pjaustytus obuolius į formą, užpilkite tešla.",
			"Kepkite 180 °C orkaitėje apie 45 minutes.",
		},
		Status: models.RecipeStatusPublished,
	},
}

// SeedDemoData loads sample recipes through the normal repository path when
// the collection is empty. Gated by configuration, never by request failures.
func SeedDemoData(ctx context.Context, recipes repository.RecipeRepository) error {
	published, drafts, err := recipes.Count(ctx)
	if err != nil {
		return err
	}
	if published+drafts > 0 {
		return nil
	}

	for i := range demoRecipes {
		recipe := demoRecipes[i]
		if err := recipes.Create(ctx, &recipe); err != nil {
			return err
		}
	}
	log.Printf("demo mode: seeded %d sample recipes", len(demoRecipes))
	return nil
}
