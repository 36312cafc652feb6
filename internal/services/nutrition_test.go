package services

import (
	"errors"
	"testing"
)

func TestDefaultNutritionCatalog(t *testing.T) {
	catalog, err := DefaultNutritionCatalog()
	if err != nil {
		t.Fatalf("DefaultNutritionCatalog() unexpected error: %v", err)
	}

	symptoms := catalog.Symptoms()
	if len(symptoms) != 10 {
		t.Fatalf("expected 10 symptoms, got %d (%v)", len(symptoms), symptoms)
	}
	for _, symptom := range symptoms {
		advice, ok := catalog.Lookup(symptom)
		if !ok {
			t.Fatalf("expected lookup of %q to succeed", symptom)
		}
		if len(advice.Meals.Breakfast) == 0 || len(advice.Meals.Lunch) == 0 || len(advice.Meals.Dinner) == 0 || len(advice.Meals.Snack) == 0 {
			t.Fatalf("expected all meals for %q, got %#v", symptom, advice.Meals)
		}
		if len(advice.Tips) == 0 {
			t.Fatalf("expected tips for %q", symptom)
		}
	}
}

func TestNutritionCatalogLookupNormalizesKeys(t *testing.T) {
	catalog, err := DefaultNutritionCatalog()
	if err != nil {
		t.Fatalf("DefaultNutritionCatalog() unexpected error: %v", err)
	}

	for _, raw := range []string{"mood_swings", " Mood Swings ", "mood-swings"} {
		advice, ok := catalog.Lookup(raw)
		if !ok || advice.Symptom != "mood_swings" {
			t.Fatalf("expected %q to resolve to mood_swings, got %q (%v)", raw, advice.Symptom, ok)
		}
	}
	if _, ok := catalog.Lookup("hiccups"); ok {
		t.Fatalf("expected unknown symptom lookup to fail")
	}
}

func TestNutritionCatalogAdviceFor(t *testing.T) {
	catalog, err := DefaultNutritionCatalog()
	if err != nil {
		t.Fatalf("DefaultNutritionCatalog() unexpected error: %v", err)
	}

	advice := catalog.AdviceFor([]string{"Cramps", "hiccups", "fatigue", "cramps"})
	if len(advice) != 2 || advice[0].Symptom != "cramps" || advice[1].Symptom != "fatigue" {
		t.Fatalf("expected cramps then fatigue, got %#v", advice)
	}
	if got := catalog.AdviceFor(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty advice for no symptoms, got %#v", got)
	}
}

func TestParseNutritionCatalogRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "malformed", raw: "cramps: ["},
		{name: "duplicate after normalizing", raw: "mood swings:\n  tips: [a]\nmood_swings:\n  tips: [b]\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := ParseNutritionCatalog([]byte(testCase.raw)); !errors.Is(err, ErrNutritionCatalogInvalid) {
				t.Fatalf("expected ErrNutritionCatalogInvalid, got %v", err)
			}
		})
	}
}
