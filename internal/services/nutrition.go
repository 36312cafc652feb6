package services

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/nutrition.yaml
var defaultNutritionYAML []byte

var ErrNutritionCatalogInvalid = errors.New("nutrition catalog invalid")

type MealPlan struct {
	Breakfast []string `yaml:"breakfast"`
	Lunch     []string `yaml:"lunch"`
	Dinner    []string `yaml:"dinner"`
	Snack     []string `yaml:"snack"`
}

type NutritionAdvice struct {
	Symptom string   `yaml:"-"`
	Meals   MealPlan `yaml:"meals"`
	Tips    []string `yaml:"tips"`
}

// NutritionCatalog is loaded once at startup and only read afterwards.
type NutritionCatalog struct {
	entries map[string]NutritionAdvice
}

func DefaultNutritionCatalog() (*NutritionCatalog, error) {
	return ParseNutritionCatalog(defaultNutritionYAML)
}

func ParseNutritionCatalog(raw []byte) (*NutritionCatalog, error) {
	parsed := make(map[string]NutritionAdvice)
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNutritionCatalogInvalid, err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrNutritionCatalogInvalid)
	}

	entries := make(map[string]NutritionAdvice, len(parsed))
	for name, advice := range parsed {
		key := NutritionSymptomKey(name)
		if key == "" {
			return nil, fmt.Errorf("%w: empty symptom name", ErrNutritionCatalogInvalid)
		}
		if _, exists := entries[key]; exists {
			return nil, fmt.Errorf("%w: duplicate symptom %q", ErrNutritionCatalogInvalid, key)
		}
		advice.Symptom = key
		entries[key] = advice
	}
	return &NutritionCatalog{entries: entries}, nil
}

// NutritionSymptomKey folds "Mood swings", "mood-swings" and "MOOD_SWINGS" to one key.
func NutritionSymptomKey(symptom string) string {
	key := strings.ToLower(strings.TrimSpace(symptom))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	return key
}

func (catalog *NutritionCatalog) Lookup(symptom string) (NutritionAdvice, bool) {
	advice, ok := catalog.entries[NutritionSymptomKey(symptom)]
	return advice, ok
}

// AdviceFor returns advice for known symptoms in input order, once each.
func (catalog *NutritionCatalog) AdviceFor(symptoms []string) []NutritionAdvice {
	seen := make(map[string]bool, len(symptoms))
	advice := make([]NutritionAdvice, 0, len(symptoms))
	for _, symptom := range symptoms {
		entry, ok := catalog.Lookup(symptom)
		if !ok || seen[entry.Symptom] {
			continue
		}
		seen[entry.Symptom] = true
		advice = append(advice, entry)
	}
	return advice
}

func (catalog *NutritionCatalog) Symptoms() []string {
	names := make([]string, 0, len(catalog.entries))
	for name := range catalog.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
