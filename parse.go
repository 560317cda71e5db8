package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadFoods reads a food catalog JSON file: an array of objects with
// capitalized keys. Missing Tastiness defaults to unrated.
func LoadFoods(path string) ([]Food, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parseFoods(string(raw))
}

func parseFoods(raw string) ([]Food, error) {
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("catalog is not a JSON array")
	}

	var foods []Food
	var parseErr error
	parsed.ForEach(func(_, item gjson.Result) bool {
		f := Food{
			Name:      item.Get("Name").String(),
			Calories:  item.Get("Calories").Float(),
			Carbs:     item.Get("Carbs").Float(),
			Protein:   item.Get("Protein").Float(),
			Fats:      item.Get("Fats").Float(),
			Vitamins:  item.Get("Vitamins").Float(),
			Tastiness: TastinessUnrated,
			Stomach:   int(item.Get("Stomach").Int()),
			Available: int(item.Get("Available").Int()),
		}
		if t := item.Get("Tastiness"); t.Exists() {
			f.Tastiness = int(t.Int())
		}
		if err := f.Validate(); err != nil {
			parseErr = err
			return false
		}
		foods = append(foods, f)
		return true
	})
	if parseErr != nil {
		return nil, fmt.Errorf("parse catalog: %w", parseErr)
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return foods, nil
}

// SaveFoods writes the catalog back with indentation, preserving the
// capitalized key format LoadFoods reads.
func SaveFoods(path string, foods []Food) error {
	data, err := json.MarshalIndent(foods, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
