package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// MealFood is one food entry extracted from a meal slot. It only lives
// between parsing and aggregation; it is never persisted on its own.
type MealFood struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
}

const (
	defaultQuantity = 100.0
	defaultUnit     = "g"
)

// Legacy free-text lines: optional leading quantity, optional unit token,
// then the food name.
var freeTextLine = regexp.MustCompile(`^(\d+)?\s*(g|kg|ml|L|unidade|un)?\s*(.+)$`)

// ParseMeal turns a meal slot's stored content into food entries. Slots have
// been stored in two formats over time: a JSON array of food objects (current
// app) and plain text with one item per line (legacy plans). ParseMeal is
// total: malformed input degrades to best-effort extraction or an empty list,
// so one broken slot never blocks a whole shopping list.
func ParseMeal(raw string) []MealFood {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		out := make([]MealFood, 0, len(entries))
		for _, e := range entries {
			f := MealFood{
				ID:       stringField(e, "id", "food_id"),
				Name:     stringField(e, "name", "food_name"),
				Quantity: numberField(e, defaultQuantity, "quantity", "serving_size"),
				Unit:     defaultUnit,
				Calories: numberField(e, 0, "calories"),
				Protein:  numberField(e, 0, "protein"),
				Carbs:    numberField(e, 0, "carbs"),
				Fat:      numberField(e, 0, "fat"),
			}
			if u := stringField(e, "unit", "serving_unit"); u != "" {
				f.Unit = u
			}
			out = append(out, f)
		}
		return out
	}

	// Valid JSON that is not an array (stray object, quoted string) carries
	// no food entries worth guessing at.
	if json.Valid([]byte(raw)) {
		return nil
	}

	return parseFreeText(raw)
}

func parseFreeText(raw string) []MealFood {
	var out []MealFood
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := freeTextLine.FindStringSubmatch(line)
		if m == nil || m[1] == "" {
			// No leading quantity: the whole line is the name.
			out = append(out, MealFood{Name: line, Quantity: defaultQuantity, Unit: defaultUnit})
			continue
		}

		qty, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			qty = defaultQuantity
		}
		unit := m[2]
		if unit == "" {
			unit = defaultUnit
		}
		out = append(out, MealFood{
			Name:     strings.TrimSpace(m[3]),
			Quantity: qty,
			Unit:     unit,
		})
	}
	return out
}

// stringField returns the first present, non-empty string among keys.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// numberField returns the first present numeric value among keys, accepting
// numbers that were stored as strings, else the fallback.
func numberField(m map[string]any, fallback float64, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return fallback
}
