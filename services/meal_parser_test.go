package services

import (
	"encoding/json"
	"testing"
)

func TestParseMeal_JSONArray(t *testing.T) {
	raw := `[
		{"id":"f1","name":"Arroz integral","quantity":120,"unit":"g"},
		{"food_name":"Aveia","serving_size":40,"serving_unit":"g"},
		{"name":"Leite"}
	]`

	foods := ParseMeal(raw)
	if len(foods) != 3 {
		t.Fatalf("expected 3 foods, got %d", len(foods))
	}

	if foods[0].Name != "Arroz integral" || foods[0].Quantity != 120 || foods[0].Unit != "g" {
		t.Errorf("unexpected first food: %+v", foods[0])
	}
	if foods[0].ID != "f1" {
		t.Errorf("expected id f1, got %q", foods[0].ID)
	}
	if foods[1].Name != "Aveia" || foods[1].Quantity != 40 {
		t.Errorf("expected food_name/serving_size fallbacks, got %+v", foods[1])
	}
	if foods[2].Quantity != 100 || foods[2].Unit != "g" {
		t.Errorf("expected quantity/unit defaults, got %+v", foods[2])
	}
}

func TestParseMeal_QuantityStoredAsString(t *testing.T) {
	foods := ParseMeal(`[{"name":"Iogurte","quantity":"170","unit":"g"}]`)
	if len(foods) != 1 {
		t.Fatalf("expected 1 food, got %d", len(foods))
	}
	if foods[0].Quantity != 170 {
		t.Errorf("expected quantity 170, got %v", foods[0].Quantity)
	}
}

func TestParseMeal_FreeText(t *testing.T) {
	raw := "100g Arroz\n\n2 unidade Ovo\nSalada verde\n200ml Suco de laranja"

	foods := ParseMeal(raw)
	if len(foods) != 4 {
		t.Fatalf("expected 4 foods, got %d: %+v", len(foods), foods)
	}

	tests := []struct {
		name string
		qty  float64
		unit string
	}{
		{"Arroz", 100, "g"},
		{"Ovo", 2, "unidade"},
		{"Salada verde", 100, "g"},
		{"Suco de laranja", 200, "ml"},
	}
	for i, want := range tests {
		got := foods[i]
		if got.Name != want.name || got.Quantity != want.qty || got.Unit != want.unit {
			t.Errorf("line %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestParseMeal_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n"} {
		if foods := ParseMeal(raw); len(foods) != 0 {
			t.Errorf("ParseMeal(%q) = %v, want empty", raw, foods)
		}
	}
}

func TestParseMeal_NonArrayJSON(t *testing.T) {
	for _, raw := range []string{`{}`, `"just a string"`, `42`} {
		if foods := ParseMeal(raw); len(foods) != 0 {
			t.Errorf("ParseMeal(%q) = %v, want empty", raw, foods)
		}
	}
}

// Re-parsing the JSON encoding of a parse result must not change it.
func TestParseMeal_Idempotent(t *testing.T) {
	inputs := []string{
		`[{"name":"Arroz","quantity":100,"unit":"g"}]`,
		`[{"food_name":"Aveia","serving_size":40},{"name":"Banana","quantity":1,"unit":"unidade"}]`,
	}
	for _, raw := range inputs {
		first := ParseMeal(raw)
		encoded, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		second := ParseMeal(string(encoded))

		if len(first) != len(second) {
			t.Fatalf("length changed: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Name != second[i].Name ||
				first[i].Quantity != second[i].Quantity ||
				first[i].Unit != second[i].Unit {
				t.Errorf("entry %d changed on re-parse: %+v vs %+v", i, first[i], second[i])
			}
		}
	}
}
