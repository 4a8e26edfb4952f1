package services

import (
	"math"
	"strings"
)

// AggregatedItem is one de-duplicated shopping list entry.
type AggregatedItem struct {
	FoodID      *string
	FoodName    string
	Quantity    float64
	Unit        string
	Category    string
	RawQuantity *float64 // pre-cooking equivalent, nil when no factor applies
}

// Unit conversion happens once a total crosses this many grams/milliliters.
const unitConversionThreshold = 1000.0

const categoryOther = "Other"

type foodCategory struct {
	Name     string
	Keywords []string
}

// Ordered: the first category whose keyword list matches wins, so a name
// matching several lists always resolves the same way. Keywords cover the
// Portuguese food names plans are written in plus common English ones.
var foodCategories = []foodCategory{
	{"Produce", []string{
		"maçã", "banana", "laranja", "mamão", "abacaxi", "morango", "uva",
		"tomate", "alface", "cenoura", "cebola", "alho", "brócolis",
		"abobrinha", "couve", "pepino", "pimentão", "batata", "fruta",
		"legume", "verdura", "salada", "apple", "orange", "tomato",
		"lettuce", "carrot", "onion", "broccoli", "spinach",
	}},
	{"Meat & Fish", []string{
		"frango", "carne", "boi", "porco", "peru", "peixe", "atum",
		"salmão", "tilápia", "sardinha", "camarão", "chicken", "beef",
		"pork", "turkey", "fish", "tuna", "salmon", "shrimp",
	}},
	{"Dairy", []string{
		"leite", "queijo", "iogurte", "manteiga", "requeijão", "creme",
		"milk", "cheese", "yogurt", "butter", "cream",
	}},
	{"Eggs", []string{"ovo", "ovos", "egg"}},
	{"Pantry & Dry Goods", []string{
		"arroz", "feijão", "lentilha", "grão de bico", "macarrão", "massa",
		"aveia", "farinha", "açúcar", "pão", "quinoa", "milho", "azeite",
		"óleo", "rice", "bean", "lentil", "chickpea", "pasta", "oat",
		"flour", "sugar", "bread", "oil",
	}},
	{"Frozen", []string{"congelado", "congelada", "sorvete", "frozen", "ice cream"}},
	{"Beverages", []string{
		"suco", "água", "café", "chá", "refrigerante", "juice", "water",
		"coffee", "tea",
	}},
	{"Nuts & Seeds", []string{
		"castanha", "amêndoa", "nozes", "amendoim", "chia", "linhaça",
		"semente", "gergelim", "nut", "almond", "walnut", "peanut", "seed",
	}},
	{"Spices", []string{
		"sal", "pimenta", "orégano", "canela", "cominho", "tempero",
		"salsa", "salt", "pepper", "oregano", "cinnamon", "spice",
	}},
}

type cookingFactor struct {
	Keyword string
	Factor  float64
}

// Cooked→raw multipliers for staples whose plan quantities are written as
// cooked weight. Grains absorb water (raw < cooked); meats lose it
// (raw > cooked).
var cookingFactors = []cookingFactor{
	{"arroz", 0.4}, {"rice", 0.4},
	{"macarrão", 0.45}, {"massa", 0.45}, {"pasta", 0.45},
	{"feijão", 0.45}, {"bean", 0.45},
	{"lentilha", 0.45}, {"lentil", 0.45},
	{"batata", 0.85}, {"potato", 0.85},
	{"frango", 1.3}, {"chicken", 1.3},
	{"carne", 1.25}, {"meat", 1.25}, {"beef", 1.25},
	{"peixe", 1.2}, {"fish", 1.2},
	{"legume", 1.1}, {"verdura", 1.1}, {"vegetable", 1.1},
}

// Categorize assigns a grocery category by case-insensitive substring match
// against the ordered category table. No match means "Other".
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, c := range foodCategories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Name
			}
		}
	}
	return categoryOther
}

// CorrectionFactor returns the cooked→raw multiplier for a food name, when
// one is known.
func CorrectionFactor(name string) (float64, bool) {
	lower := strings.ToLower(name)
	for _, f := range cookingFactors {
		if strings.Contains(lower, f.Keyword) {
			return f.Factor, true
		}
	}
	return 0, false
}

// AggregateItems merges repeated foods across meals and days. Items sharing
// a case-insensitive (name, unit) pair are summed, each occurrence scaled by
// multiplier (the number of days the plan repeats). Totals then get the raw
// equivalent, g→kg / ml→L conversion, and one-decimal rounding. Ordering of
// the result is unspecified; callers sort.
func AggregateItems(items []MealFood, multiplier float64) []AggregatedItem {
	if multiplier <= 0 {
		multiplier = 1
	}

	index := make(map[string]int)
	out := make([]AggregatedItem, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it.Name) + "|" + strings.ToLower(it.Unit)
		if i, ok := index[key]; ok {
			out[i].Quantity += it.Quantity * multiplier
			continue
		}
		var foodID *string
		if it.ID != "" {
			id := it.ID
			foodID = &id
		}
		out = append(out, AggregatedItem{
			FoodID:   foodID,
			FoodName: it.Name,
			Quantity: it.Quantity * multiplier,
			Unit:     it.Unit,
			Category: Categorize(it.Name),
		})
		index[key] = len(out) - 1
	}

	for i := range out {
		if factor, ok := CorrectionFactor(out[i].FoodName); ok {
			raw := out[i].Quantity * factor
			out[i].RawQuantity = &raw
		}
		normalizeUnits(&out[i])
	}
	return out
}

// normalizeUnits converts large gram/milliliter totals to kg/L and rounds
// every final quantity to one decimal place.
func normalizeUnits(it *AggregatedItem) {
	switch strings.ToLower(it.Unit) {
	case "g":
		if it.Quantity >= unitConversionThreshold {
			it.Unit = "kg"
			it.Quantity /= 1000
			if it.RawQuantity != nil {
				*it.RawQuantity /= 1000
			}
		}
	case "ml":
		if it.Quantity >= unitConversionThreshold {
			it.Unit = "L"
			it.Quantity /= 1000
			if it.RawQuantity != nil {
				*it.RawQuantity /= 1000
			}
		}
	}
	it.Quantity = round1(it.Quantity)
	if it.RawQuantity != nil {
		*it.RawQuantity = round1(*it.RawQuantity)
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
