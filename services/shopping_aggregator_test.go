package services

import "testing"

func TestAggregateItems_SumsByNameAndUnit(t *testing.T) {
	items := []MealFood{
		{Name: "Arroz", Quantity: 100, Unit: "g"},
		{Name: "arroz", Quantity: 50, Unit: "g"}, // case-insensitive key
		{Name: "Feijão", Quantity: 80, Unit: "g"},
	}

	out := AggregateItems(items, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 aggregated items, got %d", len(out))
	}

	byName := indexByName(out)
	if got := byName["Arroz"].Quantity; got != 300 {
		t.Errorf("Arroz quantity = %v, want 300", got)
	}
	if got := byName["Feijão"].Quantity; got != 160 {
		t.Errorf("Feijão quantity = %v, want 160", got)
	}
}

func TestAggregateItems_DifferentUnitsStaySeparate(t *testing.T) {
	items := []MealFood{
		{Name: "Leite", Quantity: 200, Unit: "ml"},
		{Name: "Leite", Quantity: 30, Unit: "g"}, // powdered
	}
	out := AggregateItems(items, 1)
	if len(out) != 2 {
		t.Fatalf("expected 2 items for mixed units, got %d", len(out))
	}
}

func TestAggregateItems_UnitConversionBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		unit     string
		wantQty  float64
		wantUnit string
	}{
		{"Quinoa", 1000, "g", 1, "kg"},
		{"Quinoa", 999, "g", 999, "g"},
		{"Suco de uva", 1000, "ml", 1, "L"},
		{"Suco de uva", 999, "ml", 999, "ml"},
	}
	for _, tt := range tests {
		out := AggregateItems([]MealFood{{Name: tt.name, Quantity: tt.qty, Unit: tt.unit}}, 1)
		if len(out) != 1 {
			t.Fatalf("%s: expected 1 item", tt.name)
		}
		if out[0].Quantity != tt.wantQty || out[0].Unit != tt.wantUnit {
			t.Errorf("%v %v: got %v %v, want %v %v",
				tt.qty, tt.unit, out[0].Quantity, out[0].Unit, tt.wantQty, tt.wantUnit)
		}
	}
}

func TestAggregateItems_RiceCooksDownToRaw(t *testing.T) {
	// 100 g cooked rice per day over 7 days: 700 g, raw equivalent 280 g.
	out := AggregateItems([]MealFood{{Name: "Arroz", Quantity: 100, Unit: "g"}}, 7)
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	it := out[0]
	if it.Quantity != 700 || it.Unit != "g" {
		t.Errorf("got %v %v, want 700 g", it.Quantity, it.Unit)
	}
	if it.Category != "Pantry & Dry Goods" {
		t.Errorf("category = %q, want Pantry & Dry Goods", it.Category)
	}
	if it.RawQuantity == nil || *it.RawQuantity != 280 {
		t.Errorf("raw quantity = %v, want 280", it.RawQuantity)
	}
}

func TestAggregateItems_RawQuantityRescalesWithUnit(t *testing.T) {
	// 3 kg of cooked rice worth of plan: converted to kg, raw follows.
	out := AggregateItems([]MealFood{{Name: "Arroz", Quantity: 500, Unit: "g"}}, 6)
	it := out[0]
	if it.Quantity != 3 || it.Unit != "kg" {
		t.Fatalf("got %v %v, want 3 kg", it.Quantity, it.Unit)
	}
	if it.RawQuantity == nil || *it.RawQuantity != 1.2 {
		t.Errorf("raw quantity = %v, want 1.2", it.RawQuantity)
	}
}

func TestAggregateItems_NoFactorLeavesRawNil(t *testing.T) {
	out := AggregateItems([]MealFood{{Name: "Maçã", Quantity: 150, Unit: "g"}}, 1)
	if out[0].RawQuantity != nil {
		t.Errorf("expected nil raw quantity, got %v", *out[0].RawQuantity)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Arroz branco", "Pantry & Dry Goods"},
		{"Frango grelhado", "Meat & Fish"},
		{"Iogurte natural", "Dairy"},
		{"Ovos mexidos", "Eggs"},
		{"Banana prata", "Produce"},
		{"Castanha do Pará", "Nuts & Seeds"},
		{"Suco de laranja", "Produce"}, // "laranja" hits Produce before Beverages
		{"Chá verde", "Beverages"},
		{"Whey protein", "Other"},
	}
	for _, tt := range tests {
		if got := Categorize(tt.name); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// A name matching several keyword lists must always resolve to the
// earliest-listed category.
func TestCategorize_TieBreakIsStable(t *testing.T) {
	// "leite" (Dairy) and "amêndoa" (Nuts & Seeds) both match.
	for i := 0; i < 100; i++ {
		if got := Categorize("Leite de amêndoa"); got != "Dairy" {
			t.Fatalf("iteration %d: got %q, want Dairy", i, got)
		}
	}
}

func TestCorrectionFactor(t *testing.T) {
	if f, ok := CorrectionFactor("Arroz integral"); !ok || f != 0.4 {
		t.Errorf("rice factor = %v %v, want 0.4 true", f, ok)
	}
	if f, ok := CorrectionFactor("Peito de frango"); !ok || f != 1.3 {
		t.Errorf("chicken factor = %v %v, want 1.3 true", f, ok)
	}
	if _, ok := CorrectionFactor("Maçã"); ok {
		t.Error("apple should have no correction factor")
	}
}

func indexByName(items []AggregatedItem) map[string]AggregatedItem {
	m := make(map[string]AggregatedItem, len(items))
	for _, it := range items {
		m[it.FoodName] = it
	}
	return m
}
