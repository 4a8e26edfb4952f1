package services

import (
	"reflect"
	"testing"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

func TestBuildShoppingItems(t *testing.T) {
	plan := &models.MealPlan{
		Breakfast: `[{"name":"Ovo","quantity":100,"unit":"g"},{"name":"Banana","quantity":120,"unit":"g"}]`,
		Lunch:     "150 g Arroz branco\n100 g Frango grelhado",
		Dinner:    "150 g Arroz branco",
	}

	items := BuildShoppingItems(plan, 7)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d: %+v", len(items), items)
	}

	// Sorted by category then name: Eggs, Meat & Fish, Pantry & Dry Goods,
	// Produce.
	wantOrder := []string{"Ovo", "Frango grelhado", "Arroz branco", "Banana"}
	for i, name := range wantOrder {
		if items[i].FoodName != name {
			t.Fatalf("position %d = %q, want %q (items: %+v)", i, items[i].FoodName, name, items)
		}
	}

	arroz := items[2]
	if arroz.Quantity != 2.1 || arroz.Unit != "kg" {
		t.Errorf("arroz = %.2f %s, want 2.1 kg", arroz.Quantity, arroz.Unit)
	}
	if arroz.RawQuantity == nil || *arroz.RawQuantity != 0.8 {
		t.Errorf("arroz raw = %v, want 0.8 kg", arroz.RawQuantity)
	}
	if arroz.Category != "Pantry & Dry Goods" {
		t.Errorf("arroz category = %q", arroz.Category)
	}

	frango := items[1]
	if frango.Quantity != 700 || frango.Unit != "g" {
		t.Errorf("frango = %.2f %s, want 700 g", frango.Quantity, frango.Unit)
	}
	if frango.RawQuantity == nil || *frango.RawQuantity != 910 {
		t.Errorf("frango raw = %v, want 910 g", frango.RawQuantity)
	}

	ovo := items[0]
	if ovo.Quantity != 700 || ovo.RawQuantity != nil {
		t.Errorf("ovo = %+v, want 700 g without raw equivalent", ovo)
	}
}

func TestBuildShoppingItems_DefaultDays(t *testing.T) {
	plan := &models.MealPlan{Breakfast: "100 g Aveia"}

	items := BuildShoppingItems(plan, 0)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 700 {
		t.Errorf("quantity = %v, want 700 (7-day default)", items[0].Quantity)
	}
}

func TestBuildShoppingItems_EmptyPlan(t *testing.T) {
	if items := BuildShoppingItems(&models.MealPlan{}, 7); len(items) != 0 {
		t.Errorf("expected no items for empty plan, got %+v", items)
	}
}

func TestSummarize(t *testing.T) {
	items := []AggregatedItem{
		{FoodName: "Arroz", Category: "Pantry & Dry Goods"},
		{FoodName: "Feijão", Category: "Pantry & Dry Goods"},
		{FoodName: "Banana", Category: "Produce"},
		{FoodName: "Ovo", Category: "Eggs"},
	}

	sum := summarize(items)
	if sum.TotalItems != 4 {
		t.Errorf("total = %d, want 4", sum.TotalItems)
	}
	want := []string{"Eggs", "Pantry & Dry Goods", "Produce"}
	if !reflect.DeepEqual(sum.Categories, want) {
		t.Errorf("categories = %v, want %v", sum.Categories, want)
	}
}
