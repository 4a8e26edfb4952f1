package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

// ErrMealPlanNotFound is returned when no meal plan can be resolved for a
// generation request.
var ErrMealPlanNotFound = errors.New("meal plan not found")

// DefaultShoppingDays is how many repetitions of the daily plan to shop for
// when the caller doesn't say.
const DefaultShoppingDays = 7

type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

type GenerateInput struct {
	MealPlanID uint `json:"meal_plan_id"`
	PatientID  uint `json:"patient_id"`
	Days       int  `json:"days"`
}

type ShoppingSummary struct {
	TotalItems int      `json:"total_items"`
	Categories []string `json:"categories"`
}

type GenerateResult struct {
	List    *models.ShoppingList `json:"list"`
	Summary ShoppingSummary      `json:"summary"`
}

// BuildShoppingItems parses all six meal slots of a plan, flattens the food
// entries (meal identity doesn't matter for shopping) and aggregates them
// with the day multiplier. The result is sorted by category, then name.
func BuildShoppingItems(plan *models.MealPlan, days int) []AggregatedItem {
	if days <= 0 {
		days = DefaultShoppingDays
	}

	var foods []MealFood
	for _, slot := range plan.Slots() {
		foods = append(foods, ParseMeal(slot)...)
	}

	items := AggregateItems(foods, float64(days))
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].FoodName < items[j].FoodName
	})
	return items
}

// Generate resolves the meal plan, builds the aggregated items and persists
// the list header plus its item rows in one transaction, so a failed item
// insert never leaves a half-written list behind.
func (s *ShoppingListService) Generate(ctx context.Context, userID uint, in GenerateInput) (*GenerateResult, error) {
	plan, err := s.resolvePlan(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	days := in.Days
	if days <= 0 {
		days = DefaultShoppingDays
	}
	items := BuildShoppingItems(plan, days)

	now := time.Now()
	list := &models.ShoppingList{
		UserID:     userID,
		PatientID:  plan.PatientID,
		MealPlanID: plan.ID,
		StartDate:  now,
		EndDate:    now.AddDate(0, 0, days-1),
		Days:       days,
		Status:     "active",
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]models.ShoppingListItem, 0, len(items))
		for _, it := range items {
			rows = append(rows, models.ShoppingListItem{
				ShoppingListID: list.ID,
				FoodID:         it.FoodID,
				FoodName:       it.FoodName,
				Quantity:       it.Quantity,
				Unit:           it.Unit,
				Category:       it.Category,
				RawQuantity:    it.RawQuantity,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		list.Items = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":      userID,
		"meal_plan_id": plan.ID,
		"days":         days,
		"items":        len(items),
	}).Info("shopping list generated")

	return &GenerateResult{List: list, Summary: summarize(items)}, nil
}

func (s *ShoppingListService) resolvePlan(ctx context.Context, userID uint, in GenerateInput) (*models.MealPlan, error) {
	var plan models.MealPlan
	switch {
	case in.MealPlanID != 0:
		err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", in.MealPlanID, userID).
			First(&plan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		if err != nil {
			return nil, err
		}
	case in.PatientID != 0:
		err := s.db.WithContext(ctx).
			Where("patient_id = ? AND user_id = ?", in.PatientID, userID).
			Order("created_at DESC").
			First(&plan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrMealPlanNotFound
	}
	return &plan, nil
}

func summarize(items []AggregatedItem) ShoppingSummary {
	seen := make(map[string]struct{})
	var categories []string
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		categories = append(categories, it.Category)
	}
	sort.Strings(categories)
	return ShoppingSummary{TotalItems: len(items), Categories: categories}
}

// List returns a nutritionist's shopping lists, newest first, without items.
func (s *ShoppingListService) List(ctx context.Context, userID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

// Get loads one list with its items.
func (s *ShoppingListService) Get(ctx context.Context, userID, listID uint) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}
