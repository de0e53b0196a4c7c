package service

import (
	"time"

	"github.com/google/uuid"
)

// MealEntry is one logged serving.
type MealEntry struct {
	ID           uuid.UUID `json:"id"`
	Dish         string    `json:"dish"`
	MatchedName  string    `json:"matched_name,omitempty"`
	ServingGrams float64   `json:"serving_g"`
	Calories     float64   `json:"calories"`
	LoggedAt     time.Time `json:"logged_at"`
}

// EstimateServing scales a per-100g calorie value to a serving size.
func EstimateServing(caloriesPer100g, servingGrams float64) float64 {
	return caloriesPer100g * servingGrams / 100.0
}

// AddMeal resolves the dish label, estimates the serving calories and
// appends the entry to the in-memory log. ok is false only when the dish
// label is empty (Lookup's no-result case).
func (s *Service) AddMeal(dish string, servingGrams float64) (MealEntry, bool) {
	res, ok := s.Lookup(dish)
	if !ok {
		return MealEntry{}, false
	}
	entry := MealEntry{
		ID:           uuid.New(),
		Dish:         dish,
		MatchedName:  res.MatchedName,
		ServingGrams: servingGrams,
		Calories:     EstimateServing(res.CaloriesPer100g, servingGrams),
		LoggedAt:     time.Now().UTC(),
	}
	s.mu.Lock()
	s.meals = append(s.meals, entry)
	s.mu.Unlock()
	return entry, true
}

// Meals returns a copy of the log in insertion order.
func (s *Service) Meals() []MealEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MealEntry, len(s.meals))
	copy(out, s.meals)
	return out
}

// ConsumedCalories sums the calories of every logged meal.
func (s *Service) ConsumedCalories() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, m := range s.meals {
		total += m.Calories
	}
	return total
}

// ResetMeals clears the log.
func (s *Service) ResetMeals() {
	s.mu.Lock()
	s.meals = nil
	s.mu.Unlock()
}
