package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateServing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 532.0, EstimateServing(266, 200))
	assert.Equal(t, 133.0, EstimateServing(266, 50))
	assert.Equal(t, 0.0, EstimateServing(266, 0))
}

func TestAddMeal(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, lookupCSV)

	entry, ok := svc.AddMeal("Pizza!", 200)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "Pizza!", entry.Dish)
	assert.Equal(t, "pizza", entry.MatchedName)
	assert.Equal(t, 200.0, entry.ServingGrams)
	assert.Equal(t, 532.0, entry.Calories)
	assert.False(t, entry.LoggedAt.IsZero())

	meals := svc.Meals()
	require.Len(t, meals, 1)
	assert.Equal(t, entry.ID, meals[0].ID)
}

func TestAddMeal_EmptyDish(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, lookupCSV)

	_, ok := svc.AddMeal("", 200)
	assert.False(t, ok)
	assert.Empty(t, svc.Meals())
}

// Unknown dishes still get logged: the lookup degrades to the default
// calories instead of failing.
func TestAddMeal_UnknownDishUsesDefault(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, lookupCSV)

	entry, ok := svc.AddMeal("unobtainium stew", 100)
	require.True(t, ok)
	assert.Equal(t, DefaultFallbackCalories, entry.Calories)
	assert.Empty(t, entry.MatchedName)
}

func TestConsumedCaloriesAndReset(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, lookupCSV)

	_, ok := svc.AddMeal("pizza", 100) // 266
	require.True(t, ok)
	_, ok = svc.AddMeal("sushi", 200) // 286
	require.True(t, ok)

	assert.InDelta(t, 552.0, svc.ConsumedCalories(), 0.001)

	svc.ResetMeals()
	assert.Empty(t, svc.Meals())
	assert.Equal(t, 0.0, svc.ConsumedCalories())
}

func TestAddMeal_Concurrent(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, lookupCSV)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := svc.AddMeal("pizza", 100)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	assert.Len(t, svc.Meals(), 20)
	assert.InDelta(t, 20*266.0, svc.ConsumedCalories(), 0.001)
}

// Meals returns a copy: mutating it must not affect the log.
func TestMeals_ReturnsCopy(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, lookupCSV)

	_, ok := svc.AddMeal("pizza", 100)
	require.True(t, ok)

	meals := svc.Meals()
	meals[0].Calories = 0

	assert.Equal(t, 266.0, svc.Meals()[0].Calories)
}
