package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/susrithamallela/foodvision/internal/logging"
	"github.com/susrithamallela/foodvision/internal/normalize"
	"github.com/susrithamallela/foodvision/internal/service"
)

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Get("/foods", handleListFoods(svc))
	r.Post("/foods/lookup", handleLookup(svc))
	r.Post("/target", handleDailyTarget)

	r.Post("/meals", handleAddMeal(svc))
	r.Get("/meals", handleListMeals(svc))
	r.Delete("/meals", handleResetMeals(svc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- foods ---

func handleListFoods(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, svc.Catalog().Entries())
	}
}

// --- lookup ---

type lookupRequest struct {
	Label string `json:"label"`
}

type lookupResponse struct {
	Label           string  `json:"label"`
	Normalized      string  `json:"normalized"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	MatchedName     string  `json:"matched_name,omitempty"`
	Tier            string  `json:"tier"`
	Confidence      float64 `json:"confidence"`
}

func handleLookup(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req lookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		result, ok := svc.Lookup(req.Label)
		if !ok {
			jsonError(w, "label is required", http.StatusBadRequest)
			return
		}
		jsonOK(w, lookupResponse{
			Label:           req.Label,
			Normalized:      normalize.Label(req.Label),
			CaloriesPer100g: result.CaloriesPer100g,
			MatchedName:     result.MatchedName,
			Tier:            string(result.Tier),
			Confidence:      result.Confidence,
		})
	}
}

// --- daily target ---

type targetRequest struct {
	AgeYears float64 `json:"age_years"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Gender   string  `json:"gender"`
}

type targetResponse struct {
	DailyCalories float64 `json:"daily_calories"`
}

func handleDailyTarget(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	target, err := service.DailyTarget(service.Profile{
		AgeYears: req.AgeYears,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		Gender:   service.Gender(req.Gender),
	})
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	jsonOK(w, targetResponse{DailyCalories: target})
}

// --- meal log ---

type addMealRequest struct {
	Dish     string  `json:"dish"`
	ServingG float64 `json:"serving_g"`
}

func handleAddMeal(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addMealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.ServingG <= 0 {
			jsonError(w, "serving_g must be positive", http.StatusBadRequest)
			return
		}
		entry, ok := svc.AddMeal(req.Dish, req.ServingG)
		if !ok {
			jsonError(w, "dish is required", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry) //nolint:errcheck
	}
}

type listMealsResponse struct {
	Meals            []service.MealEntry `json:"meals"`
	ConsumedCalories float64             `json:"consumed_calories"`
}

func handleListMeals(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meals := svc.Meals()
		if meals == nil {
			meals = []service.MealEntry{}
		}
		jsonOK(w, listMealsResponse{
			Meals:            meals,
			ConsumedCalories: svc.ConsumedCalories(),
		})
	}
}

func handleResetMeals(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ResetMeals()
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
