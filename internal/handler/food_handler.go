package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodiehaven/internal/model"
	"foodiehaven/internal/repository"
	"foodiehaven/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type FoodHandler struct {
	svc    *service.CatalogService
	logger zerolog.Logger
}

func NewFoodHandler(svc *service.CatalogService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, logger: logger}
}

// List handles GET /api/foods, all rows ordered by id descending.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.svc.ListFoods(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, foods)
}

// Get handles GET /api/foods/{id}. The id is handed to the store as-is; a
// non-numeric id surfaces as a store error.
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	food, err := h.svc.GetFood(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			h.writeError(w, http.StatusNotFound, "Food not found")
			return
		}
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, food)
}

// Create handles POST /api/foods.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	food, err := h.svc.CreateFood(r.Context(), in)
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, food)
}

// Update handles PUT /api/foods/{id}, replacing the full row and echoing
// the input.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in model.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	food, err := h.svc.UpdateFood(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			h.writeError(w, http.StatusNotFound, "Food not found")
			return
		}
		h.storeError(w, err)
		return
	}

	// The update matched, so the id is numeric.
	food.ID, _ = strconv.ParseInt(id, 10, 64)
	h.writeJSON(w, http.StatusOK, food)
}

// Delete handles DELETE /api/foods/{id}.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFood(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			h.writeError(w, http.StatusNotFound, "Food not found")
			return
		}
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Food deleted successfully"})
}

// Search handles GET /api/foods/search/{query}.
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	foods, err := h.svc.SearchFoods(r.Context(), chi.URLParam(r, "query"))
	if err != nil {
		h.storeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, foods)
}

// storeError surfaces any store failure as a generic server error carrying
// the underlying message.
func (h *FoodHandler) storeError(w http.ResponseWriter, err error) {
	h.logger.Error().Err(err).Msg("store error")
	h.writeError(w, http.StatusInternalServerError, err.Error())
}

func (h *FoodHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (h *FoodHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
