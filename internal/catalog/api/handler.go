package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/utils"
)

type Store interface {
	ListExperiences(ctx context.Context) ([]models.ExperienceSummary, error)
	GetExperienceByID(ctx context.Context, id string) (*models.ExperienceWithSlots, error)
}

type Handler struct {
	Store  Store
	Logger *logger.Logger
}

func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.Store.ListExperiences(r.Context())
	if err != nil {
		h.Logger.Error("CATALOG", fmt.Sprintf("list experiences: %v", err))
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}

	utils.JSON(w, http.StatusOK, experiences)
}

func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	experienceID := chi.URLParam(r, "experienceId")

	experience, err := h.Store.GetExperienceByID(r.Context(), experienceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Experience not found")
			return
		}
		h.Logger.Error("CATALOG", fmt.Sprintf("get experience %s: %v", experienceID, err))
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}

	utils.JSON(w, http.StatusOK, experience)
}
