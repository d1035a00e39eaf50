package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
	profileService "github.com/zhouzirui/profile-board/backend/internal/service/profile"
	"github.com/zhouzirui/profile-board/backend/pkg/utils"
)

// Handler serves the profile JSON API.
type Handler struct {
	svc *profileService.Service
}

// New creates a profile API handler.
func New(svc *profileService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the profile routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profiles", h.handleListProfiles)
	r.Post("/profiles", h.handleAddProfile)
	r.Post("/profiles/{id}/like", h.handleLikeProfile)
	r.Get("/activity", h.handleActivity)
}

func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *Handler) handleAddProfile(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Add(r.Context(), payload.Name)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			utils.RespondError(w, http.StatusUnprocessableEntity, verr.Reason)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, created)
}

// handleLikeProfile answers 204 for unknown ids; liking is lenient.
func (h *Handler) handleLikeProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	updated, ok := h.svc.Like(r.Context(), id)
	if !ok {
		utils.RespondNoContent(w)
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.svc.Activity())
}
