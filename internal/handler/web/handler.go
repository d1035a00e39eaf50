package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
	profileService "github.com/zhouzirui/profile-board/backend/internal/service/profile"
	"github.com/zhouzirui/profile-board/backend/internal/view"
)

// Handler serves the HTML profile board.
type Handler struct {
	svc *profileService.Service
}

// New creates the page handler.
func New(svc *profileService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the page and its form targets.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/profiles", h.handleAdd)
	r.Post("/profiles/{id}/like", h.handleLike)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, view.PageData{})
}

// handleAdd redirects back to the board on success; a rejection re-renders
// the board with the message and the submitted value.
func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.PostFormValue("name")

	if _, err := h.svc.Add(r.Context(), name); err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			h.renderPage(w, r, http.StatusUnprocessableEntity, view.PageData{Name: name, Error: verr.Message()})
			return
		}
		log.Printf("[web] add profile failed: %v", err)
		http.Error(w, "failed to add profile", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid profile id", http.StatusBadRequest)
		return
	}

	// Unknown ids are ignored; the board is shown either way.
	_, _ = h.svc.Like(r.Context(), id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, data view.PageData) {
	data.Profiles = h.svc.List(r.Context())
	templ.Handler(view.Page(data), templ.WithStatus(status)).ServeHTTP(w, r)
}
