package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/profile-board/backend/internal/handler/profile"
	"github.com/zhouzirui/profile-board/backend/internal/handler/web"
	middlewarePkg "github.com/zhouzirui/profile-board/backend/internal/middleware"
	profileService "github.com/zhouzirui/profile-board/backend/internal/service/profile"
	"github.com/zhouzirui/profile-board/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the profile service.
func NewRouter(svc *profileService.Service, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Server-rendered board
	web.New(svc).RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.CORS(allowedOrigin))
		profile.New(svc).RegisterRoutes(api)
	})

	return r
}
