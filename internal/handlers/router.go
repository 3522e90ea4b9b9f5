package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appMiddleware "github.com/devfolio/backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigin string
	JWTSecret     string
	UploadDir     string
}

// NewRouter wires the full HTTP surface. Reads and the contact form are
// public; everything that mutates content requires the admin token.
func NewRouter(
	cfg RouterConfig,
	profile *ProfileHandler,
	settings *SettingsHandler,
	projects *ProjectHandler,
	experience *ExperienceHandler,
	achievements *AchievementHandler,
	contact *ContactHandler,
	admin *AdminHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/admin/unlock", admin.Unlock)

		// Public content reads plus the contact form.
		r.Get("/profile", profile.Get)
		r.Get("/settings", settings.Get)
		r.Get("/projects", projects.List)
		r.Get("/experience", experience.List)
		r.Get("/achievements", achievements.List)
		r.Post("/contact", contact.Submit)

		// Admin surface: verified server-side, not just hidden in the UI.
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.RequireAdmin(cfg.JWTSecret))

			r.Put("/profile", profile.Update)
			r.Post("/profile/upload-image", profile.UploadImage)
			r.Post("/profile/upload-resume", profile.UploadResume)

			r.Put("/settings", settings.Update)
			r.Post("/settings/upload-logo", settings.UploadLogo)

			r.Post("/projects", projects.Create)
			r.Put("/projects/{projectId}", projects.Update)
			r.Delete("/projects/{projectId}", projects.Delete)

			r.Post("/experience", experience.Create)
			r.Put("/experience/{experienceId}", experience.Update)
			r.Delete("/experience/{experienceId}", experience.Delete)

			r.Post("/achievements", achievements.Create)
			r.Put("/achievements/{achievementId}", achievements.Update)
			r.Delete("/achievements/{achievementId}", achievements.Delete)

			r.Get("/contact", contact.List)
			r.Get("/contact/{messageId}", contact.Get)
			r.Patch("/contact/{messageId}/read", contact.MarkRead)
			r.Delete("/contact/{messageId}", contact.Delete)
		})
	})

	// Serve uploaded files
	filesDir := http.Dir(cfg.UploadDir)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(filesDir)))

	return r
}
