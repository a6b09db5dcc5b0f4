package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sciquest-service/internal/app"
	"sciquest-service/internal/transport/http/auth"
)

// Handlers bundles the application services behind the API routes.
type Handlers struct {
	catalog    *app.CatalogService
	quizzes    *app.QuizService
	progress   *app.ProgressService
	curriculum *app.CurriculumService
}

func NewHandlers(catalog *app.CatalogService, quizzes *app.QuizService, progress *app.ProgressService, curriculum *app.CurriculumService) *Handlers {
	return &Handlers{
		catalog:    catalog,
		quizzes:    quizzes,
		progress:   progress,
		curriculum: curriculum,
	}
}

func NewRouter(h *Handlers, authSvc *auth.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(auth.Middleware(authSvc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", auth.LoginHandler(authSvc))
		r.Get("/auth/user", currentUser)

		r.Route("/experiments", func(r chi.Router) {
			r.Get("/", h.listExperiments)
			r.Get("/featured", h.featuredExperiments)
			r.Get("/related/{experimentID}", h.relatedExperiments)
			r.Get("/{experimentID}", h.getExperiment)
			r.Get("/{experimentID}/curriculum", h.experimentCurriculum)
		})

		r.Route("/quizzes", func(r chi.Router) {
			r.Get("/experiment/{experimentID}", h.quizByExperiment)
			r.Get("/{quizID}/questions", h.quizQuestions)
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireUser)
				r.Post("/{quizID}/submit", h.submitQuiz)
				r.Get("/{quizID}/attempts", h.quizAttempts)
			})
		})

		r.Route("/progress", func(r chi.Router) {
			r.Use(auth.RequireUser)
			r.Get("/", h.allProgress)
			r.Post("/", h.upsertProgress)
			r.Get("/{experimentID}", h.getProgress)
			r.Patch("/{experimentID}/notes", h.updateProgressNotes)
			r.Patch("/{experimentID}/complete", h.setProgressCompleted)
		})

		r.Route("/curriculum", func(r chi.Router) {
			r.Get("/", h.allCurriculum)
			r.Get("/stage/{stage}", h.curriculumByStage)
			r.Get("/{unitID}", h.curriculumUnit)
		})
	})

	return r
}

// currentUser answers null for anonymous requests rather than 401; the
// client uses it to probe login state.
func currentUser(w http.ResponseWriter, r *http.Request) {
	sub, ok := auth.Subject(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": sub})
}
