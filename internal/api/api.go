package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/semestra/internal/auth"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/alexanderramin/semestra/internal/service"
)

// API exposes the HTTP handlers for the planner.
type API struct {
	tasks     service.TaskService
	slots     service.BusySlotService
	profiles  service.ProfileService
	courses   service.CourseService
	schedule  service.ScheduleService
	users     repository.UserRepo
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// New creates the API wrapper over the service layer.
func New(tasks service.TaskService, slots service.BusySlotService, profiles service.ProfileService, courses service.CourseService, schedule service.ScheduleService, users repository.UserRepo, jwtSecret []byte, tokenTTL time.Duration, logger zerolog.Logger) *API {
	return &API{
		tasks:     tasks,
		slots:     slots,
		profiles:  profiles,
		courses:   courses,
		schedule:  schedule,
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Router builds the chi router with all routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.requestLogger)

	r.Get("/health", a.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", a.handleSignup)
		r.Post("/login", a.handleLogin)
		r.With(auth.Middleware(a.jwtSecret)).Get("/me", a.handleMe)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(a.jwtSecret))

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", a.handleTasksList)
			r.Post("/", a.handleTasksCreate)
			r.Put("/{taskID}", a.handleTasksUpdate)
			r.Delete("/{taskID}", a.handleTasksDelete)
			r.Post("/{taskID}/complete", a.handleTasksComplete)
		})

		r.Route("/busy-slots", func(r chi.Router) {
			r.Get("/", a.handleBusySlotsList)
			r.Post("/", a.handleBusySlotsCreate)
			r.Post("/bulk", a.handleBusySlotsBulk)
			r.Delete("/{slotID}", a.handleBusySlotsDelete)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", a.handleCoursesList)
			r.Post("/", a.handleCoursesCreate)
			r.Put("/{courseID}", a.handleCoursesUpdate)
			r.Delete("/{courseID}", a.handleCoursesDelete)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", a.handleProfileGet)
			r.Post("/baseline", a.handleProfileBaseline)
		})

		r.Post("/schedule/run", a.handleScheduleRun)
	})

	return r
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// userID pulls the authenticated user from context. Handlers behind the
// auth middleware can rely on it being set.
func userID(r *http.Request) string {
	claims, _ := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return ""
	}
	return claims.UserID
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps repository sentinels onto HTTP statuses.
func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.logger.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusBadRequest, err.Error())
}
