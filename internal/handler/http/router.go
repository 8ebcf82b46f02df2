package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	absenceHandler AbsenceHandler,
	cardHandler CardHandler,
	holidayHandler HolidayHandler,
	userHandler UserHandler,
	tokenHandler TokenHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				// Card terminals punch with an authenticated service account
				r.Post("/punch", attendanceHandler.Punch)

				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", attendanceHandler.Create)
					r.Put("/{id}", attendanceHandler.UpdateOrResolve)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/", absenceHandler.Create)
				r.Get("/", absenceHandler.List)
				r.Get("/types", absenceHandler.ListTypes)
				r.Get("/{id}", absenceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", absenceHandler.Update)
					r.Patch("/{id}/status", absenceHandler.ToggleStatus)
					r.Delete("/{id}", absenceHandler.Delete)
				})
			})

			r.Route("/cards", func(r chi.Router) {
				r.Get("/", cardHandler.List)
				r.Get("/{id}", cardHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", cardHandler.Create)
					r.Delete("/{id}", cardHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListByRange)
				r.Get("/{id}", holidayHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/{id}", userHandler.Get)

				// Admin only; always rejected by the service
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
				})
			})

			r.Route("/tokens", func(r chi.Router) {
				r.Post("/redeem", tokenHandler.Redeem)

				// Admin only; delete is always rejected by the service
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", tokenHandler.Issue)
					r.Delete("/{id}", tokenHandler.Delete)
				})
			})
		})
	})
	return r
}
