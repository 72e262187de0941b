package http

import (
	"io"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	FrontendOrigin string
	Env            string
	LogLevel       slog.Level
	// LogOutput defaults to stdout.
	LogOutput io.Writer
}

type Handlers struct {
	Calendar       CalendarHandler
	Timeline       TimelineHandler
	Leave          LeaveHandler
	Regularization RegularizationHandler
	Project        ProjectHandler
	TimeLog        TimeLogHandler
}

func NewRouter(JWTService jwt.Service, opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	out := opts.LogOutput
	if out == nil {
		out = os.Stdout
	}
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Holidays are the same for everyone.
		r.Get("/holidays/upcoming", h.Calendar.UpcomingHolidays)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/month", h.Calendar.Month)
				r.Get("/month/pdf", h.Calendar.MonthPDF)
			})

			r.Get("/timeline/week", h.Timeline.Week)
			r.Get("/sessions/today", h.Timeline.Today)

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balances", h.Leave.Balances)
				r.Post("/validate", h.Leave.Validate)
			})

			r.Post("/regularization/validate", h.Regularization.Validate)
			r.Get("/projects/hierarchy", h.Project.Hierarchy)
			r.Get("/timelogs/summary", h.TimeLog.Summary)
		})
	})
	return r
}
