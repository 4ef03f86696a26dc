package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/origin8hq/lms-backend-go/internal/handler/http/middleware"
	"github.com/origin8hq/lms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	userHandler UserHandler,
	departmentHandler DepartmentHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/departments", departmentHandler.ListDepartments)
			r.Get("/dashboard/summary", dashboardHandler.GetSummary)

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListTypes)

				// Leave type catalog management is admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/types", leaveHandler.CreateType)
					r.Put("/types/{id}", leaveHandler.UpdateType)
					r.Delete("/types/{id}", leaveHandler.DeleteType)
				})

				r.Post("/requests", leaveHandler.SubmitRequest)
				r.Get("/requests/my", leaveHandler.GetMyRequests)
			})

			// First-stage review, scoped to the reviewer's department
			r.Route("/hod/leave/requests", func(r chi.Router) {
				r.Use(middleware.RequireHOD)
				r.Get("/", leaveHandler.ListPendingForHOD)
				r.Post("/{id}/approve", leaveHandler.HODApprove)
				r.Post("/{id}/reject", leaveHandler.HODReject)
			})

			// Final review and account management
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/admin/leave/requests", func(r chi.Router) {
					r.Get("/", leaveHandler.ListPendingForAdmin)
					r.Post("/{id}/approve", leaveHandler.AdminApprove)
					r.Post("/{id}/reject", leaveHandler.AdminReject)
				})

				r.Route("/admin/users", func(r chi.Router) {
					r.Get("/", userHandler.ListUsers)
					r.Post("/", userHandler.CreateUser)
					r.Delete("/{id}", userHandler.DeleteUser)
				})
			})
		})
	})
	return r
}
