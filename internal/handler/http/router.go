package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/Jaganbehera1/Worker-Management-System/internal/handler/http/middleware"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env             string
	FrontendURL     string
	StorageBasePath string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	advanceHandler AdvanceHandler,
	paymentHandler PaymentHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worker-management"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Employee photos
	fileServer(r, "/uploads", http.Dir(cfg.StorageBasePath))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.With(middleware.AdminOnly).Post("/auth/register", authHandler.Register)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
					r.Post("/{id}/photo", employeeHandler.UploadPhoto)
				})

				r.Route("/{employeeId}/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListByMonth)
					r.With(middleware.AdminOnly).Post("/", attendanceHandler.Record)
				})

				r.Route("/{employeeId}/advances", func(r chi.Router) {
					r.Get("/", advanceHandler.ListByMonth)
					r.With(middleware.AdminOnly).Post("/", advanceHandler.Give)
				})

				r.Route("/{employeeId}/payments", func(r chi.Router) {
					r.Get("/", paymentHandler.ListByMonth)
					r.With(middleware.AdminOnly).Post("/", paymentHandler.Record)
				})
			})

			r.With(middleware.AdminOnly).Post("/attendance/bulk", attendanceHandler.RecordBulk)
			r.With(middleware.AdminOnly).Delete("/attendance/{id}", attendanceHandler.Delete)
			r.With(middleware.AdminOnly).Delete("/advances/{id}", advanceHandler.Delete)
			r.With(middleware.AdminOnly).Delete("/payments/{id}", paymentHandler.Delete)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", reportHandler.GetMonthlySummary)
				r.Get("/employees/{employeeId}", reportHandler.GetMonthlyReport)
				r.Get("/employees/{employeeId}/payslip", reportHandler.DownloadPayslip)
			})
		})
	})
	return r
}

func fileServer(r chi.Router, path string, root http.FileSystem) {
	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	fs := http.StripPrefix(strings.TrimSuffix(path, "/"), http.FileServer(root))
	r.Get(path+"*", fs.ServeHTTP)
}
