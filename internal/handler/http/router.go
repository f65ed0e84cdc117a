package http

import (
	"log/slog"
	"os"

	"github.com/edupay/edupay-backend-go/internal/handler/http/middleware"
	"github.com/edupay/edupay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Teacher      TeacherHandler
	Structure    StructureHandler
	Payroll      PayrollHandler
	Report       ReportHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
	Config       ConfigHandler
	Audit        AuditHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "edupay-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListMine)
				r.Put("/{id}/read", h.Notification.MarkRead)
				r.Put("/read-all", h.Notification.MarkAllRead)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
					r.Put("/{id}/reset-password", h.User.ResetPassword)
					r.Put("/{id}/toggle-status", h.User.ToggleStatus)
				})

				r.Route("/teachers", func(r chi.Router) {
					r.Get("/", h.Teacher.List)
					r.Post("/", h.Teacher.Create)
					r.Get("/{id}", h.Teacher.Get)
					r.Put("/{id}", h.Teacher.Update)
					r.Delete("/{id}", h.Teacher.Delete)
				})

				r.Route("/salary-structures", func(r chi.Router) {
					r.Get("/", h.Structure.List)
					r.Post("/", h.Structure.Save)
					r.Delete("/{id}", h.Structure.Delete)
				})

				r.Get("/config", h.Config.Get)
				r.Put("/config", h.Config.Update)
				r.Get("/audit-log", h.Audit.List)
				r.Get("/stats", h.Dashboard.AdminStats)
				r.Get("/reports/payroll-summary", h.Report.Monthly)
			})

			// Accountant (and admin) payroll operations
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAccountant)

				r.Get("/teachers", h.Teacher.List)
				r.Get("/teachers/compensation", h.Teacher.Compensation)

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", h.Payroll.ListBatches)
					r.Post("/process", h.Payroll.Process)
					r.Get("/{id}/items", h.Payroll.ListItems)
					r.Post("/{id}/approve", h.Payroll.Approve)
				})
				r.Put("/payroll-items/{id}/payment-status", h.Payroll.SetItemPaymentStatus)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/monthly", h.Report.Monthly)
					r.Get("/export/excel/{id}", h.Report.ExportExcel)
					r.Get("/export/pdf/{id}", h.Report.ExportPDF)
				})
				r.Get("/payslip/{itemID}/pdf", h.Report.PayslipPDF)

				r.Get("/stats", h.Dashboard.AccountantStats)
			})

			// Teacher self-service portal
			r.Route("/teacher", func(r chi.Router) {
				r.Use(middleware.RequireTeacher)

				r.Get("/profile", h.Teacher.Profile)
				r.Put("/profile", h.Teacher.UpdateProfile)
				r.Get("/payslips", h.Report.TeacherPayslips)
				r.Get("/payslip/{itemID}/pdf", h.Report.TeacherPayslipPDF)
				r.Get("/salary-history", h.Report.SalaryHistory)
			})
		})
	})

	return r
}
