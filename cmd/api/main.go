package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/config"
	appHTTP "github.com/edupay/edupay-backend-go/internal/handler/http"
	"github.com/edupay/edupay-backend-go/internal/pkg/bootstrap"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/edupay/edupay-backend-go/internal/pkg/jwt"
	"github.com/edupay/edupay-backend-go/internal/repository/postgresql"
	auditService "github.com/edupay/edupay-backend-go/internal/service/audit"
	authService "github.com/edupay/edupay-backend-go/internal/service/auth"
	dashboardService "github.com/edupay/edupay-backend-go/internal/service/dashboard"
	notificationService "github.com/edupay/edupay-backend-go/internal/service/notification"
	payrollService "github.com/edupay/edupay-backend-go/internal/service/payroll"
	reportService "github.com/edupay/edupay-backend-go/internal/service/report"
	structureService "github.com/edupay/edupay-backend-go/internal/service/structure"
	sysconfigService "github.com/edupay/edupay-backend-go/internal/service/sysconfig"
	teacherService "github.com/edupay/edupay-backend-go/internal/service/teacher"
	userService "github.com/edupay/edupay-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	teacherRepo := postgresql.NewTeacherRepository(db)
	structureRepo := postgresql.NewStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	configRepo := postgresql.NewConfigRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	if err := bootstrap.EnsureAdminUser(context.Background(), userRepo); err != nil {
		fmt.Println("Error bootstrapping admin user:", err)
		return
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notifier := notificationService.NewNotificationService(notificationRepo, notificationService.Config{})
	defer notifier.Stop()

	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(txManager, userRepo, teacherRepo)
	teacherSvc := teacherService.NewTeacherService(txManager, teacherRepo, userRepo)
	structureSvc := structureService.NewStructureService(structureRepo)
	payrollSvc := payrollService.NewPayrollService(txManager, payrollRepo, teacherRepo, notifier)
	reportSvc := reportService.NewReportService(payrollRepo, teacherRepo, configRepo)
	configSvc := sysconfigService.NewConfigService(configRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, payrollRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, auditSvc),
		User:         appHTTP.NewUserHandler(userSvc, auditSvc),
		Teacher:      appHTTP.NewTeacherHandler(teacherSvc, auditSvc),
		Structure:    appHTTP.NewStructureHandler(structureSvc, auditSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc, auditSvc),
		Report:       appHTTP.NewReportHandler(reportSvc, payrollSvc),
		Notification: appHTTP.NewNotificationHandler(notifier),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Config:       appHTTP.NewConfigHandler(configSvc, auditSvc),
		Audit:        appHTTP.NewAuditHandler(auditSvc),
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
