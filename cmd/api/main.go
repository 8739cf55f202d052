package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Jaganbehera1/Worker-Management-System/internal/config"
	appHTTP "github.com/Jaganbehera1/Worker-Management-System/internal/handler/http"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/database"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/jwt"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/storage"
	"github.com/Jaganbehera1/Worker-Management-System/internal/repository/postgresql"
	advanceService "github.com/Jaganbehera1/Worker-Management-System/internal/service/advance"
	attendanceService "github.com/Jaganbehera1/Worker-Management-System/internal/service/attendance"
	authService "github.com/Jaganbehera1/Worker-Management-System/internal/service/auth"
	employeeService "github.com/Jaganbehera1/Worker-Management-System/internal/service/employee"
	paymentService "github.com/Jaganbehera1/Worker-Management-System/internal/service/payment"
	reportService "github.com/Jaganbehera1/Worker-Management-System/internal/service/report"
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

	// The salary-payment store lives behind its own pool. It is allowed
	// to be unreachable at startup; reads against it fail soft and the
	// report endpoints degrade instead of the whole process refusing to
	// boot.
	paymentsDB, err := database.NewLazyPostgreSQLDB(cfg.PaymentsDB.URL)
	if err != nil {
		fmt.Println("Error connecting to payments database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(paymentsDB)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, advanceRepo, paymentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:             cfg.App.Env,
			FrontendURL:     cfg.App.FrontendURL,
			StorageBasePath: cfg.Storage.BasePath,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		advanceHandler,
		paymentHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
