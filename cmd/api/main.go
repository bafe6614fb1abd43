package main

import (
	"fmt"
	"net/http"

	"github.com/clockwise-hr/clockwise-backend-go/internal/config"
	appHTTP "github.com/clockwise-hr/clockwise-backend-go/internal/handler/http"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/cron"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/jwt"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/sse"
	"github.com/clockwise-hr/clockwise-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clockwise-hr/clockwise-backend-go/internal/service/attendance"
	companyService "github.com/clockwise-hr/clockwise-backend-go/internal/service/company"
	notificationService "github.com/clockwise-hr/clockwise-backend-go/internal/service/notification"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notificationSvc.Stop()

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		companyRepo,
		employeeRepo,
		activityRepo,
		notificationSvc,
	)
	companySvc := companyService.NewCompanyService(db, companyRepo)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		companyRepo,
		employeeRepo,
		cfg.Attendance.CutoffTime,
		cfg.Attendance.ReconcileHour,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	activityHandler := appHTTP.NewActivityHandler(activityRepo)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		attendanceHandler,
		companyHandler,
		activityHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
