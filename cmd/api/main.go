package main

import (
	"fmt"
	"net/http"

	"github.com/timeclock-hq/timeclock-backend-go/internal/config"
	appHTTP "github.com/timeclock-hq/timeclock-backend-go/internal/handler/http"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-hq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/timeclock-hq/timeclock-backend-go/internal/repository/postgresql"
	absenceService "github.com/timeclock-hq/timeclock-backend-go/internal/service/absence"
	attendanceService "github.com/timeclock-hq/timeclock-backend-go/internal/service/attendance"
	cardService "github.com/timeclock-hq/timeclock-backend-go/internal/service/card"
	holidayService "github.com/timeclock-hq/timeclock-backend-go/internal/service/holiday"
	tokenService "github.com/timeclock-hq/timeclock-backend-go/internal/service/token"
	userService "github.com/timeclock-hq/timeclock-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	cardRepo := postgresql.NewCardRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	absenceTypeRepo := postgresql.NewAbsenceTypeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, cardRepo, userRepo)
	absenceSvc := absenceService.NewAbsenceService(db, absenceRepo, absenceTypeRepo, userRepo)
	cardSvc := cardService.NewCardService(db, cardRepo, userRepo, companyRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	userSvc := userService.NewUserService(userRepo)
	tokenSvc := tokenService.NewTokenService(tokenRepo, userRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	cardHandler := appHTTP.NewCardHandler(cardSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	tokenHandler := appHTTP.NewTokenHandler(tokenSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		absenceHandler,
		cardHandler,
		holidayHandler,
		userHandler,
		tokenHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
