package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "gymhub/docs"
	"gymhub/internal/auth"
	"gymhub/internal/cache"
	"gymhub/internal/config"
	"gymhub/internal/db"
	"gymhub/internal/handler"
	"gymhub/internal/mail"
	"gymhub/internal/model"
	"gymhub/internal/repository"
	"gymhub/internal/router"
	"gymhub/internal/service"
)

// @title Gym Management API
// @version 1.0
// @description Gym management API: membership plans, trainers, enrollment, daily attendance, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Attendance{},
			&model.Enrollment{},
			&model.Profile{},
			&model.Member{},
			&model.Trainer{},
			&model.MembershipPlan{},
			&model.Testimonial{},
			&model.ContactMessage{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.Profile{},
		&model.Enrollment{},
		&model.Attendance{},
		&model.Trainer{},
		&model.MembershipPlan{},
		&model.Testimonial{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	trainerRepo := repository.NewTrainerRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	contactRepo := repository.NewContactMessageRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	// Initialize services
	authService := service.NewAuthService(memberRepo, jwtService, tokenStore)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	catalogService := service.NewCatalogService(planRepo, trainerRepo, testimonialRepo, cacheClient)
	contactService := service.NewContactService(contactRepo, mailer, cfg.ContactEmail)
	memberService := service.NewMemberService(memberRepo, profileRepo, enrollmentRepo, attendanceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	contactHandler := handler.NewContactHandler(contactService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, catalogService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, catalogService)
	profileHandler := handler.NewProfileHandler(memberService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		enrollmentService,
		authHandler,
		catalogHandler,
		contactHandler,
		enrollmentHandler,
		attendanceHandler,
		profileHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
