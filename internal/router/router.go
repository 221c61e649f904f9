package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gymhub/internal/auth"
	"gymhub/internal/config"
	"gymhub/internal/handler"
	"gymhub/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	enrollmentService service.EnrollmentService,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	contactHandler *handler.ContactHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	attendanceHandler *handler.AttendanceHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Every page carries the derived enrollment flag.
	api.Use(handler.EnrollmentContext(jwtService, enrollmentService))

	// Public pages
	api.GET("/home", catalogHandler.Home)
	api.GET("/about", catalogHandler.About)
	api.GET("/fees", catalogHandler.Fees)
	api.GET("/trainers", catalogHandler.Trainers)
	api.POST("/contact", contactHandler.Submit)

	// Auth
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	// Enrollment routes
	secured.GET("/enroll", enrollmentHandler.Options)
	secured.POST("/enroll", enrollmentHandler.Enroll)

	// Attendance routes
	secured.GET("/attendance", attendanceHandler.Options)
	secured.POST("/attendance", attendanceHandler.CheckIn)

	// Profile route
	secured.GET("/profile", profileHandler.Profile)

	// Administrative listing
	secured.GET("/admin/messages", contactHandler.ListMessages)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
