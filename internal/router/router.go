package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasktracker/internal/config"
	"tasktracker/internal/handler"
)

// Register wires routes and middleware. Route paths match the public API
// contract exactly, so there is no version or /api prefix.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	identity echo.MiddlewareFunc,
	otpHandler *handler.OTPHandler,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	activityHandler *handler.ActivityHandler,
	notificationHandler *handler.NotificationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/send-otp", otpHandler.SendOTP)
	e.POST("/verify-otp", otpHandler.VerifyOTP)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Secured routes (require JWT authentication and a resolved identity)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), identity)

	secured.POST("/project", projectHandler.Create)
	secured.PATCH("/project/:id", projectHandler.Update)
	secured.GET("/project/:id", projectHandler.Get)
	secured.DELETE("/project/:id", projectHandler.Delete)
	secured.PUT("/project/:id/complete", projectHandler.Complete)
	secured.GET("/projects", projectHandler.List)
	secured.GET("/projects/countrevenuepending", projectHandler.Stats)
	secured.GET("/activity/recent", activityHandler.Recent)
	secured.GET("/notification", notificationHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
