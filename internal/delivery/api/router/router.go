// Package router maps API routes onto handlers.
package router

import (
	"gatehouse/config"
	"gatehouse/internal/delivery/api/router/handler"
	"gatehouse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	SignupHandler   *handler.SignupHandler
	PasswordHandler *handler.PasswordHandler
	ProfileHandler  *handler.ProfileHandler
	Registry        *prometheus.Registry
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	signupHandler   *handler.SignupHandler
	passwordHandler *handler.PasswordHandler
	profileHandler  *handler.ProfileHandler
	registry        *prometheus.Registry
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		signupHandler:   params.SignupHandler,
		passwordHandler: params.PasswordHandler,
		profileHandler:  params.ProfileHandler,
		registry:        params.Registry,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.registry != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.GET("/session", r.sessionHandler.Session)
	}

	signupGroup := e.Group("/signup")
	{
		signupGroup.POST("", r.signupHandler.Begin)
		signupGroup.GET("/verify", r.signupHandler.Verify)
		signupGroup.POST("/finalize", r.signupHandler.Finalize)
	}

	passwordGroup := e.Group("/password")
	{
		passwordGroup.POST("/forgot", r.passwordHandler.Forgot)
		passwordGroup.GET("/verify", r.passwordHandler.Verify)
		passwordGroup.POST("/reset", r.passwordHandler.Reset)
	}

	// Profile routes authenticate through the usecase, which owns the session check.
	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("/bio", r.profileHandler.ChangeBio)
	}
}
