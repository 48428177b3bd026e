package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bemapp/orgadmin-shell/docs"
	"github.com/bemapp/orgadmin-shell/internal/api/handler"
	"github.com/bemapp/orgadmin-shell/internal/api/middleware"
	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Sessions      ports.SessionService
	Navigation    ports.NavigationService
	Announcements ports.AnnouncementService
	Proposals     ports.ProposalService
	Roles         ports.RoleService
	Directory     ports.DirectoryService
	Devices       ports.DeviceService
	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	reg := deps.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bemshell",
		Registerer: reg,
	}))

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session (no auth required) ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Navigation)
	navHandler := handler.NewNavigationHandler(deps.Navigation)

	e.GET("/session", sessionHandler.Get)
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/logout", sessionHandler.Logout)
	e.GET("/navigation", navHandler.Get)
	e.POST("/navigation/onboarding", navHandler.MarkOnboardingSeen)

	// --- Signed-in routes ---
	authed := e.Group("", middleware.RequireSession(deps.Sessions))

	announcements := handler.NewAnnouncementHandler(deps.Announcements)
	authed.GET("/announcements", announcements.List)
	authed.GET("/announcements/unread-count", announcements.UnreadCount)
	authed.POST("/announcements", announcements.Create, middleware.Capability(domain.CanCreateAnnouncement))
	authed.DELETE("/announcements/:id", announcements.Delete, middleware.RBAC(domain.AnnouncementDeleters()...))

	proposals := handler.NewProposalHandler(deps.Proposals)
	authed.GET("/proposals", proposals.List)
	authed.GET("/proposals/statuses", proposals.Statuses)
	authed.PATCH("/proposals/:id/status", proposals.UpdateStatus, middleware.Capability(domain.CanReviewProposals))

	roles := handler.NewRoleHandler(deps.Roles)
	manageRoles := middleware.Capability(domain.CanManageRoles)
	authed.GET("/roles", roles.List, manageRoles)
	authed.DELETE("/roles/:id", roles.Delete, manageRoles)

	directory := handler.NewDirectoryHandler(deps.Directory)
	authed.GET("/ministries", directory.Ministries)
	authed.GET("/program-kerja", directory.ProgramKerja)
	authed.GET("/users", directory.Users)
	authed.GET("/activity-logs", directory.ActivityLogs)
	authed.GET("/dashboard/stats", directory.Stats)

	devices := handler.NewDeviceHandler(deps.Devices)
	authed.POST("/device-token", devices.Register)

	return e
}
