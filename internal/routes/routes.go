package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"admin-console/internal/controllers"
	"admin-console/internal/services"
	"admin-console/pkg/config"
	"admin-console/pkg/logger"
	"admin-console/pkg/middleware"
	"admin-console/pkg/service"
)

// Services - всё, что нужно роутеру. Собирается в BuildServices или в тестах.
type Services struct {
	Auth       services.AuthServiceInterface
	Role       services.RoleServiceInterface
	Permission services.PermissionServiceInterface
	Navigation services.NavigationServiceInterface
	Access     services.AccessServiceInterface
	Report     services.ReportServiceInterface
}

func InitRouter(e *echo.Echo, svc *Services, jwtSvc service.JWTService, loggers *logger.Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ MIDDLEWARE ---
	e.Use(middleware.Recover(loggers.Main))
	e.Use(middleware.RequestID())
	e.Use(middleware.InjectLogger(loggers.Main))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "HX-Request", "HX-Target"},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	e.RouteNotFound("/*", controllers.NotFound(loggers.Main))

	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth,
		middleware.WithUnclassifiedPolicy(cfg.AllowUnclassified()),
		middleware.WithLoginPath(cfg.Access.LoginPath),
	)

	// --- 1. API ---
	api := e.Group("/api")
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, svc.Auth, jwtSvc, loggers.Auth, authMW, cfg.Server.CookieSecure)
	runAccessRouter(secureGroup, svc.Access, svc.Navigation, loggers.Access)
	runSystemRouter(secureGroup, svc.Role, svc.Permission, svc.Report, loggers.Main, authMW)

	// --- 2. КОНСОЛЬ ---
	runPageRouter(e, svc.Navigation, loggers.Access, authMW, cfg.Access.UnauthorizedPath)

	loggers.Main.Info("InitRouter: Создание маршрутов завершено", zap.Int("routes", len(e.Routes())))
}
