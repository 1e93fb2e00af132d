package routes

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/controllers"
	"admin-console/internal/routepath"
	"admin-console/internal/services"
	"admin-console/pkg/middleware"
)

// runPageRouter монтирует каждую страницу консоли за GuardRoute.
// Все страницы лежат под /admin.
func runPageRouter(e *echo.Echo, navService services.NavigationServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware, unauthorizedPath string) {
	pageCtrl := controllers.NewPageController(navService, logger)
	navCtrl := controllers.NewNavigationController(navService, logger)

	e.GET(routepath.Root, func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, routepath.Dashboard)
	})
	e.GET(routepath.Unauthorized, pageCtrl.Unauthorized)
	e.GET("/console/nav", navCtrl.Render, authMW.Auth)

	// Middleware вешаются на каждую страницу, а не на группу: иначе echo
	// добавит их и к catch-all группы, и неизвестный путь под /admin
	// получит отказ вместо 404.
	guard := middleware.GuardRoute(
		middleware.RedirectTo(unauthorizedPath),
		middleware.WithGuardLogger(logger),
	)
	console := e.Group(routepath.AdminPrefix)
	for _, page := range navService.Pages() {
		console.GET(strings.TrimPrefix(page.Pattern, routepath.AdminPrefix), pageCtrl.Show, authMW.Auth, guard)
	}
}
