package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/controllers"
	"admin-console/internal/services"
)

func runAccessRouter(secureGroup *echo.Group, accessService services.AccessServiceInterface, navService services.NavigationServiceInterface, logger *zap.Logger) {
	accessCtrl := controllers.NewAccessController(accessService, logger)
	navCtrl := controllers.NewNavigationController(navService, logger)

	secureGroup.GET("/access/route", accessCtrl.RouteAccess)
	secureGroup.POST("/access/evaluate", accessCtrl.Evaluate)
	secureGroup.GET("/navigation", navCtrl.GetTree)
}
