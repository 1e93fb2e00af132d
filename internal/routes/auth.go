package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/controllers"
	"admin-console/internal/services"
	"admin-console/pkg/middleware"
	"admin-console/pkg/service"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, jwtSvc service.JWTService, logger *zap.Logger, authMW *middleware.AuthMiddleware, cookieSecure bool) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger, cookieSecure)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/send_code", authCtrl.SendCode)
		authGroup.POST("/verify_code", authCtrl.VerifyCode)
		authGroup.POST("/refresh_token", authCtrl.RefreshToken)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
