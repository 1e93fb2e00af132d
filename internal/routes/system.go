package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/authz"
	"admin-console/internal/controllers"
	"admin-console/internal/services"
	"admin-console/pkg/middleware"
)

func runSystemRouter(
	secureGroup *echo.Group,
	roleService services.RoleServiceInterface,
	permissionService services.PermissionServiceInterface,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	roleCtrl := controllers.NewRoleController(roleService, logger)
	permissionCtrl := controllers.NewPermissionController(permissionService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	system := secureGroup.Group("/system")
	{
		system.GET("/roles", roleCtrl.GetRoles, authMW.AuthorizeAny(authz.CanListRoles))
		system.GET("/roles/:id", roleCtrl.GetRole, authMW.AuthorizeAny(authz.CanViewRoles))
		system.PUT("/roles/:id/permissions", roleCtrl.UpdatePermissions, authMW.AuthorizeAny(authz.CanEditRoles))
		system.GET("/permissions", permissionCtrl.GetPermissions, authMW.AuthorizeAny(authz.CanViewPermissions))
		system.GET("/access-matrix/export", reportCtrl.ExportAccessMatrix, authMW.AuthorizeAny(authz.CanViewPermissions))
	}
}
