package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/services"
	"admin-console/pkg/utils"
)

type PermissionController struct {
	permissionService services.PermissionServiceInterface
	logger            *zap.Logger
}

func NewPermissionController(permissionService services.PermissionServiceInterface, logger *zap.Logger) *PermissionController {
	return &PermissionController{permissionService: permissionService, logger: logger}
}

func (ctrl *PermissionController) GetPermissions(c echo.Context) error {
	permissions, err := ctrl.permissionService.GetPermissions(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("GetPermissions: ошибка получения прав", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, permissions, "Список прав получен", http.StatusOK)
}
