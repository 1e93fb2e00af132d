package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/services"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/types"
	"admin-console/pkg/utils"
)

const dbTimeoutSeconds = 5

type RoleController struct {
	roleService services.RoleServiceInterface
	logger      *zap.Logger
}

func NewRoleController(roleService services.RoleServiceInterface, logger *zap.Logger) *RoleController {
	return &RoleController{roleService: roleService, logger: logger}
}

func (ctrl *RoleController) GetRoles(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	ctx, cancel := utils.ContextWithTimeout(c, dbTimeoutSeconds)
	defer cancel()

	roles, total, err := ctrl.roleService.GetRoles(ctx, filter)
	if err != nil {
		ctrl.logger.Error("GetRoles: ошибка получения ролей", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	pagination := types.NewPagination(total, filter.Page, filter.Limit)
	return c.JSON(http.StatusOK, dto.PaginatedSuccessResponse[dto.RoleDTO]{
		Status:     true,
		Message:    "Список ролей получен",
		Data:       roles,
		Pagination: &pagination,
	})
}

func (ctrl *RoleController) GetRole(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	ctx, cancel := utils.ContextWithTimeout(c, dbTimeoutSeconds)
	defer cancel()

	role, err := ctrl.roleService.GetRole(ctx, id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, role, "Роль получена", http.StatusOK)
}

func (ctrl *RoleController) UpdatePermissions(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateRolePermissionsDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	ctx, cancel := utils.ContextWithTimeout(c, dbTimeoutSeconds)
	defer cancel()

	role, err := ctrl.roleService.UpdateRolePermissions(ctx, id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, role, "Права роли обновлены", http.StatusOK)
}

func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("Неверный формат ID")
	}
	return id, nil
}
