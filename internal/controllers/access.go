package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/services"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/utils"
)

type AccessController struct {
	accessService services.AccessServiceInterface
	logger        *zap.Logger
}

func NewAccessController(accessService services.AccessServiceInterface, logger *zap.Logger) *AccessController {
	return &AccessController{accessService: accessService, logger: logger}
}

func (ctrl *AccessController) RouteAccess(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Параметр path обязателен"), ctrl.logger)
	}

	checker := utils.CheckerFromCtx(c.Request().Context())
	return utils.SuccessResponse(c, ctrl.accessService.RouteAccess(checker, path), "Доступ к маршруту определён", http.StatusOK)
}

func (ctrl *AccessController) Evaluate(c echo.Context) error {
	var payload dto.EvaluateAccessDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	checker := utils.CheckerFromCtx(c.Request().Context())
	return utils.SuccessResponse(c, ctrl.accessService.Evaluate(checker, payload), "Проверка выполнена", http.StatusOK)
}
