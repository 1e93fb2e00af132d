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

type PageController struct {
	navService services.NavigationServiceInterface
	logger     *zap.Logger
}

func NewPageController(navService services.NavigationServiceInterface, logger *zap.Logger) *PageController {
	return &PageController{navService: navService, logger: logger}
}

// Show отдаёт описание страницы. Сюда доходят только запросы, пропущенные GuardRoute.
func (ctrl *PageController) Show(c echo.Context) error {
	page, ok := ctrl.navService.Page(c.Request().URL.EscapedPath())
	if !ok {
		return utils.ErrorResponse(c, apperrors.ErrNotFound, ctrl.logger)
	}
	return utils.SuccessResponse(c, page, page.Title, http.StatusOK)
}

func (ctrl *PageController) Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusForbidden, dto.UnauthorizedDTO{From: c.QueryParam("from")})
}

// NotFound - обработчик для неизвестных путей.
func NotFound(logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger.Debug("Неизвестный маршрут", zap.String("uri", c.Request().RequestURI))
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusNotFound, "Страница не найдена", apperrors.ErrNotFound, nil), logger)
	}
}
