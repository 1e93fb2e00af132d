package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/services"
	"admin-console/pkg/utils"
)

type NavigationController struct {
	navService services.NavigationServiceInterface
	logger     *zap.Logger
}

func NewNavigationController(navService services.NavigationServiceInterface, logger *zap.Logger) *NavigationController {
	return &NavigationController{navService: navService, logger: logger}
}

// GetTree - меню, отфильтрованное под права оператора.
func (ctrl *NavigationController) GetTree(c echo.Context) error {
	checker := utils.CheckerFromCtx(c.Request().Context())
	return utils.SuccessResponse(c, ctrl.navService.Tree(checker), "Меню получено", http.StatusOK)
}

// Render - HTML-фрагмент меню: ?layout=sidebar|topbar&active=/admin/...
func (ctrl *NavigationController) Render(c echo.Context) error {
	checker := utils.CheckerFromCtx(c.Request().Context())

	layout := services.LayoutSidebar
	if c.QueryParam("layout") == string(services.LayoutTopBar) {
		layout = services.LayoutTopBar
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := ctrl.navService.Render(checker, layout, c.QueryParam("active")).Render(c.Response()); err != nil {
		ctrl.logger.Error("Render: не удалось отрисовать меню", zap.Error(err))
		return err
	}
	return nil
}
