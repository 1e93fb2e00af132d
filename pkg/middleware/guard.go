package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/routepath"
	"admin-console/pkg/utils"
)

type guardConfig struct {
	redirectTo string
	logger     *zap.Logger
}

type GuardOption func(*guardConfig)

// RedirectTo - куда уводить при отказе (по умолчанию /unauthorized).
func RedirectTo(path string) GuardOption {
	return func(g *guardConfig) { g.redirectTo = path }
}

func WithGuardLogger(logger *zap.Logger) GuardOption {
	return func(g *guardConfig) { g.logger = logger }
}

func newGuardConfig(opts []GuardOption) *guardConfig {
	cfg := &guardConfig{redirectTo: routepath.Unauthorized, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Guard пропускает запрос, если у оператора есть хотя бы одно из permissions.
// Пустой список пропускает всех.
func Guard(permissions []string, opts ...GuardOption) echo.MiddlewareFunc {
	cfg := newGuardConfig(opts)
	required := append([]string(nil), permissions...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			checker := utils.CheckerFromCtx(c.Request().Context())
			if checker.HasAnyPermission(required) {
				return next(c)
			}
			return cfg.deny(c, required)
		}
	}
}

// GuardRoute берёт требования из таблицы прав по маршруту, который выбрал echo.
func GuardRoute(opts ...GuardOption) echo.MiddlewareFunc {
	cfg := newGuardConfig(opts)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			checker := utils.CheckerFromCtx(c.Request().Context())
			res := checker.Table().Resolve(routedPath(c))
			if checker.Allows(res) {
				return next(c)
			}
			return cfg.deny(c, res.Requirement.Permissions)
		}
	}
}

func (g *guardConfig) deny(c echo.Context, required []string) error {
	from := currentPath(c)
	g.logger.Warn("Доступ к странице запрещён",
		zap.String("from", from),
		zap.Strings("required", required),
		zap.String("request_id", utils.RequestIDFromCtx(c.Request().Context())),
	)

	if !wantsHTML(c) {
		return c.JSON(http.StatusForbidden, dto.UnauthorizedDTO{RedirectTo: g.redirectTo, From: from})
	}
	return c.Redirect(http.StatusSeeOther, routepath.UnauthorizedFrom(g.redirectTo, from))
}

// routedPath - шаблон зарегистрированного маршрута (/admin/users/user-details/:id).
// Сегменты с "%2F" в таблице прав не разваливаются на несколько.
// Для catch-all маршрутов - экранированный путь запроса.
func routedPath(c echo.Context) string {
	if p := c.Path(); p != "" && !strings.Contains(p, "*") {
		return p
	}
	return c.Request().URL.EscapedPath()
}

func currentPath(c echo.Context) string {
	u := c.Request().URL
	if u.RawQuery == "" {
		return u.EscapedPath()
	}
	return u.EscapedPath() + "?" + u.RawQuery
}

// wantsHTML - запрос пришёл от браузера (страница), а не от API-клиента.
func wantsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	if strings.Contains(accept, echo.MIMEApplicationJSON) {
		return false
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(accept, echo.MIMETextHTML) || (accept == "" && !strings.HasPrefix(c.Request().URL.Path, "/api/"))
}
