package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/authz"
	"admin-console/internal/dto"
	"admin-console/internal/routepath"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/service"
	"admin-console/pkg/utils"
)

// AccessTokenCookie - cookie, в которой браузер хранит access-токен.
const AccessTokenCookie = "authToken"

type AuthMiddleware struct {
	jwtService        service.JWTService
	logger            *zap.Logger
	allowUnclassified bool
	loginPath         string
}

type AuthOption func(*AuthMiddleware)

// WithUnclassifiedPolicy - пускать ли на пути, которых нет в таблице прав.
func WithUnclassifiedPolicy(allow bool) AuthOption {
	return func(m *AuthMiddleware) { m.allowUnclassified = allow }
}

func WithLoginPath(path string) AuthOption {
	return func(m *AuthMiddleware) { m.loginPath = path }
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger, opts ...AuthOption) *AuthMiddleware {
	m := &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
		loginPath:  routepath.Login,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Auth проверяет access-токен (заголовок Bearer или cookie authToken)
// и кладёт в контекст данные сессии вместе с Checker.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractToken(c)
		if err != nil {
			return m.reject(c, err)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: ошибка валидации токена", zap.Error(err))
			return m.reject(c, err)
		}
		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: попытка доступа с refresh-токеном", zap.Uint64("userID", claims.UserID))
			return m.reject(c, apperrors.ErrTokenIsNotAccess)
		}

		userClaims := &dto.UserClaims{
			UserID:      claims.UserID,
			RoleID:      claims.RoleID,
			Permissions: claims.Permissions,
		}
		checker := authz.NewChecker(claims.Permissions, authz.AllowUnclassified(m.allowUnclassified))

		c.SetRequest(c.Request().WithContext(utils.WithClaims(c.Request().Context(), userClaims, checker)))
		return next(c)
	}
}

// AuthorizeAny пропускает, если есть хотя бы одно из прав.
func (m *AuthMiddleware) AuthorizeAny(permissions ...string) echo.MiddlewareFunc {
	return m.authorize(permissions, (*authz.Checker).HasAnyPermission)
}

// AuthorizeAll пропускает, только если есть все права.
func (m *AuthMiddleware) AuthorizeAll(permissions ...string) echo.MiddlewareFunc {
	return m.authorize(permissions, (*authz.Checker).HasAllPermissions)
}

func (m *AuthMiddleware) authorize(permissions []string, check func(*authz.Checker, []string) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			checker := utils.CheckerFromCtx(c.Request().Context())
			if !check(checker, permissions) {
				m.logger.Warn("Доступ к API запрещён",
					zap.String("uri", c.Request().RequestURI),
					zap.Strings("required", permissions),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}

// reject: страницы уводим на вход, API получает 401.
func (m *AuthMiddleware) reject(c echo.Context, err error) error {
	if wantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, loginRedirect(m.loginPath, currentPath(c)))
	}
	return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil), m.logger)
}

func extractToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", apperrors.ErrInvalidAuthHeader
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", apperrors.ErrEmptyAuthHeader
}

func loginRedirect(loginPath, from string) string {
	return routepath.UnauthorizedFrom(loginPath, from)
}
