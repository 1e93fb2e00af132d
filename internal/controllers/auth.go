package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/services"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/middleware"
	"admin-console/pkg/service"
	"admin-console/pkg/utils"
)

const (
	RefreshTokenCookie = "refreshToken"
	UserDataCookie     = "userData"
)

type AuthController struct {
	authService  services.AuthServiceInterface
	jwtSvc       service.JWTService
	logger       *zap.Logger
	cookieSecure bool
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cookieSecure bool,
) *AuthController {
	return &AuthController{
		authService:  authService,
		jwtSvc:       jwtSvc,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	resp, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, resp, "Код подтверждения отправлен", http.StatusOK)
}

func (ctrl *AuthController) SendCode(c echo.Context) error {
	var payload dto.SendCodeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	resp, err := ctrl.authService.SendCode(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, resp, "Если адрес зарегистрирован, код отправлен", http.StatusOK)
}

func (ctrl *AuthController) VerifyCode(c echo.Context) error {
	var payload dto.VerifyCodeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	session, err := ctrl.authService.VerifyCode(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return ctrl.respondWithSession(c, session, "Авторизация прошла успешно")
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	session, err := ctrl.authService.RefreshTokens(c.Request().Context(), cookie.Value)
	if err != nil {
		ctrl.logger.Warn("RefreshToken: отказ", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return ctrl.respondWithSession(c, session, "Токены успешно обновлены")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie, UserDataCookie} {
		c.SetCookie(ctrl.cookie(name, "", -1, name != UserDataCookie))
	}
	return utils.SuccessResponse(c, nil, "Вы успешно вышли из системы.", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	claims, err := utils.GetClaimsFromContext(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Me(c.Request().Context(), claims)
	if err != nil {
		ctrl.logger.Error("Me: ошибка получения пользователя", zap.Uint64("userID", claims.UserID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, user, "Профиль пользователя успешно получен", http.StatusOK)
}

func (ctrl *AuthController) respondWithSession(c echo.Context, session *services.Session, message string) error {
	userData, err := json.Marshal(session.User)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	accessAge := int(ctrl.jwtSvc.GetAccessTokenTTL().Seconds())
	refreshAge := int(ctrl.jwtSvc.GetRefreshTokenTTL().Seconds())

	c.SetCookie(ctrl.cookie(middleware.AccessTokenCookie, session.AccessToken, accessAge, true))
	c.SetCookie(ctrl.cookie(RefreshTokenCookie, session.RefreshToken, refreshAge, true))
	// userData читает фронтенд, поэтому без HttpOnly.
	c.SetCookie(ctrl.cookie(UserDataCookie, url.QueryEscape(string(userData)), refreshAge, false))

	return utils.SuccessResponse(c, dto.AuthResponseDTO{
		AccessToken: session.AccessToken,
		User:        session.User,
	}, message, http.StatusOK)
}

func (ctrl *AuthController) cookie(name, value string, maxAge int, httpOnly bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   ctrl.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	}
	return cookie
}
