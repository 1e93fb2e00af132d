package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")
	ErrUserInactive       = fmt.Errorf("учётная запись заблокирована")

	// Одноразовые коды
	ErrInvalidCode     = fmt.Errorf("неверный или истекший код")
	ErrTooManyAttempts = fmt.Errorf("слишком много попыток, попробуйте позже")
	ErrCodeThrottled   = fmt.Errorf("запрашивать код можно не чаще одного раза в минуту")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Общие
	ErrNotFound       = fmt.Errorf("запись не найдена")
	ErrUserNotFound   = fmt.Errorf("пользователь не найден")
	ErrBadRequest     = fmt.Errorf("неверный запрос")
	ErrInternalServer = fmt.Errorf("внутренняя ошибка сервера")
)

// HttpError - ошибка, которая знает свой HTTP-статус и сообщение для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

var statusList = []struct {
	err  error
	code int
}{
	{ErrInvalidSigningMethod, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrTokenExpired, http.StatusUnauthorized},
	{ErrTokenNotYetValid, http.StatusUnauthorized},
	{ErrTokenIsNotAccess, http.StatusUnauthorized},
	{ErrTokenIsNotRefresh, http.StatusUnauthorized},
	{ErrEmptyAuthHeader, http.StatusUnauthorized},
	{ErrInvalidAuthHeader, http.StatusUnauthorized},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrUserIDNotFoundInContext, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrUserInactive, http.StatusForbidden},
	{ErrNotFound, http.StatusNotFound},
	{ErrUserNotFound, http.StatusNotFound},
	{ErrBadRequest, http.StatusBadRequest},
	{ErrInvalidCode, http.StatusBadRequest},
	{ErrTooManyAttempts, http.StatusTooManyRequests},
	{ErrCodeThrottled, http.StatusTooManyRequests},
}

// StatusOf возвращает HTTP-статус для известных ошибок (с учётом обёрток %w).
func StatusOf(err error) int {
	for _, item := range statusList {
		if stderrors.Is(err, item.err) {
			return item.code
		}
	}
	return http.StatusInternalServerError
}
