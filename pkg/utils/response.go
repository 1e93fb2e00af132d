package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "admin-console/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse переводит ошибку в JSON-ответ {status:false, message}.
// Порядок: ошибки валидации, HttpError, известные sentinel-ошибки, всё остальное - 500.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := apperrors.ErrInternalServer.Error()
	var details interface{}

	var validationErrs validator.ValidationErrors
	var httpErr *apperrors.HttpError

	switch {
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = "Ошибка валидации"
		details = validationDetails(validationErrs)
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		details = httpErr.Details
	default:
		if status := apperrors.StatusOf(err); status != http.StatusInternalServerError {
			code = status
			message = err.Error()
		}
	}

	if logger != nil {
		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		}
		if code >= http.StatusInternalServerError {
			logger.Error("Ошибка обработки запроса", fields...)
		} else {
			logger.Debug("Запрос отклонён", fields...)
		}
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
		Details: details,
	})
}

func validationDetails(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			out[field] = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		} else {
			out[field] = fe.Tag()
		}
	}
	return out
}
