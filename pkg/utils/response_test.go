package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "admin-console/pkg/errors"
)

func errorResponseFor(t *testing.T, err error) (int, HttpResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

	var body HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorResponse_SentinelWrapped(t *testing.T) {
	code, body := errorResponseFor(t, fmt.Errorf("repo: %w", apperrors.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Status)
}

func TestErrorResponse_HttpError(t *testing.T) {
	code, body := errorResponseFor(t, apperrors.NewHttpError(http.StatusConflict, "Конфликт", nil, nil))

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Конфликт", body.Message)
}

func TestErrorResponse_Validation(t *testing.T) {
	type form struct {
		Email string `validate:"required"`
	}
	err := validator.New().Struct(form{})

	code, body := errorResponseFor(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]interface{}{"email": "required"}, body.Details)
}

func TestErrorResponse_UnknownHidesDetails(t *testing.T) {
	code, body := errorResponseFor(t, fmt.Errorf("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, apperrors.ErrInternalServer.Error(), body.Message)
}
