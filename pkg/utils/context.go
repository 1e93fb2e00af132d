package utils

import (
	"context"

	"admin-console/internal/authz"
	"admin-console/internal/dto"
	"admin-console/pkg/contextkeys"
	apperrors "admin-console/pkg/errors"
)

// WithClaims кладёт данные сессии и Checker в контекст запроса.
func WithClaims(ctx context.Context, claims *dto.UserClaims, checker *authz.Checker) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, contextkeys.RoleIDKey, claims.RoleID)
	ctx = context.WithValue(ctx, contextkeys.UserPermissionsKey, claims)
	return context.WithValue(ctx, contextkeys.CheckerKey, checker)
}

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetClaimsFromContext(ctx context.Context) (*dto.UserClaims, error) {
	claims, ok := ctx.Value(contextkeys.UserPermissionsKey).(*dto.UserClaims)
	if !ok || claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

// CheckerFromCtx возвращает Checker текущего оператора.
// Если его нет (запрос не прошёл Auth), возвращается nil: он ведёт себя как "нет прав".
func CheckerFromCtx(ctx context.Context) *authz.Checker {
	checker, _ := ctx.Value(contextkeys.CheckerKey).(*authz.Checker)
	return checker
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}
