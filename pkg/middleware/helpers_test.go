package middleware

import (
	"context"

	"admin-console/internal/authz"
	"admin-console/internal/dto"
	"admin-console/pkg/utils"
)

func withClaimsCtx(ctx context.Context, claims *dto.UserClaims) context.Context {
	return utils.WithClaims(ctx, claims, authz.NewChecker(claims.Permissions))
}
