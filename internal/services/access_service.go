package services

import (
	"admin-console/internal/authz"
	"admin-console/internal/dto"
)

const (
	ModeAny = "any"
	ModeAll = "all"
)

type AccessServiceInterface interface {
	RouteAccess(checker *authz.Checker, path string) dto.RouteAccessDTO
	Evaluate(checker *authz.Checker, payload dto.EvaluateAccessDTO) dto.EvaluateResultDTO
}

type AccessService struct{}

func NewAccessService() *AccessService {
	return &AccessService{}
}

func (s *AccessService) RouteAccess(checker *authz.Checker, path string) dto.RouteAccessDTO {
	res := checker.Table().Resolve(path)
	return dto.RouteAccessDTO{
		Path:           path,
		Pattern:        res.Pattern,
		Required:       res.Requirement.Permissions,
		Classification: string(res.Classification),
		Allowed:        checker.Allows(res),
	}
}

// Evaluate: mode "all" - нужны все права, иначе (по умолчанию) хотя бы одно.
func (s *AccessService) Evaluate(checker *authz.Checker, payload dto.EvaluateAccessDTO) dto.EvaluateResultDTO {
	if payload.Mode == ModeAll {
		return dto.EvaluateResultDTO{Allowed: checker.HasAllPermissions(payload.Required)}
	}
	return dto.EvaluateResultDTO{Allowed: checker.HasAnyPermission(payload.Required)}
}
