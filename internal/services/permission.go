package services

import (
	"context"

	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/entities"
	"admin-console/internal/repositories"
)

type PermissionServiceInterface interface {
	GetPermissions(ctx context.Context) ([]dto.PermissionDTO, error)
}

type PermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	logger         *zap.Logger
}

func NewPermissionService(permissionRepo repositories.PermissionRepositoryInterface, logger *zap.Logger) *PermissionService {
	return &PermissionService{permissionRepo: permissionRepo, logger: logger}
}

func (s *PermissionService) GetPermissions(ctx context.Context) ([]dto.PermissionDTO, error) {
	permissions, err := s.permissionRepo.GetPermissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermissionDTO, 0, len(permissions))
	for _, p := range permissions {
		out = append(out, permissionToDTO(p))
	}
	return out, nil
}

func permissionToDTO(p entities.Permission) dto.PermissionDTO {
	return dto.PermissionDTO{ID: p.ID, Title: p.Title, Description: p.Description}
}
