package services

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/entities"
	"admin-console/internal/repositories"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/types"
)

type RoleServiceInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]dto.RoleDTO, uint64, error)
	GetRole(ctx context.Context, id uint64) (*dto.RoleDetailsDTO, error)
	UpdateRolePermissions(ctx context.Context, id uint64, payload dto.UpdateRolePermissionsDTO) (*dto.RoleDetailsDTO, error)
}

type RoleService struct {
	roleRepo       repositories.RoleRepositoryInterface
	permissionRepo repositories.PermissionRepositoryInterface
	txManager      repositories.TxManagerInterface
	authPermission AuthPermissionServiceInterface
	logger         *zap.Logger
}

func NewRoleService(
	roleRepo repositories.RoleRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	txManager repositories.TxManagerInterface,
	authPermission AuthPermissionServiceInterface,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		txManager:      txManager,
		authPermission: authPermission,
		logger:         logger,
	}
}

func (s *RoleService) GetRoles(ctx context.Context, filter types.Filter) ([]dto.RoleDTO, uint64, error) {
	roles, total, err := s.roleRepo.GetRoles(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.RoleDTO, 0, len(roles))
	for i := range roles {
		out = append(out, roleToDTO(&roles[i]))
	}
	return out, total, nil
}

func (s *RoleService) GetRole(ctx context.Context, id uint64) (*dto.RoleDetailsDTO, error) {
	role, err := s.roleRepo.FindWithPermissions(ctx, id)
	if err != nil {
		return nil, err
	}
	return roleToDetailsDTO(role), nil
}

// UpdateRolePermissions заменяет права роли и сбрасывает её кеш прав.
// Уже выданные токены продолжают нести старый список до обновления.
func (s *RoleService) UpdateRolePermissions(ctx context.Context, id uint64, payload dto.UpdateRolePermissionsDTO) (*dto.RoleDetailsDTO, error) {
	if _, err := s.roleRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	ids := uniqueIDs(payload.PermissionIDs)
	found, err := s.permissionRepo.CountByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if found != len(ids) {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Указаны несуществующие права", apperrors.ErrBadRequest, nil)
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.roleRepo.ReplacePermissionsInTx(ctx, tx, id, ids)
	})
	if err != nil {
		s.logger.Error("Не удалось обновить права роли", zap.Uint64("roleID", id), zap.Error(err))
		return nil, err
	}

	if err := s.authPermission.InvalidateRolePermissionsCache(ctx, id); err != nil {
		s.logger.Warn("Права роли обновлены, но кеш не сброшен", zap.Uint64("roleID", id), zap.Error(err))
	}
	s.logger.Info("Права роли обновлены", zap.Uint64("roleID", id), zap.Int("count", len(ids)))

	return s.GetRole(ctx, id)
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func roleToDTO(role *entities.Role) dto.RoleDTO {
	out := dto.RoleDTO{ID: role.ID, Name: role.Name, Description: role.Description}
	if role.CreatedAt != nil {
		out.CreatedAt = role.CreatedAt.Format(time.RFC3339)
	}
	return out
}

func roleToDetailsDTO(role *entities.Role) *dto.RoleDetailsDTO {
	out := &dto.RoleDetailsDTO{
		RoleDTO:         roleToDTO(role),
		RolePermissions: make([]dto.RolePermissionDTO, 0, len(role.RolePermissions)),
	}
	for _, rp := range role.RolePermissions {
		out.RolePermissions = append(out.RolePermissions, dto.RolePermissionDTO{
			ID:         rp.ID,
			Permission: permissionToDTO(rp.Permission),
		})
	}
	return out
}
