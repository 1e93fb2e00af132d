package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"admin-console/internal/authz"
	"admin-console/internal/repositories"
	apperrors "admin-console/pkg/errors"
)

type AuthPermissionServiceInterface interface {
	// GetRolePermissions - плоский список прав роли (кеш Redis, иначе БД).
	GetRolePermissions(ctx context.Context, roleID uint64) ([]string, error)
	InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error
}

type AuthPermissionService struct {
	roleRepo  repositories.RoleRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewAuthPermissionService(
	roleRepo repositories.RoleRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{
		roleRepo:  roleRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func rolePermissionsCacheKey(roleID uint64) string {
	return fmt.Sprintf("auth:permissions:role:%d", roleID)
}

func (s *AuthPermissionService) GetRolePermissions(ctx context.Context, roleID uint64) ([]string, error) {
	cacheKey := rolePermissionsCacheKey(roleID)

	cached, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		var permissions []string
		if err := json.Unmarshal([]byte(cached), &permissions); err == nil {
			s.logger.Debug("AuthPermissionService: права роли найдены в кеше", zap.Uint64("roleID", roleID))
			return permissions, nil
		} else {
			s.logger.Warn("AuthPermissionService: повреждённые данные в кеше", zap.Error(err), zap.String("key", cacheKey))
		}
	}

	role, err := s.roleRepo.FindWithPermissions(ctx, roleID)
	if err != nil {
		s.logger.Error("AuthPermissionService: не удалось получить права роли из БД", zap.Uint64("roleID", roleID), zap.Error(err))
		return nil, fmt.Errorf("права роли %d: %w", roleID, err)
	}
	permissions := authz.FlattenRolePermissions(role)

	if raw, errMarshal := json.Marshal(permissions); errMarshal != nil {
		s.logger.Error("AuthPermissionService: не удалось сериализовать права", zap.Error(errMarshal))
	} else if errSet := s.cacheRepo.Set(ctx, cacheKey, string(raw), s.cacheTTL); errSet != nil {
		s.logger.Error("AuthPermissionService: не удалось сохранить права роли в кеш", zap.Uint64("roleID", roleID), zap.Error(errSet))
	}
	return permissions, nil
}

func (s *AuthPermissionService) InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error {
	if err := s.cacheRepo.Del(ctx, rolePermissionsCacheKey(roleID)); err != nil {
		s.logger.Error("AuthPermissionService: ошибка инвалидации кеша прав роли", zap.Uint64("roleID", roleID), zap.Error(err))
		return apperrors.ErrInternalServer
	}
	s.logger.Info("AuthPermissionService: кеш прав роли инвалидирован", zap.Uint64("roleID", roleID))
	return nil
}
