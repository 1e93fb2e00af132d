package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-console/internal/authz"
	"admin-console/internal/navigation"
	"admin-console/internal/repositories"
	"admin-console/internal/services"
	"admin-console/pkg/config"
	"admin-console/pkg/logger"
	"admin-console/pkg/service"
)

// BuildServices собирает репозитории и сервисы поверх Postgres и Redis.
func BuildServices(dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *logger.Loggers, cfg *config.Config) *Services {
	// --- 1. РЕПОЗИТОРИИ ---
	txManager := repositories.NewTxManager(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, loggers.Auth)
	roleRepo := repositories.NewRoleRepository(dbConn, loggers.Main)
	permissionRepo := repositories.NewPermissionRepository(dbConn, loggers.Main)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	authPermissionService := services.NewAuthPermissionService(roleRepo, cacheRepo, loggers.Auth, cfg.Auth.RolePermissionsCacheTTL)
	notifier := services.NewLogNotifier(loggers.Auth)
	passwords := services.NewPasswordVerifier(cfg.Auth, cfg.LDAP, loggers.Auth)

	return &Services{
		Auth: services.NewAuthService(
			userRepo, roleRepo, cacheRepo, authPermissionService, jwtSvc, notifier, passwords, loggers.Auth, cfg.Auth,
		),
		Role:       services.NewRoleService(roleRepo, permissionRepo, txManager, authPermissionService, loggers.Main),
		Permission: services.NewPermissionService(permissionRepo, loggers.Main),
		Navigation: services.NewNavigationService(navigation.DefaultTree, cfg.Access.TopBarVisible),
		Access:     services.NewAccessService(),
		Report:     services.NewReportService(authz.DefaultTable, navigation.DefaultTree, loggers.Main),
	}
}
