package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedPermissions наполняет справочник прав из authz.AllPermissions.
func SeedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("▶️  Запуск наполнения справочника прав...")
	if err := seedPermissions(ctx, db); err != nil {
		return err
	}
	log.Println("✅ Права записаны")
	return nil
}

// SeedRolesAndAdmin создаёт роли, их связи с правами и администратора.
func SeedRolesAndAdmin(ctx context.Context, db *pgxpool.Pool, admin AdminSeed) error {
	log.Println("▶️  Запуск настройки ролей и администратора...")

	if err := seedRoles(ctx, db); err != nil {
		return err
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		return err
	}
	if admin.Email != "" {
		if err := seedAdminUser(ctx, db, admin); err != nil {
			return err
		}
	}
	log.Println("✅ Роли и администратор настроены")
	return nil
}
