package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-console/internal/entities"
	"admin-console/pkg/utils"
)

// AdminSeed - учётная запись первого администратора.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, admin AdminSeed) error {
	log.Printf("  - Создание администратора %s...", admin.Email)

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", admin.Email).Scan(&userID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	var roleID uint64
	if err := db.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", AdminRoleName).Scan(&roleID); err != nil {
		return fmt.Errorf("не найдена роль %q: %w", AdminRoleName, err)
	}

	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (name, email, password, role_id, status_code) VALUES ($1, $2, $3, $4, $5)`,
		admin.Name, admin.Email, hashedPassword, roleID, entities.UserStatusActive,
	)
	if err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}
	log.Println("    - Администратор создан.")
	return nil
}
