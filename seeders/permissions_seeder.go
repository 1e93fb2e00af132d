package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"admin-console/internal/authz"
)

// КЛЮЧИК: true - обновить описание, если право с таким title уже существует.
const updateIfExists_Permissions = true

func seedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'permissions'...")

	query := `INSERT INTO permissions (title, description) VALUES ($1, $2)
			  ON CONFLICT (title) DO NOTHING;`
	if updateIfExists_Permissions {
		query = `INSERT INTO permissions (title, description) VALUES ($1, $2)
				 ON CONFLICT (title) DO UPDATE SET description = EXCLUDED.description, updated_at = NOW();`
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, p := range authz.AllPermissions {
		if _, err := tx.Exec(ctx, query, p.Title, p.Description); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
