package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedRolePermissions только добавляет недостающие связи, ручные изменения не трогает.
func seedRolePermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'role_permissions'...")

	query := `INSERT INTO role_permissions (role_id, permission_id)
			  SELECT r.id, p.id FROM roles r, permissions p
			  WHERE r.name = $1 AND p.title = ANY($2)
			  ON CONFLICT (role_id, permission_id) DO NOTHING;`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, r := range rolesData {
		perms := permissionsFor(r)
		tag, err := tx.Exec(ctx, query, r.Name, perms)
		if err != nil {
			return fmt.Errorf("роль %q: %w", r.Name, err)
		}
		log.Printf("    - %s: добавлено связей %d из %d", r.Name, tag.RowsAffected(), len(perms))
	}
	return tx.Commit(ctx)
}
