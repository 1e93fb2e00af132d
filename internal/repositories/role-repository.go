package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"admin-console/internal/entities"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/types"
)

const (
	roleTable  = "roles"
	roleFields = "id, name, description, created_at, updated_at"
)

var allowedRoleSearchColumns = []string{"name", "description"}

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Role, error)
	// FindWithPermissions - роль вместе с role_permissions[].permission.
	FindWithPermissions(ctx context.Context, id uint64) (*entities.Role, error)
	ReplacePermissionsInTx(ctx context.Context, tx pgx.Tx, roleID uint64, permissionIDs []uint64) error
}

type RoleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &RoleRepository{storage: storage, logger: logger}
}

func (r *RoleRepository) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	countQuery, countArgs, err := applyRoleSearch(psql.Select("COUNT(*)").From(roleTable), filter.Search).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки SQL подсчёта ролей: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета ролей: %w", err)
	}
	if total == 0 {
		return []entities.Role{}, 0, nil
	}

	query, args, err := buildRolesListQuery(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки SQL списка ролей: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка ролей: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var role entities.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки роли: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, total, rows.Err()
}

func (r *RoleRepository) FindByID(ctx context.Context, id uint64) (*entities.Role, error) {
	query, args, err := psql.Select(roleFields).From(roleTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для роли: %w", err)
	}
	role := &entities.Role{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка поиска роли: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) FindWithPermissions(ctx context.Context, id uint64) (*entities.Role, error) {
	role, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query, args, err := buildRolePermissionsQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL прав роли: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения прав роли: %w", err)
	}
	defer rows.Close()

	role.RolePermissions = make([]entities.RolePermission, 0)
	for rows.Next() {
		rp := entities.RolePermission{RoleID: id}
		if err := rows.Scan(&rp.ID, &rp.PermissionID, &rp.Permission.ID, &rp.Permission.Title, &rp.Permission.Description); err != nil {
			return nil, fmt.Errorf("ошибка сканирования права роли: %w", err)
		}
		role.RolePermissions = append(role.RolePermissions, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return role, nil
}

// ReplacePermissionsInTx заменяет набор прав роли целиком.
func (r *RoleRepository) ReplacePermissionsInTx(ctx context.Context, tx pgx.Tx, roleID uint64, permissionIDs []uint64) error {
	q := getQuerier(r.storage, tx)

	delQuery, delArgs, err := psql.Delete("role_permissions").Where(sq.Eq{"role_id": roleID}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL удаления связей: %w", err)
	}
	if _, err := q.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("ошибка удаления прав роли: %w", err)
	}

	if len(permissionIDs) == 0 {
		return nil
	}

	insQuery, insArgs, err := buildLinkPermissionsQuery(roleID, permissionIDs).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL привязки прав: %w", err)
	}
	if _, err := q.Exec(ctx, insQuery, insArgs...); err != nil {
		return fmt.Errorf("ошибка привязки прав к роли: %w", err)
	}
	return nil
}

func applyRoleSearch(b sq.SelectBuilder, search string) sq.SelectBuilder {
	if search == "" {
		return b
	}
	or := sq.Or{}
	for _, col := range allowedRoleSearchColumns {
		or = append(or, sq.ILike{col: "%" + search + "%"})
	}
	return b.Where(or)
}

func buildRolesListQuery(filter types.Filter) sq.SelectBuilder {
	b := applyRoleSearch(psql.Select(roleFields).From(roleTable), filter.Search).OrderBy("id")
	if filter.WithPagination && filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}
	return b
}

func buildRolePermissionsQuery(roleID uint64) sq.SelectBuilder {
	return psql.Select("rp.id", "rp.permission_id", "p.id", "p.title", "p.description").
		From("role_permissions rp").
		Join("permissions p ON p.id = rp.permission_id").
		Where(sq.Eq{"rp.role_id": roleID}).
		OrderBy("rp.id")
}

func buildLinkPermissionsQuery(roleID uint64, permissionIDs []uint64) sq.InsertBuilder {
	b := psql.Insert("role_permissions").Columns("role_id", "permission_id")
	seen := make(map[uint64]struct{}, len(permissionIDs))
	for _, pid := range permissionIDs {
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}
		b = b.Values(roleID, pid)
	}
	return b.Suffix("ON CONFLICT (role_id, permission_id) DO NOTHING")
}
