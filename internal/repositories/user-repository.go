package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"admin-console/internal/entities"
	apperrors "admin-console/pkg/errors"
)

const (
	userTable  = "users"
	userFields = "id, name, email, phone_number, password, role_id, status_code, last_login_at, created_at, updated_at, deleted_at"
)

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	UpdateLastLogin(ctx context.Context, id uint64, at time.Time) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"LOWER(email)": strings.ToLower(strings.TrimSpace(email))})
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint64, at time.Time) error {
	query, args, err := psql.Update(userTable).
		Set("last_login_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для UpdateLastLogin: %w", err)
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления last_login_at: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := buildFindUserQuery(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для пользователя: %w", err)
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func buildFindUserQuery(where sq.Eq) sq.SelectBuilder {
	return psql.Select(userFields).
		From(userTable).
		Where(where).
		Where("deleted_at IS NULL").
		Limit(1)
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Password, &u.RoleID,
		&u.StatusCode, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования users: %w", err)
	}
	return &u, nil
}
