package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"admin-console/internal/entities"
	"admin-console/internal/repositories"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/types"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = toString(value)
	c.ttl[key] = exp
	return nil
}

func (c *memoryCache) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	c.mu.Lock()
	_, exists := c.data[key]
	c.mu.Unlock()
	if exists {
		return false, nil
	}
	return true, c.Set(ctx, key, value, exp)
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		delete(c.ttl, k)
	}
	return nil
}

func (c *memoryCache) Consume(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok {
		return false, nil
	}
	delete(c.data, key)
	delete(c.ttl, key)
	return true, nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *memoryCache) Expire(_ context.Context, key string, exp time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok {
		return false, nil
	}
	c.ttl[key] = exp
	return true, nil
}

func (c *memoryCache) TTL(_ context.Context, key string) (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.ttl[key]; ok {
		return d, nil
	}
	return -2, nil
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case uint64:
		return strconv.FormatUint(t, 10)
	}
	return ""
}

type fakeUserRepo struct {
	users     map[string]*entities.User
	lastLogin map[uint64]time.Time
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entities.User{}, lastLogin: map[uint64]time.Time{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uint64, at time.Time) error {
	r.lastLogin[id] = at
	return nil
}

type fakeRoleRepo struct {
	roles    map[uint64]*entities.Role
	loads    int
	replaced map[uint64][]uint64
}

func newFakeRoleRepo(roles ...*entities.Role) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: map[uint64]*entities.Role{}, replaced: map[uint64][]uint64{}}
	for _, role := range roles {
		r.roles[role.ID] = role
	}
	return r
}

func (r *fakeRoleRepo) GetRoles(_ context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	out := make([]entities.Role, 0, len(r.roles))
	for id := uint64(1); id <= uint64(len(r.roles)); id++ {
		if role, ok := r.roles[id]; ok {
			out = append(out, *role)
		}
	}
	return out, uint64(len(out)), nil
}

func (r *fakeRoleRepo) FindByID(_ context.Context, id uint64) (*entities.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entities.Role{ID: role.ID, Name: role.Name, Description: role.Description}, nil
}

func (r *fakeRoleRepo) FindWithPermissions(_ context.Context, id uint64) (*entities.Role, error) {
	r.loads++
	role, ok := r.roles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRoleRepo) ReplacePermissionsInTx(_ context.Context, _ pgx.Tx, roleID uint64, ids []uint64) error {
	r.replaced[roleID] = ids
	role := r.roles[roleID]
	role.RolePermissions = nil
	for i, id := range ids {
		role.RolePermissions = append(role.RolePermissions, entities.RolePermission{
			ID: uint64(i + 1), RoleID: roleID, PermissionID: id,
			Permission: entities.Permission{ID: id, Title: "perm_" + strconv.FormatUint(id, 10)},
		})
	}
	return nil
}

type fakePermissionRepo struct {
	permissions []entities.Permission
}

func (r *fakePermissionRepo) GetPermissions(_ context.Context) ([]entities.Permission, error) {
	return r.permissions, nil
}

func (r *fakePermissionRepo) CountByIDs(_ context.Context, ids []uint64) (int, error) {
	n := 0
	for _, id := range ids {
		for _, p := range r.permissions {
			if p.ID == id {
				n++
				break
			}
		}
	}
	return n, nil
}

type fakeTxManager struct{ runs int }

func (m *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	m.runs++
	return fn(nil)
}

type captureNotifier struct {
	codes map[string]string
}

func (n *captureNotifier) SendCode(_ context.Context, email, code string, _ time.Duration) error {
	if n.codes == nil {
		n.codes = map[string]string{}
	}
	n.codes[email] = code
	return nil
}

func rolePerms(titles ...string) []entities.RolePermission {
	out := make([]entities.RolePermission, 0, len(titles))
	for i, t := range titles {
		out = append(out, entities.RolePermission{ID: uint64(i + 1), Permission: entities.Permission{ID: uint64(i + 1), Title: t}})
	}
	return out
}
