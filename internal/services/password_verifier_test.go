package services

import (
	"context"
	"errors"
	"testing"
	"time"

	ldap "github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-console/internal/entities"
	"admin-console/pkg/config"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/utils"
)

type fakeLDAPConn struct {
	users   map[string]string
	entries []*ldap.Entry
	binds   []string
	filter  string
	closed  bool
}

func (c *fakeLDAPConn) Bind(username, password string) error {
	c.binds = append(c.binds, username)
	if c.users[username] != password {
		return ldap.NewError(ldap.LDAPResultInvalidCredentials, errors.New("invalid credentials"))
	}
	return nil
}

func (c *fakeLDAPConn) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	c.filter = req.Filter
	return &ldap.SearchResult{Entries: c.entries}, nil
}

func newTestLDAPVerifier(conn *fakeLDAPConn) *LDAPVerifier {
	v := NewLDAPVerifier(config.LDAPConfig{
		URL:          "ldap://directory",
		BindDN:       "cn=svc,dc=corp",
		BindPassword: "svc-pass",
		BaseDN:       "dc=corp",
		UserFilter:   "(mail=%s)",
	}, zap.NewNop())
	v.dial = func(string, time.Duration) (ldapConn, func(), error) {
		return conn, func() { conn.closed = true }, nil
	}
	return v
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := utils.HashPassword("pass")
	require.NoError(t, err)
	user := &entities.User{Password: hash}

	assert.NoError(t, BcryptVerifier{}.Verify(context.Background(), user, "pass"))
	assert.ErrorIs(t, BcryptVerifier{}.Verify(context.Background(), user, "nope"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, BcryptVerifier{}.Verify(context.Background(), &entities.User{}, ""), apperrors.ErrInvalidCredentials)
}

func TestLDAPVerifier_BindsUserDN(t *testing.T) {
	conn := &fakeLDAPConn{
		users:   map[string]string{"cn=svc,dc=corp": "svc-pass", "cn=ivan,dc=corp": "dir-pass"},
		entries: []*ldap.Entry{ldap.NewEntry("cn=ivan,dc=corp", nil)},
	}
	v := newTestLDAPVerifier(conn)

	err := v.Verify(context.Background(), &entities.User{Email: "ivan@corp.tj"}, "dir-pass")
	require.NoError(t, err)
	assert.Equal(t, "(mail=ivan@corp.tj)", conn.filter)
	assert.Equal(t, []string{"cn=svc,dc=corp", "cn=ivan,dc=corp"}, conn.binds)
	assert.True(t, conn.closed)
}

func TestLDAPVerifier_WrongPassword(t *testing.T) {
	conn := &fakeLDAPConn{
		users:   map[string]string{"cn=svc,dc=corp": "svc-pass", "cn=ivan,dc=corp": "dir-pass"},
		entries: []*ldap.Entry{ldap.NewEntry("cn=ivan,dc=corp", nil)},
	}

	err := newTestLDAPVerifier(conn).Verify(context.Background(), &entities.User{Email: "ivan@corp.tj"}, "bad")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLDAPVerifier_EscapesFilterAndRejectsUnknown(t *testing.T) {
	conn := &fakeLDAPConn{users: map[string]string{"cn=svc,dc=corp": "svc-pass"}}

	err := newTestLDAPVerifier(conn).Verify(context.Background(), &entities.User{Email: "x*)(uid=*"}, "p")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, `(mail=x\2a\29\28uid=\2a)`, conn.filter)
}

func TestLDAPVerifier_EmptyPasswordNeverDials(t *testing.T) {
	v := NewLDAPVerifier(config.LDAPConfig{}, zap.NewNop())
	v.dial = func(string, time.Duration) (ldapConn, func(), error) {
		t.Fatal("dial must not be called")
		return nil, nil, nil
	}

	assert.ErrorIs(t, v.Verify(context.Background(), &entities.User{Email: "a@b.c"}, ""), apperrors.ErrInvalidCredentials)
}

func TestNewPasswordVerifier(t *testing.T) {
	_, isBcrypt := NewPasswordVerifier(config.AuthConfig{PasswordBackend: config.PasswordBackendLocal}, config.LDAPConfig{}, zap.NewNop()).(BcryptVerifier)
	assert.True(t, isBcrypt)

	_, isLDAP := NewPasswordVerifier(config.AuthConfig{PasswordBackend: config.PasswordBackendLDAP}, config.LDAPConfig{}, zap.NewNop()).(*LDAPVerifier)
	assert.True(t, isLDAP)
}
