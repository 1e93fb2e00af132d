package services

import (
	"context"
	"fmt"
	"time"

	ldap "github.com/go-ldap/ldap/v3"
	"go.uber.org/zap"

	"admin-console/internal/entities"
	"admin-console/pkg/config"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/utils"
)

// PasswordVerifier проверяет пароль оператора. Неверный пароль - ErrInvalidCredentials.
type PasswordVerifier interface {
	Verify(ctx context.Context, user *entities.User, password string) error
}

// NewPasswordVerifier выбирает проверку по AUTH_PASSWORD_BACKEND.
func NewPasswordVerifier(authCfg config.AuthConfig, ldapCfg config.LDAPConfig, logger *zap.Logger) PasswordVerifier {
	if authCfg.PasswordBackend == config.PasswordBackendLDAP {
		return NewLDAPVerifier(ldapCfg, logger)
	}
	return BcryptVerifier{}
}

// BcryptVerifier сверяет пароль с хешем из таблицы users.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(_ context.Context, user *entities.User, password string) error {
	if user.Password == "" {
		return apperrors.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.Password, password); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

type ldapConn interface {
	Bind(username, password string) error
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
}

type ldapDialer func(url string, timeout time.Duration) (ldapConn, func(), error)

func dialLDAP(url string, timeout time.Duration) (ldapConn, func(), error) {
	conn, err := ldap.DialURL(url)
	if err != nil {
		return nil, nil, err
	}
	conn.SetTimeout(timeout)
	return conn, func() { conn.Close() }, nil
}

// LDAPVerifier ищет оператора в каталоге по email сервисной учёткой,
// затем делает bind его DN с введённым паролем.
type LDAPVerifier struct {
	cfg    config.LDAPConfig
	dial   ldapDialer
	logger *zap.Logger
}

func NewLDAPVerifier(cfg config.LDAPConfig, logger *zap.Logger) *LDAPVerifier {
	return &LDAPVerifier{cfg: cfg, dial: dialLDAP, logger: logger}
}

func (v *LDAPVerifier) Verify(_ context.Context, user *entities.User, password string) error {
	// Пустой пароль в LDAP означает анонимный bind, он всегда "успешен".
	if password == "" {
		return apperrors.ErrInvalidCredentials
	}

	conn, closeConn, err := v.dial(v.cfg.URL, v.cfg.Timeout)
	if err != nil {
		v.logger.Error("[LDAP] Не удалось подключиться", zap.String("url", v.cfg.URL), zap.Error(err))
		return apperrors.ErrInternalServer
	}
	defer closeConn()

	if v.cfg.BindDN != "" {
		if err := conn.Bind(v.cfg.BindDN, v.cfg.BindPassword); err != nil {
			v.logger.Error("[LDAP] Bind сервисной учётной записи", zap.String("bind_dn", v.cfg.BindDN), zap.Error(err))
			return apperrors.ErrInternalServer
		}
	}

	filter := fmt.Sprintf(v.cfg.UserFilter, ldap.EscapeFilter(user.Email))
	res, err := conn.Search(ldap.NewSearchRequest(
		v.cfg.BaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 2, 0, false,
		filter,
		[]string{"dn"},
		nil,
	))
	if err != nil {
		v.logger.Error("[LDAP] Ошибка поиска", zap.String("filter", filter), zap.Error(err))
		return apperrors.ErrInternalServer
	}
	if len(res.Entries) != 1 {
		v.logger.Warn("[LDAP] Оператор не найден однозначно", zap.String("email", user.Email), zap.Int("found", len(res.Entries)))
		return apperrors.ErrInvalidCredentials
	}

	if err := conn.Bind(res.Entries[0].DN, password); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
			return apperrors.ErrInvalidCredentials
		}
		v.logger.Error("[LDAP] Bind оператора", zap.String("dn", res.Entries[0].DN), zap.Error(err))
		return apperrors.ErrInternalServer
	}
	return nil
}
