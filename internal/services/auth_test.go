package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"admin-console/internal/authz"
	"admin-console/internal/dto"
	"admin-console/internal/entities"
	"admin-console/internal/repositories"
	"admin-console/pkg/config"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/service"
	"admin-console/pkg/utils"
)

type AuthServiceSuite struct {
	suite.Suite
	ctx      context.Context
	cache    *memoryCache
	users    *fakeUserRepo
	roles    *fakeRoleRepo
	notifier *captureNotifier
	jwt      service.JWTService
	perms    AuthPermissionServiceInterface
	cfg      config.AuthConfig
	svc      *AuthService
}

const (
	operatorEmail    = "support@example.com"
	operatorPassword = "secret-pass"
)

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	hash, err := utils.HashPassword(operatorPassword)
	s.Require().NoError(err)

	s.cache = newMemoryCache()
	s.users = newFakeUserRepo(
		&entities.User{ID: 10, Name: "Оператор", Email: operatorEmail, Password: hash, RoleID: 3,
			StatusCode: entities.UserStatusActive, PhoneNumber: null.StringFrom("+992900000000")},
		&entities.User{ID: 11, Name: "Заблокирован", Email: "blocked@example.com", Password: hash, RoleID: 3,
			StatusCode: entities.UserStatusBlocked},
	)
	s.roles = newFakeRoleRepo(&entities.Role{
		ID: 3, Name: "Поддержка",
		RolePermissions: rolePerms(authz.CanViewUsers, authz.CanViewTickets, authz.CanViewUsers),
	})
	s.notifier = &captureNotifier{}
	s.jwt = service.NewJWTService("test", time.Hour, time.Hour)

	s.perms = NewAuthPermissionService(s.roles, s.cache, zap.NewNop(), time.Minute)
	s.cfg = config.AuthConfig{
		MaxCodeAttempts:     3,
		LockoutDuration:     15 * time.Minute,
		VerificationCodeTTL: 5 * time.Minute,
		ResendInterval:      time.Minute,
	}
	s.svc = s.newService(s.cache)
}

func (s *AuthServiceSuite) newService(cache repositories.CacheRepositoryInterface) *AuthService {
	return NewAuthService(s.users, s.roles, cache, s.perms, s.jwt, s.notifier, BcryptVerifier{}, zap.NewNop(), s.cfg)
}

func (s *AuthServiceSuite) login() string {
	resp, err := s.svc.Login(s.ctx, dto.LoginDTO{Email: operatorEmail, Password: operatorPassword})
	s.Require().NoError(err)
	s.Equal(300, resp.ExpiresIn)
	code := s.notifier.codes[operatorEmail]
	s.Require().Len(code, 6)
	return code
}

func (s *AuthServiceSuite) TestFullLoginFlowFlattensPermissions() {
	code := s.login()

	session, err := s.svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: code})
	s.Require().NoError(err)

	s.Equal([]string{authz.CanViewUsers, authz.CanViewTickets}, session.User.Permissions)
	s.Equal("Поддержка", session.User.Role)
	s.Equal("+992900000000", session.User.Phone)

	claims, err := s.jwt.ValidateToken(session.AccessToken)
	s.Require().NoError(err)
	s.Equal(session.User.Permissions, claims.Permissions)
	s.Contains(s.users.lastLogin, uint64(10))

	_, err = s.cache.Get(s.ctx, otpCodeKey(operatorEmail))
	s.Error(err, "код одноразовый")
}

func (s *AuthServiceSuite) TestWrongPassword() {
	_, err := s.svc.Login(s.ctx, dto.LoginDTO{Email: operatorEmail, Password: "nope-nope"})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = s.svc.Login(s.ctx, dto.LoginDTO{Email: "ghost@example.com", Password: operatorPassword})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestBlockedUser() {
	_, err := s.svc.Login(s.ctx, dto.LoginDTO{Email: "blocked@example.com", Password: operatorPassword})
	s.ErrorIs(err, apperrors.ErrUserInactive)
}

func (s *AuthServiceSuite) TestResendThrottled() {
	s.login()

	_, err := s.svc.SendCode(s.ctx, dto.SendCodeDTO{Email: operatorEmail})
	s.ErrorIs(err, apperrors.ErrCodeThrottled)
}

func (s *AuthServiceSuite) TestUnknownEmailGetsSameAnswer() {
	resp, err := s.svc.SendCode(s.ctx, dto.SendCodeDTO{Email: "ghost@example.com"})
	s.Require().NoError(err)
	s.NotEmpty(resp.ChallengeID)
	s.Empty(s.notifier.codes)
}

func (s *AuthServiceSuite) TestLockoutAfterMaxAttempts() {
	code := s.login()
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	_, err := s.svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: wrong})
	s.ErrorIs(err, apperrors.ErrInvalidCode)
	s.Equal(15*time.Minute, s.cache.ttl[otpAttemptsKey(operatorEmail)])

	_, err = s.svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: wrong})
	s.ErrorIs(err, apperrors.ErrInvalidCode)
	_, err = s.svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: wrong})
	s.ErrorIs(err, apperrors.ErrTooManyAttempts)

	_, err = s.svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: code})
	s.ErrorIs(err, apperrors.ErrTooManyAttempts, "после блокировки даже верный код не принимается")
}

func (s *AuthServiceSuite) TestRefreshRederivesPermissions() {
	code := s.login()
	session, err := s.svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: code})
	s.Require().NoError(err)

	s.roles.roles[3].RolePermissions = rolePerms(authz.CanViewRoles)
	s.Require().NoError(s.cache.Del(s.ctx, rolePermissionsCacheKey(3)))

	refreshed, err := s.svc.RefreshTokens(s.ctx, session.RefreshToken)
	s.Require().NoError(err)
	s.Equal([]string{authz.CanViewRoles}, refreshed.User.Permissions)

	_, err = s.svc.RefreshTokens(s.ctx, session.AccessToken)
	s.ErrorIs(err, apperrors.ErrTokenIsNotRefresh)
}

func (s *AuthServiceSuite) TestMeUsesTokenPermissions() {
	me, err := s.svc.Me(s.ctx, &dto.UserClaims{UserID: 10, RoleID: 3, Permissions: []string{authz.CanViewLedger}})
	s.Require().NoError(err)

	s.Equal([]string{authz.CanViewLedger}, me.Permissions)
	s.Equal(operatorEmail, me.Email)
}

// unavailableAttemptsCache - кеш, у которого чтение счётчика попыток падает.
type unavailableAttemptsCache struct {
	*memoryCache
}

func (c unavailableAttemptsCache) Get(ctx context.Context, key string) (string, error) {
	if key == otpAttemptsKey(operatorEmail) {
		return "", errors.New("redis: connection refused")
	}
	return c.memoryCache.Get(ctx, key)
}

func (s *AuthServiceSuite) TestLockoutCheckFailsClosedOnCacheError() {
	code := s.login()
	svc := s.newService(unavailableAttemptsCache{s.cache})

	_, err := svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: code})
	s.Require().Error(err)
	s.NotErrorIs(err, apperrors.ErrInvalidCode)

	_, err = svc.Login(s.ctx, dto.LoginDTO{Email: operatorEmail, Password: operatorPassword})
	s.Require().Error(err)
	s.NotErrorIs(err, apperrors.ErrCodeThrottled)
	s.Equal(code, s.notifier.codes[operatorEmail])
}

// concurrentReadCache отдаёт код только когда его прочитали оба запроса.
type concurrentReadCache struct {
	*memoryCache
	readers sync.WaitGroup
}

func (c *concurrentReadCache) Get(ctx context.Context, key string) (string, error) {
	v, err := c.memoryCache.Get(ctx, key)
	if key == otpCodeKey(operatorEmail) {
		c.readers.Done()
		c.readers.Wait()
	}
	return v, err
}

func (s *AuthServiceSuite) TestCodeOpensOnlyOneSession() {
	code := s.login()
	cache := &concurrentReadCache{memoryCache: s.cache}
	cache.readers.Add(2)
	svc := s.newService(cache)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.VerifyCode(s.ctx, dto.VerifyCodeDTO{Email: operatorEmail, Code: code})
			errs <- err
		}()
	}

	var opened, rejected int
	for i := 0; i < 2; i++ {
		if err := <-errs; err == nil {
			opened++
		} else if errors.Is(err, apperrors.ErrInvalidCode) {
			rejected++
		}
	}
	s.Equal(1, opened)
	s.Equal(1, rejected)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}
