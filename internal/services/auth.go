package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"admin-console/internal/dto"
	"admin-console/internal/entities"
	"admin-console/internal/repositories"
	"admin-console/pkg/config"
	"admin-console/pkg/customvalidator"
	apperrors "admin-console/pkg/errors"
	"admin-console/pkg/service"
)

// Session - результат успешного входа или обновления токенов.
type Session struct {
	User         dto.UserPublicDTO
	AccessToken  string
	RefreshToken string
}

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.CodeSentDTO, error)
	SendCode(ctx context.Context, payload dto.SendCodeDTO) (*dto.CodeSentDTO, error)
	VerifyCode(ctx context.Context, payload dto.VerifyCodeDTO) (*Session, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*Session, error)
	Me(ctx context.Context, claims *dto.UserClaims) (*dto.UserPublicDTO, error)
}

type AuthService struct {
	userRepo    repositories.UserRepositoryInterface
	roleRepo    repositories.RoleRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	permissions AuthPermissionServiceInterface
	jwtService  service.JWTService
	notifier    Notifier
	passwords   PasswordVerifier
	logger      *zap.Logger
	cfg         config.AuthConfig
	now         func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	permissions AuthPermissionServiceInterface,
	jwtService service.JWTService,
	notifier Notifier,
	passwords PasswordVerifier,
	logger *zap.Logger,
	cfg config.AuthConfig,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		cacheRepo:   cacheRepo,
		permissions: permissions,
		jwtService:  jwtService,
		notifier:    notifier,
		passwords:   passwords,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

func otpCodeKey(email string) string     { return "otp:code:" + email }
func otpAttemptsKey(email string) string { return "otp:attempts:" + email }
func otpThrottleKey(email string) string { return "otp:throttle:" + email }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login проверяет пароль и, если он верный, отправляет одноразовый код.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.CodeSentDTO, error) {
	email := normalizeEmail(payload.Email)
	logger := s.logger.With(zap.String("email", email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn("Вход: пользователь не найден")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.passwords.Verify(ctx, user, payload.Password); err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.Warn("Вход: неверный пароль", zap.Uint64("userID", user.ID))
		}
		return nil, err
	}
	if !user.IsActive() {
		logger.Warn("Вход: учётная запись заблокирована", zap.Uint64("userID", user.ID))
		return nil, apperrors.ErrUserInactive
	}

	return s.issueCode(ctx, email)
}

// SendCode отправляет код повторно. Для неизвестного адреса ответ такой же,
// как для известного, но код никуда не уходит.
func (s *AuthService) SendCode(ctx context.Context, payload dto.SendCodeDTO) (*dto.CodeSentDTO, error) {
	email := normalizeEmail(payload.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Warn("Запрос кода для несуществующего пользователя", zap.String("email", email))
			return s.codeSentResponse(), nil
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, apperrors.ErrUserInactive
	}

	return s.issueCode(ctx, email)
}

func (s *AuthService) issueCode(ctx context.Context, email string) (*dto.CodeSentDTO, error) {
	if err := s.checkLockout(ctx, email); err != nil {
		return nil, err
	}

	ok, err := s.cacheRepo.SetNX(ctx, otpThrottleKey(email), "1", s.cfg.ResendInterval)
	if err != nil {
		return nil, fmt.Errorf("throttle: %w", err)
	}
	if !ok {
		s.logger.Warn("Слишком частые запросы кода", zap.String("email", email))
		return nil, apperrors.ErrCodeThrottled
	}

	code, err := generateCode(customvalidator.OTPCodeLength)
	if err != nil {
		return nil, err
	}
	if err := s.cacheRepo.Set(ctx, otpCodeKey(email), code, s.cfg.VerificationCodeTTL); err != nil {
		return nil, fmt.Errorf("сохранение кода: %w", err)
	}
	if err := s.notifier.SendCode(ctx, email, code, s.cfg.VerificationCodeTTL); err != nil {
		if delErr := s.cacheRepo.Del(ctx, otpCodeKey(email), otpThrottleKey(email)); delErr != nil {
			s.logger.Error("Не удалось убрать неотправленный код", zap.String("email", email), zap.Error(delErr))
		}
		return nil, fmt.Errorf("отправка кода: %w", err)
	}

	return s.codeSentResponse(), nil
}

func (s *AuthService) codeSentResponse() *dto.CodeSentDTO {
	return &dto.CodeSentDTO{
		ChallengeID: uuid.NewString(),
		ExpiresIn:   int(s.cfg.VerificationCodeTTL.Seconds()),
		ResendIn:    int(s.cfg.ResendInterval.Seconds()),
	}
}

func (s *AuthService) checkLockout(ctx context.Context, email string) error {
	raw, err := s.cacheRepo.Get(ctx, otpAttemptsKey(email))
	if err != nil {
		if errors.Is(err, repositories.ErrCacheMiss) {
			return nil
		}
		return fmt.Errorf("счётчик попыток: %w", err)
	}
	if attempts, _ := strconv.Atoi(raw); attempts >= s.cfg.MaxCodeAttempts {
		return apperrors.ErrTooManyAttempts
	}
	return nil
}

// VerifyCode проверяет код и открывает сессию.
func (s *AuthService) VerifyCode(ctx context.Context, payload dto.VerifyCodeDTO) (*Session, error) {
	email := normalizeEmail(payload.Email)
	logger := s.logger.With(zap.String("email", email))

	if err := s.checkLockout(ctx, email); err != nil {
		if errors.Is(err, apperrors.ErrTooManyAttempts) {
			logger.Warn("Проверка кода: превышено число попыток")
		}
		return nil, err
	}

	stored, err := s.cacheRepo.Get(ctx, otpCodeKey(email))
	if err != nil {
		if errors.Is(err, repositories.ErrCacheMiss) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("чтение кода: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(payload.Code)) != 1 {
		return nil, s.registerFailedAttempt(ctx, email)
	}

	// Код гасится удалением ключа: при двух одновременных запросах
	// сессию откроет только тот, кто удалил его первым.
	consumed, err := s.cacheRepo.Consume(ctx, otpCodeKey(email))
	if err != nil {
		return nil, fmt.Errorf("погашение кода: %w", err)
	}
	if !consumed {
		return nil, apperrors.ErrInvalidCode
	}
	if err := s.cacheRepo.Del(ctx, otpAttemptsKey(email)); err != nil {
		logger.Error("Не удалось сбросить счётчик попыток", zap.Error(err))
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, apperrors.ErrUserInactive
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		logger.Error("Не удалось обновить время входа", zap.Error(err))
	}
	logger.Info("Оператор вошёл", zap.Uint64("userID", user.ID), zap.Int("permissions", len(session.User.Permissions)))
	return session, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, email string) error {
	attempts, err := s.cacheRepo.Incr(ctx, otpAttemptsKey(email))
	if err != nil {
		return fmt.Errorf("счётчик попыток: %w", err)
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, otpAttemptsKey(email), s.cfg.LockoutDuration)
	}
	s.logger.Warn("Неверный код", zap.String("email", email), zap.Int64("attempts", attempts))

	if attempts >= int64(s.cfg.MaxCodeAttempts) {
		if err := s.cacheRepo.Del(ctx, otpCodeKey(email)); err != nil {
			s.logger.Error("Не удалось удалить код после блокировки", zap.String("email", email), zap.Error(err))
		}
		return apperrors.ErrTooManyAttempts
	}
	return apperrors.ErrInvalidCode
}

// RefreshTokens выпускает новую пару токенов. Права читаются заново,
// поэтому изменения роли подхватываются здесь.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, apperrors.ErrUserInactive
	}
	return s.openSession(ctx, user)
}

// Me - текущий оператор. Права берутся из токена, а не из БД.
func (s *AuthService) Me(ctx context.Context, claims *dto.UserClaims) (*dto.UserPublicDTO, error) {
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	role, err := s.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	out := userToPublicDTO(user, role, claims.Permissions)
	return &out, nil
}

func (s *AuthService) openSession(ctx context.Context, user *entities.User) (*Session, error) {
	role, err := s.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("роль пользователя: %w", err)
	}
	permissions, err := s.permissions.GetRolePermissions(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	access, refresh, err := s.jwtService.GenerateTokens(service.TokenSubject{
		UserID:      user.ID,
		RoleID:      user.RoleID,
		Permissions: permissions,
	})
	if err != nil {
		return nil, fmt.Errorf("выпуск токенов: %w", err)
	}

	return &Session{
		User:         userToPublicDTO(user, role, permissions),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func userToPublicDTO(user *entities.User, role *entities.Role, permissions []string) dto.UserPublicDTO {
	out := dto.UserPublicDTO{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.PhoneNumber.String,
		RoleID:      user.RoleID,
		Status:      user.StatusCode,
		Permissions: append([]string{}, permissions...),
	}
	if role != nil {
		out.Role = role.Name
	}
	return out
}

func generateCode(length int) (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < length; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("генерация кода: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n.Int64()), nil
}
