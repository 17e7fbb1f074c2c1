package services

import (
	"context"
	"strings"
	"time"

	"unistay/errors"
	"unistay/models"
	"unistay/services/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Demo account available on every fresh store
const (
	DemoUserEmail    = "john@example.com"
	DemoUserPassword = "password123"
	DemoUserName     = "John Doe"
)

var demoSavedProperties = []string{"0-0", "1-0"}

const accessTokenCookie = "access_token"

// AuthService registers and signs in users
type AuthService struct {
	users  UserStore
	tokens *TokenService
	delay  time.Duration
	logger logger.Logger
}

type AuthServiceOptions struct {
	Users  UserStore
	Tokens *TokenService
	// Delay simulates the latency of a remote identity provider
	Delay  time.Duration
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	return &AuthService{
		users:  opts.Users,
		tokens: opts.Tokens,
		delay:  opts.Delay,
		logger: opts.Logger,
	}
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// SeedDemoUser creates the demo account unless it already exists
func SeedDemoUser(ctx context.Context, users UserStore) error {
	if _, err := users.GetByEmail(ctx, DemoUserEmail); err == nil {
		return nil
	} else if !errors.Is(err, errors.ErrUserNotFound) {
		return err
	}
	hashed, err := HashPassword(DemoUserPassword)
	if err != nil {
		return err
	}
	return users.Create(ctx, &models.User{
		Name:            DemoUserName,
		Email:           DemoUserEmail,
		Password:        hashed,
		Role:            models.RoleStudent,
		SavedProperties: append([]string(nil), demoSavedProperties...),
	})
}

// Register creates a student account and signs it in
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if err := sleepContext(ctx, s.delay); err != nil {
		return nil, "", err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidPassword, "Failed to hash password", err)
	}
	user := &models.User{
		Name:            strings.TrimSpace(name),
		Email:           strings.TrimSpace(email),
		Password:        hashed,
		Role:            models.RoleStudent,
		SavedProperties: []string{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, errors.ErrUserAlreadyExists) {
			return nil, "", errors.NewAppError(errors.ErrCodeUserExists, "Email is already registered", err)
		}
		return nil, "", err
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("Registered user %d", user.ID)
	return user, token, nil
}

// Login checks the credentials; unknown email and bad password fail the same way
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := sleepContext(ctx, s.delay); err != nil {
		return nil, "", err
	}

	invalid := errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid email or password", errors.ErrInvalidCredentials)
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return nil, "", invalid
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("Failed login for user %d", user.ID)
		return nil, "", invalid
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) ParseToken(token string) (UserInfo, error) {
	return s.tokens.ParseToken(token)
}

func (s *AuthService) issue(user *models.User) (string, error) {
	token, err := s.tokens.GenerateToken(UserInfo{UserId: user.ID, Role: user.Role})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Failed to sign token", err)
	}
	return token, nil
}

// SetTokenCookies stores the access token for browser clients
func (s *AuthService) SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(accessTokenCookie, accessToken, int(s.tokens.TTL().Seconds()), "/", "", true, false)
}

// ClearTokenCookies drops the access token cookie
func (s *AuthService) ClearTokenCookies(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", true, false)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
