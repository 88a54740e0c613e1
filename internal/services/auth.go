package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/sbilibin2017/idea-board/internal/jwt"
	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/models"
	"github.com/sbilibin2017/idea-board/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// Tokener issues and reads signed access tokens.
type Tokener interface {
	Generate(ctx context.Context, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// LoginAttemptCounter tracks failed logins per username.
type LoginAttemptCounter interface {
	Get(ctx context.Context, username string) (int64, error)
	Increment(ctx context.Context, username string) (int64, error)
	Reset(ctx context.Context, username string) error
}

// AuthService handles signup, login and token resolution.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokener     Tokener
	attempts    LoginAttemptCounter
	maxAttempts int64
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithLoginThrottle rejects logins for a username once maxAttempts
// failures are recorded. A nil counter or maxAttempts <= 0 disables it.
func WithLoginThrottle(attempts LoginAttemptCounter, maxAttempts int64) AuthOption {
	return func(svc *AuthService) {
		if attempts == nil || maxAttempts <= 0 {
			return
		}
		svc.attempts = attempts
		svc.maxAttempts = maxAttempts
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokener Tokener, opts ...AuthOption) *AuthService {
	svc := &AuthService{
		reader:  reader,
		writer:  writer,
		tokener: tokener,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// HashPassword returns a bcrypt hash of password. Any input length is accepted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether hash was produced from password.
// A malformed hash yields false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}

// bcryptInput maps every password to a fixed 44-byte digest so that
// bcrypt's 72-byte input limit never truncates or rejects it.
func bcryptInput(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// Signup registers a new user.
func (svc *AuthService) Signup(ctx context.Context, username, password string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			logger.Log.Errorw("user already exists", "username", username)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if svc.throttled(ctx, username) {
		return "", ErrTooManyAttempts
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "username", username)
		svc.recordFailure(ctx, username)
		return "", ErrInvalidCredentials
	}

	svc.resetFailures(ctx, username)

	return svc.IssueToken(ctx, username)
}

// IssueToken signs a token binding username.
func (svc *AuthService) IssueToken(ctx context.Context, username string) (string, error) {
	token, err := svc.tokener.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

// ResolveUser verifies the token and loads the user it names.
func (svc *AuthService) ResolveUser(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.tokener.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("invalid token", "err", err)
		return nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByUsername(ctx, claims.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("token names unknown user", "username", claims.Username)
		return nil, ErrUserNotFound
	}

	return user, nil
}

// throttled fails open when the counter is unavailable.
func (svc *AuthService) throttled(ctx context.Context, username string) bool {
	if svc.attempts == nil {
		return false
	}

	count, err := svc.attempts.Get(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to read login attempts", "username", username, "err", err)
		return false
	}
	if count >= svc.maxAttempts {
		logger.Log.Warnw("login throttled", "username", username, "attempts", count)
		return true
	}
	return false
}

func (svc *AuthService) recordFailure(ctx context.Context, username string) {
	if svc.attempts == nil {
		return
	}
	if _, err := svc.attempts.Increment(ctx, username); err != nil {
		logger.Log.Errorw("failed to record login attempt", "username", username, "err", err)
	}
}

func (svc *AuthService) resetFailures(ctx context.Context, username string) {
	if svc.attempts == nil {
		return
	}
	if err := svc.attempts.Reset(ctx, username); err != nil {
		logger.Log.Errorw("failed to reset login attempts", "username", username, "err", err)
	}
}
