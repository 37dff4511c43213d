package auth

import (
	"errors"
	"fmt"
	"time"

	"player-roster-backend/internal/config"
	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims represents JWT token claims
type Claims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Service provides the authenticator capability: credential verification and
// token issuance. The roster engine consumes it only as a gate on privileged
// operations.
type Service struct {
	users  repository.UserRepositoryInterface
	secret []byte
	expiry time.Duration
}

// NewService creates a new authentication service
func NewService(cfg *config.Config, users repository.UserRepositoryInterface) *Service {
	expiry := time.Duration(cfg.JWTExpiryMinutes) * time.Minute
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Service{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		expiry: expiry,
	}
}

// Register creates a regular user. Admin accounts are seeded by the data
// loader, never created through this path.
func (s *Service) Register(username, password string) error {
	if username == "" || password == "" {
		return apperrors.NewValidationError("credentials", "username and password are required")
	}

	if _, err := s.users.GetByUsername(username); err == nil {
		return apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewStorageError("get user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.UserRoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return apperrors.NewStorageError("create user", err)
	}
	return nil
}

// Login verifies credentials and issues a signed token
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", apperrors.NewStorageError("get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
