package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/repository"
)

// ClaimsWithJWT extends dto.Claims with JWT registered claims for token
// generation and parsing.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService authenticates admin users for the management surface.
// The storefront itself is anonymous; only admin routes carry tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	admins    repository.AdminRepositoryInterface
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(admins repository.AdminRepositoryInterface, cfg AuthConfig) AuthService {
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &AuthServiceImpl{
		admins:    admins,
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  ttl,
	}
}

// Login verifies the credentials and issues an access token. Unknown
// emails and wrong passwords produce the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := ClaimsWithJWT{
		Claims: dto.Claims{
			UserID: user.ID.Hex(),
			Email:  user.Email,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Subject:   user.ID.Hex(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses and validates an access token.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claims.Claims, nil
	}
	return nil, ErrInvalidToken
}

// HashPassword hashes a plaintext password for storage. Used by seeding
// and admin creation.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
