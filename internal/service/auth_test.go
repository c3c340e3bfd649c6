package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/mocks"
)

func adminFixture(t *testing.T, password string) *model.AdminUser {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &model.AdminUser{
		ID:       primitive.NewObjectID(),
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: hash,
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := AuthConfig{SecretKey: "test-secret", AccessTokenTTL: time.Minute}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		admins := new(mocks.MockAdminRepositoryInterface)
		user := adminFixture(t, "correct horse")
		admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

		svc := NewAuthService(admins, cfg)
		token, err := svc.Login(ctx, "admin@example.com", "correct horse")

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, int64(60), token.ExpiresIn)

		claims, err := svc.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		admins := new(mocks.MockAdminRepositoryInterface)
		admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(adminFixture(t, "correct horse"), nil)

		svc := NewAuthService(admins, cfg)
		_, err := svc.Login(ctx, "admin@example.com", "battery staple")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email gives the same error", func(t *testing.T) {
		admins := new(mocks.MockAdminRepositoryInterface)
		admins.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		svc := NewAuthService(admins, cfg)
		_, err := svc.Login(ctx, "nobody@example.com", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive admin cannot log in", func(t *testing.T) {
		admins := new(mocks.MockAdminRepositoryInterface)
		user := adminFixture(t, "correct horse")
		user.Active = false
		admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

		svc := NewAuthService(admins, cfg)
		_, err := svc.Login(ctx, "admin@example.com", "correct horse")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(mocks.MockAdminRepositoryInterface), AuthConfig{SecretKey: "test-secret"})
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now()
		claims := ClaimsWithJWT{
			Claims: dto.Claims{UserID: "u1", Email: "admin@example.com"},
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		svc := NewAuthService(new(mocks.MockAdminRepositoryInterface), AuthConfig{SecretKey: "test-secret"})
		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		admins := new(mocks.MockAdminRepositoryInterface)
		admins.On("FindByEmail", mock.Anything, "admin@example.com").Return(adminFixture(t, "pw"), nil)

		issuer := NewAuthService(admins, AuthConfig{SecretKey: "key-one", AccessTokenTTL: time.Minute})
		token, err := issuer.Login(ctx, "admin@example.com", "pw")
		require.NoError(t, err)

		verifier := NewAuthService(admins, AuthConfig{SecretKey: "key-two", AccessTokenTTL: time.Minute})
		_, err = verifier.ValidateToken(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
