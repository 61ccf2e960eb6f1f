package service

import (
	"context"
	"testing"
	"time"

	"pushpull/studio-admin/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func trainerWithPassword(t *testing.T, password string) *domain.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		DisplayName:  "Tom",
		Email:        "tom@studio.test",
		PasswordHash: string(hashed),
		Role:         domain.RoleTrainer,
	}
}

func TestLogin(t *testing.T) {
	trainer := trainerWithPassword(t, "secret123")
	svc := NewAuthService(newMockUserRepo(trainer), testJWTSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "tom@studio.test", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, token)
	assert.Equal(t, "Tom", user.DisplayName)
	assert.Empty(t, user.PasswordHash)

	// The token must carry the user id and role claims the middleware reads.
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, trainer.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleTrainer, claims.Role)
	assert.Equal(t, "studio-admin", claims.Issuer)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(trainerWithPassword(t, "secret123")), testJWTSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "tom@studio.test", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testJWTSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@studio.test", "secret123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testJWTSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "", "")
	assert.Error(t, err)
}
