package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository/repotest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	repo, _ := repotest.New()
	return NewAuthService(repo.Users, &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})
}

func TestSignup(t *testing.T) {
	repo, store := repotest.New()
	svc := NewAuthService(repo.Users, &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})
	ctx := context.Background()

	data, err := svc.Signup(ctx, &dto.SignupRequest{Name: " Ada ", Email: "Ada@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.User.Name)
	assert.Equal(t, "ada@example.com", data.User.Email)
	assert.Equal(t, "user", data.User.Role)
	assert.NotNil(t, data.User.LastLogin)
	assert.NotEmpty(t, data.Token)

	token, err := jwt.Parse(data.Token, func(*jwt.Token) (interface{}, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, data.User.ID.String(), claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])

	t.Run("duplicate email is case-insensitive", func(t *testing.T) {
		_, err := svc.Signup(ctx, &dto.SignupRequest{Name: "Ada", Email: "ADA@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Equal(t, 1, store.UserCount())
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.Signup(ctx, &dto.SignupRequest{Name: "Bob", Email: "bob", Password: "secret1"})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestLogin_IdenticalFailureMessages(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, &dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "nope12"})
	_, unknownEmail := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, "Invalid email or password", wrongPassword.Error())

	data, err := svc.Login(ctx, &dto.LoginRequest{Email: " ADA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, data.Token)
	assert.NotNil(t, data.User.LastLogin)
}

func TestLogin_UnknownEmailStillHashes(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, &dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	calls := 0
	original := compareHash
	compareHash = func(hash, password []byte) error {
		calls++
		assert.NotEmpty(t, hash)
		return original(hash, password)
	}
	t.Cleanup(func() { compareHash = original })

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, calls)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "nope12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 2, calls)
}

func TestIssueToken_RequiresSecret(t *testing.T) {
	repo, _ := repotest.New()
	svc := NewAuthService(repo.Users, &config.Config{})
	_, err := svc.IssueToken(testUser("Ada", "ada@example.com"))
	assert.Error(t, err)
}
