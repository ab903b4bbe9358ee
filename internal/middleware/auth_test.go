package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository/repotest"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub string, exp time.Time, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

type guardFixture struct {
	app   *fiber.App
	user  *models.User
	admin *models.User
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	repo, _ := repotest.New()
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
	admin := &models.User{ID: uuid.New(), Name: "Root", Email: "root@example.com", Role: models.RoleUser}
	require.NoError(t, repo.Users.Create(ctx, user))
	require.NoError(t, repo.Users.Create(ctx, admin))

	cfg := &config.Config{JWTSecret: testSecret, AdminEmails: "Root@Example.com", AdminToken: "ops-token"}
	guard := NewGuard(cfg, repo.Users)

	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		name := ""
		if u := CurrentUser(c); u != nil {
			name = u.Name
		}
		return c.JSON(fiber.Map{"name": name, "admin": IsAdmin(c)})
	}
	app.Get("/required", guard.RequireAuth(), whoami)
	app.Get("/optional", guard.OptionalAuth(), whoami)
	app.Get("/admin", guard.AdminRequired(), whoami)

	return &guardFixture{app: app, user: user, admin: admin}
}

func (f *guardFixture) do(t *testing.T, path, token string, headers ...string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestRequireAuth(t *testing.T) {
	f := newGuardFixture(t)
	hour := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		token   string
		status  int
		message string
	}{
		{"no token", "", 401, MsgNoToken},
		{"garbage", "not-a-jwt", 401, MsgInvalidToken},
		{"wrong secret", signToken(t, f.user.ID.String(), hour, "other"), 401, MsgInvalidToken},
		{"expired", signToken(t, f.user.ID.String(), time.Now().Add(-time.Minute), testSecret), 401, MsgTokenExpired},
		{"deleted user", signToken(t, uuid.NewString(), hour, testSecret), 401, MsgUserGone},
		{"bad subject", signToken(t, "nobody", hour, testSecret), 401, MsgInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := f.do(t, "/required", tt.token)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
		})
	}

	status, body := f.do(t, "/required", signToken(t, f.user.ID.String(), hour, testSecret))
	assert.Equal(t, 200, status)
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, false, body["admin"])
}

func TestOptionalAuth(t *testing.T) {
	f := newGuardFixture(t)

	status, body := f.do(t, "/optional", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "", body["name"])

	status, body = f.do(t, "/optional", signToken(t, f.user.ID.String(), time.Now().Add(-time.Minute), testSecret))
	assert.Equal(t, 200, status)
	assert.Equal(t, "", body["name"])

	status, body = f.do(t, "/optional", signToken(t, f.user.ID.String(), time.Now().Add(time.Hour), testSecret))
	assert.Equal(t, 200, status)
	assert.Equal(t, "Ada", body["name"])
}

func TestAdminRequired(t *testing.T) {
	f := newGuardFixture(t)
	hour := time.Now().Add(time.Hour)

	status, body := f.do(t, "/admin", signToken(t, f.user.ID.String(), hour, testSecret))
	assert.Equal(t, 403, status)
	assert.Equal(t, MsgAdminOnly, body["message"])

	status, body = f.do(t, "/admin", signToken(t, f.admin.ID.String(), hour, testSecret))
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["admin"])

	status, body = f.do(t, "/admin", "", "X-Admin-Token", "ops-token")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["admin"])

	status, _ = f.do(t, "/admin", "", "X-Admin-Token", "guess")
	assert.Equal(t, 401, status)
}
