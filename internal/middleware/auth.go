package middleware

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	localToken = "jwt"
	localUser  = "current_user"
	localAdmin = "is_admin"
)

const (
	MsgNoToken      = "Access denied. No token provided."
	MsgInvalidToken = "Invalid token"
	MsgTokenExpired = "Token expired"
	MsgUserGone     = "User no longer exists"
	MsgAdminOnly    = "Access denied. Admin privileges required."
)

// Guard resolves bearer tokens to users and decides who counts as an admin.
type Guard struct {
	cfg          *config.Config
	users        repository.UserRepository
	adminEmails  []string
	adminUserIDs []string
}

func NewGuard(cfg *config.Config, users repository.UserRepository) *Guard {
	return &Guard{
		cfg:          cfg,
		users:        users,
		adminEmails:  parseCSV(cfg.AdminEmails),
		adminUserIDs: parseCSV(cfg.AdminUserIDs),
	}
}

type guardMode int

const (
	modeRequired guardMode = iota
	modeOptional
	modeAdmin
)

func deny(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

// tokenErrorMessage classifies a token failure for the 401 response.
func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
		return MsgNoToken
	case errors.Is(err, jwt.ErrTokenExpired):
		return MsgTokenExpired
	default:
		return MsgInvalidToken
	}
}

func (g *Guard) middleware(mode guardMode) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(g.cfg.JWTSecret)},
		ContextKey: localToken,
		Filter: func(c *fiber.Ctx) bool {
			return mode == modeAdmin && g.hasAdminToken(c)
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			return g.resolve(c, mode)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if mode == modeOptional {
				g.hasAdminToken(c)
				return c.Next()
			}
			return deny(c, fiber.StatusUnauthorized, tokenErrorMessage(err))
		},
	})
}

// RequireAuth rejects requests without a valid bearer token for an existing user.
func (g *Guard) RequireAuth() fiber.Handler {
	return g.middleware(modeRequired)
}

// OptionalAuth attaches the user when a valid token is present and otherwise lets the
// request through unauthenticated.
func (g *Guard) OptionalAuth() fiber.Handler {
	return g.middleware(modeOptional)
}

// AdminRequired accepts a matching X-Admin-Token header or a token for an admin user.
func (g *Guard) AdminRequired() fiber.Handler {
	return g.middleware(modeAdmin)
}

func (g *Guard) resolve(c *fiber.Ctx, mode guardMode) error {
	user, err := g.userFromToken(c)
	if err != nil {
		if mode == modeOptional {
			return c.Next()
		}
		if errors.Is(err, repository.ErrNotFound) {
			return deny(c, fiber.StatusUnauthorized, MsgUserGone)
		}
		if errors.Is(err, errBadClaims) {
			return deny(c, fiber.StatusUnauthorized, MsgInvalidToken)
		}
		slog.Error("failed to resolve token user", "error", err, "path", c.Path())
		return deny(c, fiber.StatusInternalServerError, "Internal server error")
	}

	admin := g.isAdminUser(user) || g.hasAdminToken(c)
	if mode == modeAdmin && !admin {
		return deny(c, fiber.StatusForbidden, MsgAdminOnly)
	}

	c.Locals(localUser, user)
	c.Locals(localAdmin, admin)
	return c.Next()
}

var errBadClaims = errors.New("token has no usable subject")

func (g *Guard) userFromToken(c *fiber.Ctx) (*models.User, error) {
	token, ok := c.Locals(localToken).(*jwt.Token)
	if !ok || token == nil {
		return nil, errBadClaims
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errBadClaims
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, errBadClaims
	}
	return g.users.GetByID(c.UserContext(), id)
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

// IsAdmin reports whether the request was authorized as an admin.
func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(localAdmin).(bool)
	return admin
}
