package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// isAdminUser checks the stored role, then the configured admin emails and ids.
func (g *Guard) isAdminUser(u *models.User) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return contains(g.adminEmails, strings.ToLower(u.Email)) || contains(g.adminUserIDs, u.ID.String())
}

// hasAdminToken marks the request as admin when X-Admin-Token matches ADMIN_TOKEN.
func (g *Guard) hasAdminToken(c *fiber.Ctx) bool {
	if g.cfg.AdminToken == "" {
		return false
	}
	header := c.Get("X-Admin-Token")
	if header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(g.cfg.AdminToken)) != 1 {
		return false
	}
	c.Locals(localAdmin, true)
	return true
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(p))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
