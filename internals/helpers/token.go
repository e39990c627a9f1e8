// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals mengikuti yang di-set middleware AuthJWT
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocUserName = "user_name"
)

// GetUserIDFromLocals ambil user_id (uuid) hasil parse token di middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak ada di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

func GetUserRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return strings.ToLower(strings.TrimSpace(role))
}

// GetRefreshTokenFromCookie: refresh token datang via HttpOnly cookie.
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
