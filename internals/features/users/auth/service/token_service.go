// file: internals/features/users/auth/service/token_service.go
package service

import (
	"log"
	"strings"

	authModel "pabrikku_backend/internals/features/users/auth/model"
	authRepo "pabrikku_backend/internals/features/users/auth/repository"
	helpers "pabrikku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
// Rotasi penuh: refresh lama dihapus, pasangan access+refresh baru diterbitkan.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// hash refresh harus ada & masih aktif di DB
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, hash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	userFull, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !userFull.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama sebelum terbitkan yang baru
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	now := nowUTC()

	newAccess, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*userFull, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal buat access baru")
	}
	newRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userFull.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal buat refresh baru")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    userFull.ID,
		Token:     computeRefreshHash(newRefresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan refresh baru")
	}

	setAuthCookies(c, newAccess, newRefresh, now)

	return helpers.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": newAccess,
	})
}
