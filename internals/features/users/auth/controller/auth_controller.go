// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	authRepo "pabrikku_backend/internals/features/users/auth/repository"
	authService "pabrikku_backend/internals/features/users/auth/service"
	helper "pabrikku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ac.DB, c)
}

func (ac *AuthController) CheckSecurityAnswer(c *fiber.Ctx) error {
	return authService.CheckSecurityAnswer(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return authService.ResetPassword(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}

// GET /api/auth/me — profil user yang sedang login
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	user, err := authRepo.FindUserByID(ac.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "Profil user", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"is_active": user.IsActive,
	})
}
