// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"pabrikku_backend/internals/features/users/auth/controller"
	"pabrikku_backend/internals/middlewares"
	authMw "pabrikku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &controller.AuthController{DB: db}

	r := api.Group("/auth")

	// publik
	r.Post("/register", ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	r.Post("/refresh-token", ctrl.RefreshToken)
	r.Post("/check-security-answer", ctrl.CheckSecurityAnswer)
	r.Post("/reset-password", ctrl.ResetPassword)

	// butuh login
	secured := r.Group("", authMw.AuthMiddleware(db))
	secured.Get("/me", ctrl.Me)
	secured.Post("/logout", ctrl.Logout)
	secured.Post("/change-password", ctrl.ChangePassword)
}
