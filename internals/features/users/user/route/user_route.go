// file: internals/features/users/user/route/user_route.go
package route

import (
	"pabrikku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRoutes: manajemen user, dipasang di group admin.
func UserRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &controller.UsersController{DB: db}

	r := admin.Group("/users")
	r.Get("/", ctrl.GetUsers)
	r.Get("/:id", ctrl.GetUserByID)
	r.Put("/:id", ctrl.UpdateUser)
	r.Patch("/:id/activate", ctrl.SetUserActive(true))
	r.Patch("/:id/deactivate", ctrl.SetUserActive(false))
}
