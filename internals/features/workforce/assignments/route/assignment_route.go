// file: internals/features/workforce/assignments/route/assignment_route.go
package route

import (
	"pabrikku_backend/internals/features/workforce/assignments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentsController(db)

	r := api.Group("/assignments")
	r.Get("/", ctrl.GetAssignments)
	r.Post("/", ctrl.CreateAssignment)
	// path statis harus terdaftar sebelum /:id
	r.Get("/calendar", ctrl.GetAssignmentCalendar)
	r.Get("/conflicts", ctrl.GetAssignmentConflicts)
	r.Get("/:id", ctrl.GetAssignmentByID)
	r.Put("/:id", ctrl.UpdateAssignment)
	r.Delete("/:id", ctrl.DeleteAssignment)
}
