// file: internals/features/workforce/performance/route/performance_route.go
package route

import (
	"pabrikku_backend/internals/features/workforce/performance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PerformanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &controller.PerformanceController{DB: db}

	r := api.Group("/performance")
	r.Get("/", ctrl.GetRecords)
	r.Post("/", ctrl.CreateRecord)
	// /stats sebelum /:id
	r.Get("/stats", ctrl.GetStats)
	r.Get("/:id", ctrl.GetRecordByID)
	r.Put("/:id", ctrl.UpdateRecord)
	r.Delete("/:id", ctrl.DeleteRecord)
}
