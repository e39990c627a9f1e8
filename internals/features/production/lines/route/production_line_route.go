// file: internals/features/production/lines/route/production_line_route.go
package route

import (
	linesController "pabrikku_backend/internals/features/production/lines/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProductionLineRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &linesController.ProductionLinesController{DB: db}

	r.Get("/", ctl.GetLines)
	r.Post("/", ctl.CreateLine)
	r.Get("/:id", ctl.GetLineByID)
	r.Put("/:id", ctl.UpdateLine)
	r.Patch("/:id/activate", ctl.SetLineActive(true))
	r.Patch("/:id/deactivate", ctl.SetLineActive(false))
	r.Delete("/:id", ctl.DeleteLine)
}
