// file: internals/features/workforce/workers/route/worker_route.go
package route

import (
	workersController "pabrikku_backend/internals/features/workforce/workers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Worker routes: roster CRUD + import CSV
Mount contoh: WorkerRoutes(app.Group("/api/workers"), db)
*/
func WorkerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &workersController.WorkersController{DB: db}

	r.Get("/", ctl.GetWorkers)          // GET    /api/workers
	r.Post("/", ctl.CreateWorker)       // POST   /api/workers
	r.Post("/import", ctl.ImportWorkers) // POST  /api/workers/import (CSV)
	r.Get("/:id", ctl.GetWorkerByID)    // GET    /api/workers/:id
	r.Put("/:id", ctl.UpdateWorker)     // PUT    /api/workers/:id
	r.Delete("/:id", ctl.DeleteWorker)  // DELETE /api/workers/:id
}
