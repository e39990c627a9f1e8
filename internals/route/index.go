// file: internals/route/index.go
package routes

import (
	"log"

	"pabrikku_backend/internals/constants"
	chatRoute "pabrikku_backend/internals/features/messaging/chat/route"
	notifRoute "pabrikku_backend/internals/features/messaging/notifications/route"
	lineRoute "pabrikku_backend/internals/features/production/lines/route"
	productRoute "pabrikku_backend/internals/features/production/products/route"
	assignmentRoute "pabrikku_backend/internals/features/workforce/assignments/route"
	performanceRoute "pabrikku_backend/internals/features/workforce/performance/route"
	workerRoute "pabrikku_backend/internals/features/workforce/workers/route"
	authRoute "pabrikku_backend/internals/features/users/auth/route"
	userRoute "pabrikku_backend/internals/features/users/user/route"
	authMw "pabrikku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== AUTH (publik + secured subgroup) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	// ===================== LOGIN WAJIB =====================
	log.Println("[INFO] Setting up PROTECTED group...")
	protected := api.Group("", authMw.AuthMiddleware(db))

	chatRoute.ChatRoutes(protected, db)
	notifRoute.NotificationRoutes(protected, db)

	// ===================== STAFF (supervisor ke atas) =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := protected.Group("", authMw.OnlyRoles(
		constants.RoleErrorSupervisor("manajemen pabrik"),
		constants.SupervisorAndAbove...,
	))

	workerRoute.WorkerRoutes(staff, db)
	lineRoute.ProductionLineRoutes(staff, db)
	productRoute.ProductRoutes(staff, db)
	assignmentRoute.AssignmentRoutes(staff, db)
	performanceRoute.PerformanceRoutes(staff, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := protected.Group("", authMw.OnlyRoles(
		constants.RoleErrorAdmin("manajemen user"),
		constants.AdminOnly...,
	))
	userRoute.UserRoutes(admin, db)
}
