// file: internals/features/messaging/notifications/route/notification_route.go
package route

import (
	"pabrikku_backend/internals/features/messaging/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &controller.NotificationsController{DB: db}

	r := api.Group("/notifications")
	r.Get("/", ctrl.GetMyNotifications)
	r.Get("/unread-count", ctrl.GetUnreadCount)
	r.Patch("/read-all", ctrl.MarkAllRead)
	r.Patch("/:id/read", ctrl.MarkRead)
}
