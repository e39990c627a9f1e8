// file: internals/features/messaging/chat/route/chat_route.go
package route

import (
	"pabrikku_backend/internals/features/messaging/chat/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ChatRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChatController(db)

	r := api.Group("/chat")
	r.Get("/messages", ctrl.GetMessages)
	r.Get("/ws", controller.UpgradeGuard, ctrl.ServeWS())
}
