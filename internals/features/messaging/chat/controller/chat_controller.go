// file: internals/features/messaging/chat/controller/chat_controller.go
package controller

import (
	"log"
	"strings"

	chathub "pabrikku_backend/internals/features/messaging/chat/hub"
	chatModel "pabrikku_backend/internals/features/messaging/chat/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatController struct {
	DB  *gorm.DB
	Hub *chathub.Hub
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db, Hub: chathub.GlobalHub}
}

type inboundChat struct {
	Body string `json:"body"`
}

// HISTORY
// GET /api/chat/messages?room=general
func (h *ChatController) GetMessages(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)
	room := strings.TrimSpace(c.Query("room"))
	if room == "" {
		room = "general"
	}

	q := h.DB.Model(&chatModel.ChatMessageModel{}).
		Where("chat_message_room = ?", room)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	var rows []chatModel.ChatMessageModel
	if err := q.Order("chat_message_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "Riwayat chat", rows, pg)
}

// UpgradeGuard menolak request non-websocket sebelum handler upgrade.
func UpgradeGuard(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WS
// GET /api/chat/ws?room=general (setelah AuthMiddleware)
func (h *ChatController) ServeWS() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userIDStr, _ := conn.Locals(helper.LocUserID).(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			_ = conn.Close()
			return
		}
		userName, _ := conn.Locals(helper.LocUserName).(string)
		room := strings.TrimSpace(conn.Query("room"))
		if room == "" {
			room = "general"
		}

		client := &chathub.Client{
			UserID: userID,
			Room:   room,
			Conn:   conn,
			Send:   make(chan []byte, 32),
		}
		h.Hub.Register <- client

		// writer: tiap koneksi satu goroutine penulis supaya tidak ada
		// dua goroutine menulis ke conn yang sama
		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		// reader
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}
			var in inboundChat
			if err := sonic.Unmarshal(raw, &in); err != nil {
				continue
			}
			body := strings.TrimSpace(in.Body)
			if body == "" || len(body) > 2000 {
				continue
			}

			msg := chatModel.ChatMessageModel{
				ChatMessageSenderID:   userID,
				ChatMessageSenderName: userName,
				ChatMessageRoom:       room,
				ChatMessageBody:       body,
			}
			if err := h.DB.Create(&msg).Error; err != nil {
				log.Printf("[ERROR] chat: simpan pesan: %v", err)
				continue
			}

			out, err := sonic.Marshal(map[string]any{
				"event":   "chat_message",
				"message": msg,
			})
			if err != nil {
				continue
			}
			h.Hub.BroadcastRoom(room, out)
		}

		h.Hub.Unregister <- client
		<-done
		_ = conn.Close()
	})
}
