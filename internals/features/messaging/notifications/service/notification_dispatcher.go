// file: internals/features/messaging/notifications/service/notification_dispatcher.go
package service

import (
	"context"
	"log"

	chathub "pabrikku_backend/internals/features/messaging/chat/hub"
	notifModel "pabrikku_backend/internals/features/messaging/notifications/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationDispatcher: simpan notifikasi ke DB lalu dorong realtime ke
// koneksi websocket user yang sedang online. Kegagalan dispatch tidak boleh
// menggagalkan operasi utamanya, jadi semua error hanya dicatat di log.
type NotificationDispatcher struct {
	DB  *gorm.DB
	Hub *chathub.Hub
}

func NewNotificationDispatcher(db *gorm.DB) *NotificationDispatcher {
	return &NotificationDispatcher{DB: db, Hub: chathub.GlobalHub}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, userIDs []uuid.UUID, ntype, title string, payload map[string]any) {
	if len(userIDs) == 0 {
		return
	}

	raw, err := sonic.Marshal(payload)
	if err != nil {
		log.Printf("[ERROR] notification: encode payload: %v", err)
		return
	}

	rows := make([]notifModel.NotificationModel, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, notifModel.NotificationModel{
			NotificationUserID:  uid,
			NotificationType:    ntype,
			NotificationTitle:   title,
			NotificationPayload: datatypes.JSON(raw),
		})
	}
	if err := d.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		log.Printf("[ERROR] notification: simpan gagal: %v", err)
		return
	}

	if d.Hub == nil {
		return
	}
	for i := range rows {
		push, err := sonic.Marshal(map[string]any{
			"event":        "notification",
			"notification": rows[i],
		})
		if err != nil {
			continue
		}
		d.Hub.PushToUser(rows[i].NotificationUserID, push)
	}
}

// DispatchToRoles kirim ke semua user aktif dengan role tertentu.
func (d *NotificationDispatcher) DispatchToRoles(ctx context.Context, roles []string, ntype, title string, payload map[string]any) {
	var ids []uuid.UUID
	err := d.DB.WithContext(ctx).Table("users").
		Select("id").
		Where("role IN ?", roles).
		Where("is_active = ?", true).
		Scan(&ids).Error
	if err != nil {
		log.Printf("[ERROR] notification: cari user per role: %v", err)
		return
	}
	d.Dispatch(ctx, ids, ntype, title, payload)
}
