// file: internals/features/messaging/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationModel struct {
	NotificationID     uuid.UUID      `gorm:"type:uuid;primaryKey;column:notification_id" json:"notification_id"`
	NotificationUserID uuid.UUID      `gorm:"type:uuid;not null;column:notification_user_id;index" json:"notification_user_id"`
	NotificationType   string         `gorm:"column:notification_type;type:varchar(40);not null" json:"notification_type"`
	NotificationTitle  string         `gorm:"column:notification_title;type:varchar(160);not null" json:"notification_title"`
	NotificationPayload datatypes.JSON `gorm:"column:notification_payload" json:"notification_payload,omitempty"`
	NotificationIsRead bool           `gorm:"column:notification_is_read;not null;default:false;index" json:"notification_is_read"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;not null;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.NotificationID == uuid.Nil {
		n.NotificationID = uuid.New()
	}
	return nil
}
