// file: internals/features/messaging/notifications/controller/notification_controller.go
package controller

import (
	notifModel "pabrikku_backend/internals/features/messaging/notifications/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationsController struct {
	DB *gorm.DB
}

// LIST milik user yang login
// GET /api/notifications?unread_only=true
func (h *NotificationsController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread_only") == "true" {
		q = q.Where("notification_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	var rows []notifModel.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "Daftar notifikasi", rows, pg)
}

// GET /api/notifications/unread-count
func (h *NotificationsController) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var total int64
	if err := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}
	return helper.JsonOK(c, "Jumlah notifikasi belum dibaca", fiber.Map{"unread": total})
}

// PATCH /api/notifications/:id/read
func (h *NotificationsController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID notifikasi tidak valid")
	}

	res := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", fiber.Map{"notification_id": id})
}

// PATCH /api/notifications/read-all
func (h *NotificationsController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	res := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai dibaca", fiber.Map{"updated": res.RowsAffected})
}
