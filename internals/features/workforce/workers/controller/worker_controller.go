// file: internals/features/workforce/workers/controller/worker_controller.go
package controller

import (
	"errors"
	"strings"

	workerDTO "pabrikku_backend/internals/features/workforce/workers/dto"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type WorkersController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/workers
func (h *WorkersController) CreateWorker(c *fiber.Ctx) error {
	var req workerDTO.CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var created workerModel.WorkerModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// cek duplikat CIN (abaikan yang soft-deleted)
		var cnt int64
		if err := tx.Model(&workerModel.WorkerModel{}).
			Where("lower(worker_cin) = lower(?)", req.CIN).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi CIN")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "CIN sudah terdaftar")
		}

		if req.Email != nil {
			cnt = 0
			if err := tx.Model(&workerModel.WorkerModel{}).
				Where("lower(worker_email) = lower(?)", *req.Email).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi email")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Email sudah dipakai worker lain")
			}
		}
		if req.Phone != nil {
			cnt = 0
			if err := tx.Model(&workerModel.WorkerModel{}).
				Where("worker_phone = ?", *req.Phone).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi telepon")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Nomor telepon sudah dipakai worker lain")
			}
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "CIN/email/telepon sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat worker")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Worker berhasil dibuat", created)
}

// LIST
// GET /api/workers?q=&role=&page=&per_page=
func (h *WorkersController) GetWorkers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&workerModel.WorkerModel{})

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(worker_name) LIKE ? OR lower(worker_cin) LIKE ?", like, like)
	}
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		if !workerModel.ValidWorkerRole(role) {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "Role tidak dikenal: "+role)
		}
		q = q.Where("worker_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung worker")
	}

	var rows []workerModel.WorkerModel
	if err := q.Order("worker_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data worker")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// DETAIL
// GET /api/workers/:id
func (h *WorkersController) GetWorkerByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker id tidak valid")
	}

	var w workerModel.WorkerModel
	if err := h.DB.First(&w, "worker_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeWorkerNotFound, "Worker tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil worker")
	}

	return helper.JsonOK(c, "", w)
}

// UPDATE (partial)
// PUT /api/workers/:id
func (h *WorkersController) UpdateWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker id tidak valid")
	}

	var req workerDTO.UpdateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var updated workerModel.WorkerModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var w workerModel.WorkerModel
		if err := tx.First(&w, "worker_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Worker tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil worker")
		}

		// cek key unik yang berubah saja
		if req.CIN != nil && !strings.EqualFold(*req.CIN, w.WorkerCIN) {
			var cnt int64
			if err := tx.Model(&workerModel.WorkerModel{}).
				Where("lower(worker_cin) = lower(?) AND worker_id <> ?", *req.CIN, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi CIN")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "CIN sudah terdaftar")
			}
		}
		if req.Email != nil {
			var cnt int64
			if err := tx.Model(&workerModel.WorkerModel{}).
				Where("lower(worker_email) = lower(?) AND worker_id <> ?", *req.Email, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi email")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Email sudah dipakai worker lain")
			}
		}

		req.ApplyToModel(&w)
		if err := tx.Save(&w).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "CIN/email/telepon sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan worker")
		}
		updated = w
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Worker berhasil diperbarui", updated)
}

// DELETE (soft)
// DELETE /api/workers/:id
func (h *WorkersController) DeleteWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker id tidak valid")
	}

	var w workerModel.WorkerModel
	if err := h.DB.First(&w, "worker_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeWorkerNotFound, "Worker tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil worker")
	}

	if err := h.DB.Delete(&w).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus worker")
	}

	return helper.JsonDeleted(c, "Worker berhasil dihapus", fiber.Map{"worker_id": id})
}
