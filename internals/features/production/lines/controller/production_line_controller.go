// file: internals/features/production/lines/controller/production_line_controller.go
package controller

import (
	"errors"
	"strings"

	lineDTO "pabrikku_backend/internals/features/production/lines/dto"
	lineModel "pabrikku_backend/internals/features/production/lines/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type ProductionLinesController struct {
	DB *gorm.DB
}

// POST /api/production-lines
func (h *ProductionLinesController) CreateLine(c *fiber.Ctx) error {
	var req lineDTO.CreateProductionLineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	line := req.ToModel()
	if err := h.DB.Create(&line).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat production line")
	}
	return helper.JsonCreated(c, "Production line berhasil dibuat", line)
}

// GET /api/production-lines?q=&active=&page=&per_page=
func (h *ProductionLinesController) GetLines(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&lineModel.ProductionLineModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(production_line_name) LIKE ? OR lower(production_line_location) LIKE ?", like, like)
	}
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			q = q.Where("production_line_is_active = ?", true)
		case "false", "0":
			q = q.Where("production_line_is_active = ?", false)
		default:
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "active harus true/false")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung production line")
	}

	var rows []lineModel.ProductionLineModel
	if err := q.Order("production_line_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil production line")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/production-lines/:id
func (h *ProductionLinesController) GetLineByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production line id tidak valid")
	}

	var line lineModel.ProductionLineModel
	if err := h.DB.First(&line, "production_line_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeProductionLineNotFound, "Production line tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil production line")
	}
	return helper.JsonOK(c, "", line)
}

// PUT /api/production-lines/:id
func (h *ProductionLinesController) UpdateLine(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production line id tidak valid")
	}

	var req lineDTO.UpdateProductionLineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var line lineModel.ProductionLineModel
	if err := h.DB.First(&line, "production_line_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeProductionLineNotFound, "Production line tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil production line")
	}

	req.ApplyToModel(&line)
	if err := h.DB.Save(&line).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan production line")
	}
	return helper.JsonUpdated(c, "Production line berhasil diperbarui", line)
}

// PATCH /api/production-lines/:id/activate  |  /deactivate
func (h *ProductionLinesController) SetLineActive(active bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production line id tidak valid")
		}

		res := h.DB.Model(&lineModel.ProductionLineModel{}).
			Where("production_line_id = ?", id).
			Update("production_line_is_active", active)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status line")
		}
		if res.RowsAffected == 0 {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeProductionLineNotFound, "Production line tidak ditemukan")
		}

		msg := "Production line diaktifkan"
		if !active {
			msg = "Production line dinonaktifkan"
		}
		return helper.JsonUpdated(c, msg, fiber.Map{"production_line_id": id, "production_line_is_active": active})
	}
}

// DELETE /api/production-lines/:id (soft)
func (h *ProductionLinesController) DeleteLine(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production line id tidak valid")
	}

	var line lineModel.ProductionLineModel
	if err := h.DB.First(&line, "production_line_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeProductionLineNotFound, "Production line tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil production line")
	}

	if err := h.DB.Delete(&line).Error; err != nil {
		// FK constraint dari assignments dibiarkan naik apa adanya
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus production line: "+err.Error())
	}
	return helper.JsonDeleted(c, "Production line berhasil dihapus", fiber.Map{"production_line_id": id})
}
