// file: internals/features/production/products/controller/product_controller.go
package controller

import (
	"errors"
	"strings"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	productDTO "pabrikku_backend/internals/features/production/products/dto"
	productModel "pabrikku_backend/internals/features/production/products/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type ProductsController struct {
	DB *gorm.DB
}

// POST /api/products
func (h *ProductsController) CreateProduct(c *fiber.Ctx) error {
	var req productDTO.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var created productModel.ProductModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// referensi line harus ada (kalau diisi)
		if req.ProductionLineID != nil {
			var cnt int64
			if err := tx.Model(&lineModel.ProductionLineModel{}).
				Where("production_line_id = ?", *req.ProductionLineID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek production line")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Production line tidak ditemukan")
			}
		}

		// cek duplikat code
		var cnt int64
		if err := tx.Model(&productModel.ProductModel{}).
			Where("lower(product_code) = lower(?)", req.Code).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi kode produk")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Kode produk sudah digunakan")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Kode produk sudah digunakan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat produk")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Produk berhasil dibuat", created)
}

// GET /api/products?q=&production_line_id=&active=&page=&per_page=
func (h *ProductsController) GetProducts(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&productModel.ProductModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(product_code) LIKE ? OR lower(product_name) LIKE ?", like, like)
	}
	if raw := strings.TrimSpace(c.Query("production_line_id")); raw != "" {
		lineID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production_line_id tidak valid")
		}
		q = q.Where("product_production_line_id = ?", lineID)
	}
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			q = q.Where("product_is_active = ?", true)
		case "false", "0":
			q = q.Where("product_is_active = ?", false)
		default:
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "active harus true/false")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung produk")
	}

	var rows []productModel.ProductModel
	if err := q.Order("product_code ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/products/:id
func (h *ProductsController) GetProductByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "product id tidak valid")
	}

	var prod productModel.ProductModel
	if err := h.DB.Preload("ProductProductionLine").
		First(&prod, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return helper.JsonOK(c, "", prod)
}

// PUT /api/products/:id
func (h *ProductsController) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "product id tidak valid")
	}

	var req productDTO.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var updated productModel.ProductModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var prod productModel.ProductModel
		if err := tx.First(&prod, "product_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil produk")
		}

		if req.Code != nil && !strings.EqualFold(*req.Code, prod.ProductCode) {
			var cnt int64
			if err := tx.Model(&productModel.ProductModel{}).
				Where("lower(product_code) = lower(?) AND product_id <> ?", *req.Code, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi kode produk")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Kode produk sudah digunakan")
			}
		}
		if req.ProductionLineID != nil {
			var cnt int64
			if err := tx.Model(&lineModel.ProductionLineModel{}).
				Where("production_line_id = ?", *req.ProductionLineID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek production line")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Production line tidak ditemukan")
			}
		}

		req.ApplyToModel(&prod)
		if err := tx.Save(&prod).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan produk")
		}
		updated = prod
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Produk berhasil diperbarui", updated)
}

// DELETE /api/products/:id (soft)
func (h *ProductsController) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "product id tidak valid")
	}

	var prod productModel.ProductModel
	if err := h.DB.First(&prod, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	if err := h.DB.Delete(&prod).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	return helper.JsonDeleted(c, "Produk berhasil dihapus", fiber.Map{"product_id": id})
}
