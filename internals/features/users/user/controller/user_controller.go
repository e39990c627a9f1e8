// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	userDTO "pabrikku_backend/internals/features/users/user/dto"
	userModel "pabrikku_backend/internals/features/users/user/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type UsersController struct {
	DB *gorm.DB
}

// LIST (admin)
// GET /api/users?q=&role=&is_active=
func (h *UsersController) GetUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("lower(user_name) LIKE lower(?) OR lower(email) LIKE lower(?)", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", strings.ToLower(role))
	}
	if v := c.Query("is_active"); v == "true" || v == "false" {
		q = q.Where("is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var rows []userModel.UserModel
	if err := q.Order("user_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "Daftar user", userDTO.ToUserPublics(rows), pg)
}

// DETAIL (admin)
// GET /api/users/:id
func (h *UsersController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID user tidak valid")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "Detail user", userDTO.ToUserPublic(&user))
}

// UPDATE (admin, partial)
// PUT /api/users/:id
func (h *UsersController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID user tidak valid")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var user userModel.UserModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
		}

		if req.Email != nil && !strings.EqualFold(*req.Email, user.Email) {
			var cnt int64
			if err := tx.Model(&userModel.UserModel{}).
				Where("lower(email) = lower(?) AND id <> ?", *req.Email, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi email")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Email sudah dipakai user lain")
			}
		}
		if req.UserName != nil && *req.UserName != user.UserName {
			var cnt int64
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_name = ? AND id <> ?", *req.UserName, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi username")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Username sudah dipakai user lain")
			}
		}

		req.ApplyToModel(&user)
		if err := tx.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui user")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", userDTO.ToUserPublic(&user))
}

// SetUserActive: PATCH /api/users/:id/activate | /deactivate
func (h *UsersController) SetUserActive(active bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID user tidak valid")
		}

		res := h.DB.Model(&userModel.UserModel{}).
			Where("id = ?", id).
			Update("is_active", active)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status user")
		}
		if res.RowsAffected == 0 {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeNotFound, "User tidak ditemukan")
		}

		msg := "User dinonaktifkan"
		if active {
			msg = "User diaktifkan"
		}
		return helper.JsonUpdated(c, msg, fiber.Map{"id": id, "is_active": active})
	}
}
