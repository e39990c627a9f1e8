// file: internals/features/workforce/workers/controller/worker_import_controller.go
package controller

import (
	"strings"

	workerModel "pabrikku_backend/internals/features/workforce/workers/model"
	workerService "pabrikku_backend/internals/features/workforce/workers/service"
	helper "pabrikku_backend/internals/helpers"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxImportSize = 2 << 20 // 2MB cukup untuk ribuan baris roster

// IMPORT CSV
// POST /api/workers/import  (multipart field "file")
func (h *WorkersController) ImportWorkers(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV wajib diunggah di field 'file'")
	}
	if fh.Size > maxImportSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "File terlalu besar (maks 2MB)")
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuka file")
	}
	defer f.Close()

	// sniff tipe konten — CSV terbaca sebagai text/csv atau text/plain
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca file")
	}
	if !mt.Is("text/csv") && !mt.Is("text/plain") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format file harus CSV, bukan "+mt.String())
	}
	if _, err := f.Seek(0, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca ulang file")
	}

	parsed, err := workerService.ParseWorkersCSV(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	imported := 0
	rowErrors := parsed.Errors

	// insert per baris dalam satu transaksi; baris bentrok DB dicatat, bukan menggagalkan semua
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for i := range parsed.Rows {
			row := parsed.Rows[i]
			w := row.Worker

			var cnt int64
			if err := tx.Model(&workerModel.WorkerModel{}).
				Where("lower(worker_cin) = lower(?)", w.WorkerCIN).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				rowErrors = append(rowErrors, workerService.ImportRowError{
					Line:    row.Line,
					Message: "cin " + w.WorkerCIN + " sudah terdaftar",
				})
				continue
			}

			// savepoint per baris supaya bentrok unik tidak membatalkan seluruh transaksi
			if err := tx.Transaction(func(tx2 *gorm.DB) error {
				return tx2.Create(&w).Error
			}); err != nil {
				msg := strings.ToLower(err.Error())
				if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
					rowErrors = append(rowErrors, workerService.ImportRowError{
						Line:    row.Line,
						Message: "cin/email/telepon " + w.WorkerCIN + " bentrok dengan data lain",
					})
					continue
				}
				return err
			}
			imported++
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal: "+err.Error())
	}

	return helper.JsonOK(c, "Import selesai", fiber.Map{
		"imported": imported,
		"failed":   len(rowErrors),
		"errors":   rowErrors,
	})
}
