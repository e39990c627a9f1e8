// file: internals/features/workforce/performance/controller/performance_controller.go
package controller

import (
	"errors"
	"time"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	perfDTO "pabrikku_backend/internals/features/workforce/performance/dto"
	perfModel "pabrikku_backend/internals/features/workforce/performance/model"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type PerformanceController struct {
	DB *gorm.DB
}

func (h *PerformanceController) checkRefs(tx *gorm.DB, workerID uuid.UUID, lineID *uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&workerModel.WorkerModel{}).
		Where("worker_id = ?", workerID).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek worker")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Worker tidak ditemukan")
	}
	if lineID != nil {
		cnt = 0
		if err := tx.Model(&lineModel.ProductionLineModel{}).
			Where("production_line_id = ?", *lineID).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek production line")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Production line tidak ditemukan")
		}
	}
	return nil
}

// CREATE
// POST /api/performance
func (h *PerformanceController) CreateRecord(c *fiber.Ctx) error {
	var req perfDTO.CreatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.checkRefs(tx, record.PerformanceWorkerID, record.PerformanceProductionLineID); err != nil {
			return err
		}
		if err := tx.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan record")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}

	return helper.JsonCreated(c, "Record performa berhasil dibuat", record)
}

// LIST
// GET /api/performance?worker_id=&production_line_id=&start_date=&end_date=
func (h *PerformanceController) GetRecords(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&perfModel.PerformanceRecordModel{})
	if v := c.Query("worker_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker_id tidak valid")
		}
		q = q.Where("performance_worker_id = ?", id)
	}
	if v := c.Query("production_line_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production_line_id tidak valid")
		}
		q = q.Where("performance_production_line_id = ?", id)
	}
	if v := c.Query("start_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "start_date tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("performance_date >= ?", d)
	}
	if v := c.Query("end_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "end_date tidak valid (YYYY-MM-DD)")
		}
		_, end := helper.DayRange(d)
		q = q.Where("performance_date < ?", end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []perfModel.PerformanceRecordModel
	if err := q.Preload("PerformanceWorker").
		Preload("PerformanceProductionLine").
		Order("performance_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "Daftar record performa", rows, pg)
}

// STATS
// GET /api/performance/stats?start_date=&end_date=&worker_id=
func (h *PerformanceController) GetStats(c *fiber.Ctx) error {
	q := h.DB.Model(&perfModel.PerformanceRecordModel{}).
		Select(`performance_worker_id,
			workers.worker_name,
			COUNT(*) AS total_records,
			SUM(performance_units_produced) AS total_units,
			SUM(performance_defects) AS total_defects,
			SUM(performance_hours_worked) AS total_hours`).
		Joins("JOIN workers ON workers.worker_id = performance_records.performance_worker_id").
		Group("performance_worker_id").Group("workers.worker_name")

	if v := c.Query("worker_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker_id tidak valid")
		}
		q = q.Where("performance_worker_id = ?", id)
	}
	var rangeStart, rangeEnd *time.Time
	if v := c.Query("start_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "start_date tidak valid (YYYY-MM-DD)")
		}
		rangeStart = &d
		q = q.Where("performance_date >= ?", d)
	}
	if v := c.Query("end_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "end_date tidak valid (YYYY-MM-DD)")
		}
		rangeEnd = &d
		_, end := helper.DayRange(d)
		q = q.Where("performance_date < ?", end)
	}

	var agg []struct {
		PerformanceWorkerID uuid.UUID
		WorkerName          string
		TotalRecords        int
		TotalUnits          int
		TotalDefects        int
		TotalHours          float64
	}
	if err := q.Order("total_units DESC").Scan(&agg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	stats := make([]perfDTO.WorkerStats, 0, len(agg))
	for _, a := range agg {
		s := perfDTO.WorkerStats{
			WorkerID:     a.PerformanceWorkerID,
			WorkerName:   a.WorkerName,
			TotalRecords: a.TotalRecords,
			TotalUnits:   a.TotalUnits,
			TotalDefects: a.TotalDefects,
			TotalHours:   a.TotalHours,
		}
		if a.TotalRecords > 0 {
			s.AvgUnitsPerDay = float64(a.TotalUnits) / float64(a.TotalRecords)
		}
		if a.TotalUnits > 0 {
			s.DefectRate = float64(a.TotalDefects) / float64(a.TotalUnits)
		}
		if a.TotalHours > 0 {
			s.Efficiency = float64(a.TotalUnits) / a.TotalHours
		}
		stats = append(stats, s)
	}

	resp := fiber.Map{"stats": stats}
	if rangeStart != nil {
		resp["start_date"] = helper.FormatDateYMD(*rangeStart)
	}
	if rangeEnd != nil {
		resp["end_date"] = helper.FormatDateYMD(*rangeEnd)
	}
	return helper.JsonOK(c, "Statistik performa per worker", resp)
}

// DETAIL
// GET /api/performance/:id
func (h *PerformanceController) GetRecordByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID record tidak valid")
	}

	var record perfModel.PerformanceRecordModel
	if err := h.DB.Preload("PerformanceWorker").
		Preload("PerformanceProductionLine").
		First(&record, "performance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeNotFound, "Record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record")
	}
	return helper.JsonOK(c, "Detail record performa", record)
}

// UPDATE (partial)
// PUT /api/performance/:id
func (h *PerformanceController) UpdateRecord(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID record tidak valid")
	}

	var req perfDTO.UpdatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	var record perfModel.PerformanceRecordModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "performance_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil record")
		}
		if err := req.ApplyToModel(&record); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		if err := h.checkRefs(tx, record.PerformanceWorkerID, record.PerformanceProductionLineID); err != nil {
			return err
		}
		if err := tx.Save(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui record")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}

	return helper.JsonUpdated(c, "Record performa berhasil diperbarui", record)
}

// DELETE (soft)
// DELETE /api/performance/:id
func (h *PerformanceController) DeleteRecord(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID record tidak valid")
	}

	res := h.DB.Delete(&perfModel.PerformanceRecordModel{}, "performance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeNotFound, "Record tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Record performa berhasil dihapus", fiber.Map{"performance_id": id})
}
