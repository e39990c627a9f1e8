// file: internals/features/workforce/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"pabrikku_backend/internals/constants"
	assignmentDTO "pabrikku_backend/internals/features/workforce/assignments/dto"
	"pabrikku_backend/internals/features/workforce/assignments/model"
	"pabrikku_backend/internals/features/workforce/assignments/service"
	notifService "pabrikku_backend/internals/features/messaging/notifications/service"
	helper "pabrikku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type AssignmentsController struct {
	DB       *gorm.DB
	Service  *service.AssignmentService
	Notifier *notifService.NotificationDispatcher
}

func NewAssignmentsController(db *gorm.DB) *AssignmentsController {
	return &AssignmentsController{
		DB:       db,
		Service:  service.NewAssignmentService(db),
		Notifier: notifService.NewNotificationDispatcher(db),
	}
}

// mapping error service → response. ConflictError membawa pesan 409 yang
// sudah jadi, sisanya pakai kode + pesan generik.
func respondServiceErr(c *fiber.Ctx, err error) error {
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &conflict):
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeConflict, conflict.Error())
	case errors.Is(err, service.ErrWorkerNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeWorkerNotFound, "Worker tidak ditemukan")
	case errors.Is(err, service.ErrProductionLineNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeProductionLineNotFound, "Production line tidak ditemukan")
	case errors.Is(err, service.ErrProductionLineInactive):
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeProductionLineInactive, "Production line sedang nonaktif")
	case errors.Is(err, service.ErrAssignmentNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, helper.ErrCodeNotFound, "Assignment tidak ditemukan")
	default:
		log.Printf("[ERROR] assignment: %v", err)
		return helper.JsonErrorCode(c, fiber.StatusInternalServerError, helper.ErrCodeInternal, "Terjadi kesalahan internal")
	}
}

// CREATE
// POST /api/assignments
func (h *AssignmentsController) CreateAssignment(c *fiber.Ctx) error {
	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "Format tanggal/shift tidak valid (tanggal: YYYY-MM-DD)")
	}

	created, err := h.Service.Create(c.Context(), in)
	if err != nil {
		return respondServiceErr(c, err)
	}

	if h.Notifier != nil {
		h.Notifier.DispatchToRoles(c.Context(), constants.SupervisorAndAbove,
			"assignment_created", "Assignment baru dibuat", map[string]any{
				"assignment_id": created.AssignmentID,
				"worker_id":     created.AssignmentWorkerID,
				"date":          helper.FormatDateYMD(created.AssignmentDate),
				"shift":         string(created.AssignmentShift),
			})
	}

	return helper.JsonCreated(c, "Assignment berhasil dibuat", assignmentDTO.ToAssignmentResponse(created))
}

// LIST
// GET /api/assignments
func (h *AssignmentsController) GetAssignments(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var f service.ListFilter
	if v := c.Query("start_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "start_date tidak valid (YYYY-MM-DD)")
		}
		f.StartDate = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "end_date tidak valid (YYYY-MM-DD)")
		}
		f.EndDate = &d
	}
	if v := c.Query("worker_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker_id tidak valid")
		}
		f.WorkerID = &id
	}
	if v := c.Query("production_line_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production_line_id tidak valid")
		}
		f.ProductionLineID = &id
	}
	if v := c.Query("shift"); v != "" {
		shift, ok := model.ParseShift(v)
		if !ok {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "shift harus morning/afternoon/night")
		}
		f.Shift = &shift
	}
	f.Position = c.Query("position")

	rows, total, err := h.Service.List(c.Context(), f, p.Limit, p.Offset)
	if err != nil {
		return respondServiceErr(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "Daftar assignment", assignmentDTO.ToAssignmentResponses(rows), pg)
}

// CALENDAR
// GET /api/assignments/calendar?year=2024&month=2
func (h *AssignmentsController) GetAssignmentCalendar(c *fiber.Ctx) error {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || year < 1 || month < 1 || month > 12 {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "year dan month wajib diisi (month 1-12)")
	}

	var f service.CalendarFilter
	if v := c.Query("worker_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "worker_id tidak valid")
		}
		f.WorkerID = &id
	}
	if v := c.Query("production_line_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "production_line_id tidak valid")
		}
		f.ProductionLineID = &id
	}

	rows, summary, err := h.Service.Calendar(c.Context(), year, month, f)
	if err != nil {
		return respondServiceErr(c, err)
	}

	days := make(map[string][]assignmentDTO.AssignmentResponse)
	for i := range rows {
		key := helper.FormatDateYMD(rows[i].AssignmentDate)
		days[key] = append(days[key], assignmentDTO.ToAssignmentResponse(&rows[i]))
	}

	return helper.JsonOK(c, "Kalender assignment", fiber.Map{
		"year":    year,
		"month":   month,
		"days":    days,
		"summary": summary,
	})
}

// CONFLICT REPORT
// GET /api/assignments/conflicts
func (h *AssignmentsController) GetAssignmentConflicts(c *fiber.Ctx) error {
	var start, end *time.Time
	if v := c.Query("start_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "start_date tidak valid (YYYY-MM-DD)")
		}
		start = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := helper.ParseDateYMD(v)
		if err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "end_date tidak valid (YYYY-MM-DD)")
		}
		end = &d
	}

	groups, err := h.Service.ConflictReport(c.Context(), start, end)
	if err != nil {
		return respondServiceErr(c, err)
	}

	return helper.JsonOK(c, "Laporan konflik assignment", fiber.Map{
		"conflicts": groups,
		"total":     len(groups),
	})
}

// DETAIL
// GET /api/assignments/:id
func (h *AssignmentsController) GetAssignmentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID assignment tidak valid")
	}

	a, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceErr(c, err)
	}
	return helper.JsonOK(c, "Detail assignment", assignmentDTO.ToAssignmentResponse(a))
}

// UPDATE (partial)
// PUT /api/assignments/:id
func (h *AssignmentsController) UpdateAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID assignment tidak valid")
	}

	var req assignmentDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, err.Error())
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeValidation, "Format tanggal/shift tidak valid (tanggal: YYYY-MM-DD)")
	}

	updated, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		return respondServiceErr(c, err)
	}

	if h.Notifier != nil {
		h.Notifier.DispatchToRoles(c.Context(), constants.SupervisorAndAbove,
			"assignment_updated", "Assignment diperbarui", map[string]any{
				"assignment_id": updated.AssignmentID,
				"worker_id":     updated.AssignmentWorkerID,
				"date":          helper.FormatDateYMD(updated.AssignmentDate),
				"shift":         string(updated.AssignmentShift),
			})
	}

	return helper.JsonUpdated(c, "Assignment berhasil diperbarui", assignmentDTO.ToAssignmentResponse(updated))
}

// DELETE (hard)
// DELETE /api/assignments/:id
func (h *AssignmentsController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidID, "ID assignment tidak valid")
	}

	if err := h.Service.Delete(c.Context(), id); err != nil {
		return respondServiceErr(c, err)
	}
	return helper.JsonDeleted(c, "Assignment berhasil dihapus", fiber.Map{"assignment_id": id})
}
