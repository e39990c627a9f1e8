// file: internals/features/workforce/assignments/service/assignment_query_service.go
package service

import (
	"context"
	"errors"
	"time"

	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	StartDate        *time.Time
	EndDate          *time.Time // inklusif (hari terakhir ikut)
	WorkerID         *uuid.UUID
	ProductionLineID *uuid.UUID
	Shift            *assignmentModel.AssignmentShift
	Position         string
}

func (s *AssignmentService) List(ctx context.Context, f ListFilter, limit, offset int) ([]assignmentModel.AssignmentModel, int64, error) {
	base := s.DB.WithContext(ctx).Model(&assignmentModel.AssignmentModel{})

	if f.StartDate != nil {
		base = base.Where("assignment_date >= ?", helper.AtStartOfDay(*f.StartDate))
	}
	if f.EndDate != nil {
		_, end := helper.DayRange(*f.EndDate)
		base = base.Where("assignment_date < ?", end)
	}
	if f.WorkerID != nil {
		base = base.Where("assignment_worker_id = ?", *f.WorkerID)
	}
	if f.ProductionLineID != nil {
		base = base.Where("assignment_production_line_id = ?", *f.ProductionLineID)
	}
	if f.Shift != nil {
		base = base.Where("assignment_shift = ?", *f.Shift)
	}
	if f.Position != "" {
		base = base.Where("lower(assignment_position) LIKE lower(?)", "%"+f.Position+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []assignmentModel.AssignmentModel
	if err := base.
		Preload("AssignmentWorker").
		Preload("AssignmentProductionLine").
		Order("assignment_date DESC").
		Order("assignment_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *AssignmentService) GetByID(ctx context.Context, id uuid.UUID) (*assignmentModel.AssignmentModel, error) {
	var a assignmentModel.AssignmentModel
	err := s.DB.WithContext(ctx).
		Preload("AssignmentWorker").
		Preload("AssignmentProductionLine").
		First(&a, "assignment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

/* =========================================================
   Calendar
   ========================================================= */

type CalendarSummary struct {
	TotalAssignments    int `json:"total_assignments"`
	DaysWithAssignments int `json:"days_with_assignments"`
}

// filter opsional untuk tampilan kalender
type CalendarFilter struct {
	WorkerID         *uuid.UUID
	ProductionLineID *uuid.UUID
}

// Calendar: semua assignment dalam satu bulan, diurut tanggal lalu shift.
// Pengelompokan per-hari dilakukan di controller (map keyed "YYYY-MM-DD").
func (s *AssignmentService) Calendar(ctx context.Context, year, month int, f CalendarFilter) ([]assignmentModel.AssignmentModel, CalendarSummary, error) {
	start, last, err := helper.MonthRange(year, month)
	if err != nil {
		return nil, CalendarSummary{}, err
	}
	_, end := helper.DayRange(last)

	q := s.DB.WithContext(ctx).
		Preload("AssignmentWorker").
		Preload("AssignmentProductionLine").
		Where("assignment_date >= ? AND assignment_date < ?", start, end)
	if f.WorkerID != nil {
		q = q.Where("assignment_worker_id = ?", *f.WorkerID)
	}
	if f.ProductionLineID != nil {
		q = q.Where("assignment_production_line_id = ?", *f.ProductionLineID)
	}

	var rows []assignmentModel.AssignmentModel
	err = q.
		Order("assignment_date ASC").
		Order("assignment_shift ASC").
		Find(&rows).Error
	if err != nil {
		return nil, CalendarSummary{}, err
	}

	seen := map[string]struct{}{}
	for i := range rows {
		seen[helper.FormatDateYMD(rows[i].AssignmentDate)] = struct{}{}
	}
	return rows, CalendarSummary{
		TotalAssignments:    len(rows),
		DaysWithAssignments: len(seen),
	}, nil
}

/* =========================================================
   Conflict report
   ========================================================= */

type ConflictMember struct {
	AssignmentID       uuid.UUID `json:"assignment_id"`
	ProductionLineID   uuid.UUID `json:"production_line_id"`
	ProductionLineName string    `json:"production_line_name"`
	Position           string    `json:"position"`
}

type ConflictGroup struct {
	WorkerID    uuid.UUID                       `json:"worker_id"`
	WorkerName  string                          `json:"worker_name"`
	Date        string                          `json:"date"`
	Shift       assignmentModel.AssignmentShift `json:"shift"`
	Assignments []ConflictMember                `json:"assignments"`
}

// ConflictReport audit: kelompok (worker, hari, shift) dengan >= 2 assignment.
// Di operasi normal harusnya kosong karena pagar di Create/Update; report ini
// jaring pengaman untuk data hasil migrasi / tulisan langsung ke DB.
// GROUP BY langsung di kolom tanggal aman karena tanggal selalu dinormalkan
// ke 00:00 saat ditulis.
func (s *AssignmentService) ConflictReport(ctx context.Context, start, end *time.Time) ([]ConflictGroup, error) {
	// tanpa rentang: default bulan kalender berjalan
	if start == nil && end == nil {
		now := time.Now().UTC()
		first, last, err := helper.MonthRange(now.Year(), int(now.Month()))
		if err != nil {
			return nil, err
		}
		start, end = &first, &last
	}

	q := s.DB.WithContext(ctx).Table("assignments").
		Select("assignment_worker_id, assignment_date, assignment_shift, COUNT(*) AS total").
		Group("assignment_worker_id").Group("assignment_date").Group("assignment_shift").
		Having("COUNT(*) > 1")
	if start != nil {
		q = q.Where("assignment_date >= ?", helper.AtStartOfDay(*start))
	}
	if end != nil {
		_, e := helper.DayRange(*end)
		q = q.Where("assignment_date < ?", e)
	}

	var keys []struct {
		AssignmentWorkerID uuid.UUID
		AssignmentDate     time.Time
		AssignmentShift    assignmentModel.AssignmentShift
		Total              int
	}
	if err := q.
		Order("assignment_date ASC").
		Order("assignment_shift ASC").
		Scan(&keys).Error; err != nil {
		return nil, err
	}

	groups := make([]ConflictGroup, 0, len(keys))
	for _, k := range keys {
		dayStart, dayEnd := helper.DayRange(k.AssignmentDate)

		var members []struct {
			AssignmentID       uuid.UUID
			AssignmentPosition string
			ProductionLineID   uuid.UUID
			ProductionLineName string
		}
		err := s.DB.WithContext(ctx).Table("assignments").
			Select("assignments.assignment_id, assignments.assignment_position, production_lines.production_line_id, production_lines.production_line_name").
			Joins("JOIN production_lines ON production_lines.production_line_id = assignments.assignment_production_line_id").
			Where("assignments.assignment_worker_id = ?", k.AssignmentWorkerID).
			Where("assignments.assignment_date >= ? AND assignments.assignment_date < ?", dayStart, dayEnd).
			Where("assignments.assignment_shift = ?", k.AssignmentShift).
			Order("assignments.assignment_created_at ASC").
			Scan(&members).Error
		if err != nil {
			return nil, err
		}

		var workerName string
		if err := s.DB.WithContext(ctx).Table("workers").
			Select("worker_name").
			Where("worker_id = ?", k.AssignmentWorkerID).
			Scan(&workerName).Error; err != nil {
			return nil, err
		}

		g := ConflictGroup{
			WorkerID:   k.AssignmentWorkerID,
			WorkerName: workerName,
			Date:       helper.FormatDateYMD(k.AssignmentDate),
			Shift:      k.AssignmentShift,
		}
		for _, m := range members {
			g.Assignments = append(g.Assignments, ConflictMember{
				AssignmentID:       m.AssignmentID,
				ProductionLineID:   m.ProductionLineID,
				ProductionLineName: m.ProductionLineName,
				Position:           m.AssignmentPosition,
			})
		}
		groups = append(groups, g)
	}
	return groups, nil
}
