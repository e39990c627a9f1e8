// file: internals/features/workforce/assignments/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Errors
   ========================================================= */

var (
	ErrWorkerNotFound         = errors.New("worker tidak ditemukan")
	ErrProductionLineNotFound = errors.New("production line tidak ditemukan")
	ErrProductionLineInactive = errors.New("production line sedang nonaktif")
	ErrAssignmentNotFound     = errors.New("assignment tidak ditemukan")
)

// ConflictError: deskriptor tabrakan jadwal (worker sudah punya assignment
// di hari+shift yang sama). Pesannya dipakai langsung di response 409.
type ConflictError struct {
	AssignmentID       uuid.UUID
	ProductionLineName string
	Position           string
	Date               time.Time
	Shift              assignmentModel.AssignmentShift
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Worker is already assigned to %s on %s for %s shift",
		e.ProductionLineName, helper.FormatDateYMD(e.Date), e.Shift)
}

/* =========================================================
   Service
   ========================================================= */

type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

type CreateInput struct {
	WorkerID         uuid.UUID
	ProductionLineID uuid.UUID
	Position         string
	Date             time.Time
	Shift            assignmentModel.AssignmentShift
}

// field nil = tidak diubah (partial update)
type UpdateInput struct {
	WorkerID         *uuid.UUID
	ProductionLineID *uuid.UUID
	Position         *string
	Date             *time.Time
	Shift            *assignmentModel.AssignmentShift
}

/* =========================================================
   Validator + write path
   ========================================================= */

// Create: validasi referensi (worker, line aktif) → cek konflik → insert.
// Semua dalam satu transaksi; unique index jadi pagar terakhir kalau ada
// penulis paralel yang lolos pre-check bersamaan.
func (s *AssignmentService) Create(ctx context.Context, in CreateInput) (*assignmentModel.AssignmentModel, error) {
	day := helper.AtStartOfDay(in.Date)

	var created assignmentModel.AssignmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkWorkerExists(tx, in.WorkerID); err != nil {
			return err
		}
		if err := s.checkLineActive(tx, in.ProductionLineID); err != nil {
			return err
		}

		conflict, err := s.FindConflict(tx, in.WorkerID, day, in.Shift, nil)
		if err != nil {
			return err
		}
		if conflict != nil {
			return conflict
		}

		created = assignmentModel.AssignmentModel{
			AssignmentWorkerID:         in.WorkerID,
			AssignmentProductionLineID: in.ProductionLineID,
			AssignmentPosition:         strings.TrimSpace(in.Position),
			AssignmentDate:             day,
			AssignmentShift:            in.Shift,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if isDuplicateErr(err) {
			return nil, s.resolveDuplicate(ctx, in.WorkerID, day, in.Shift, nil)
		}
		return nil, err
	}
	return &created, nil
}

// resolveDuplicate dipanggil saat unique index menolak tulisan (kalah race
// dari penulis paralel): cari pemenangnya di luar transaksi yang sudah batal
// supaya pesan konflik tetap informatif. Fallback minimal membawa hari+shift.
func (s *AssignmentService) resolveDuplicate(ctx context.Context, workerID uuid.UUID, day time.Time, shift assignmentModel.AssignmentShift, excludeID *uuid.UUID) *ConflictError {
	if cf, err := s.FindConflict(s.DB.WithContext(ctx), workerID, day, shift, excludeID); err == nil && cf != nil {
		return cf
	}
	return &ConflictError{Date: day, Shift: shift}
}

// Update: partial. Referensi dicek hanya untuk field yang dikirim; field yang
// absen diambil dari record tersimpan untuk keperluan cek konflik. Mengubah
// position saja TIDAK memicu cek konflik.
func (s *AssignmentService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*assignmentModel.AssignmentModel, error) {
	var updated assignmentModel.AssignmentModel

	// kunci efektif (worker, hari, shift) disimpan di luar transaksi supaya
	// pesan konflik dari pagar unique index tetap bisa dibangun
	var ckWorkerID uuid.UUID
	var ckDay time.Time
	var ckShift assignmentModel.AssignmentShift

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a assignmentModel.AssignmentModel
		if err := tx.First(&a, "assignment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		if in.WorkerID != nil {
			if err := s.checkWorkerExists(tx, *in.WorkerID); err != nil {
				return err
			}
		}
		if in.ProductionLineID != nil {
			if err := s.checkLineActive(tx, *in.ProductionLineID); err != nil {
				return err
			}
		}

		// merge nilai efektif untuk cek konflik
		workerID := a.AssignmentWorkerID
		if in.WorkerID != nil {
			workerID = *in.WorkerID
		}
		day := helper.AtStartOfDay(a.AssignmentDate)
		if in.Date != nil {
			day = helper.AtStartOfDay(*in.Date)
		}
		shift := a.AssignmentShift
		if in.Shift != nil {
			shift = *in.Shift
		}
		ckWorkerID, ckDay, ckShift = workerID, day, shift

		if in.WorkerID != nil || in.Date != nil || in.Shift != nil {
			conflict, err := s.FindConflict(tx, workerID, day, shift, &id)
			if err != nil {
				return err
			}
			if conflict != nil {
				return conflict
			}
		}

		a.AssignmentWorkerID = workerID
		a.AssignmentDate = day
		a.AssignmentShift = shift
		if in.ProductionLineID != nil {
			a.AssignmentProductionLineID = *in.ProductionLineID
		}
		if in.Position != nil {
			a.AssignmentPosition = strings.TrimSpace(*in.Position)
		}

		if err := tx.Save(&a).Error; err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		if isDuplicateErr(err) {
			return nil, s.resolveDuplicate(ctx, ckWorkerID, ckDay, ckShift, &id)
		}
		return nil, err
	}
	return &updated, nil
}

// Delete: hard delete by id, 404 bila tidak ada.
func (s *AssignmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a assignmentModel.AssignmentModel
		if err := tx.First(&a, "assignment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}
		return tx.Delete(&a).Error
	})
}

func (s *AssignmentService) checkWorkerExists(tx *gorm.DB, workerID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&workerModel.WorkerModel{}).
		Where("worker_id = ?", workerID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (s *AssignmentService) checkLineActive(tx *gorm.DB, lineID uuid.UUID) error {
	var line lineModel.ProductionLineModel
	if err := tx.Select("production_line_is_active").
		First(&line, "production_line_id = ?", lineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductionLineNotFound
		}
		return err
	}
	if !line.ProductionLineIsActive {
		return ErrProductionLineInactive
	}
	return nil
}

/* =========================================================
   Conflict detector
   ========================================================= */

// FindConflict cari assignment LAIN milik worker di hari+shift yang sama.
// Perbandingan hari pakai window half-open [hari 00:00, hari+1 00:00),
// bukan kesamaan timestamp persis.
func (s *AssignmentService) FindConflict(
	tx *gorm.DB,
	workerID uuid.UUID,
	date time.Time,
	shift assignmentModel.AssignmentShift,
	excludeID *uuid.UUID,
) (*ConflictError, error) {
	dayStart, dayEnd := helper.DayRange(date)

	q := tx.Table("assignments").
		Select("assignments.assignment_id, assignments.assignment_position, production_lines.production_line_name").
		Joins("JOIN production_lines ON production_lines.production_line_id = assignments.assignment_production_line_id").
		Where("assignments.assignment_worker_id = ?", workerID).
		Where("assignments.assignment_date >= ? AND assignments.assignment_date < ?", dayStart, dayEnd).
		Where("assignments.assignment_shift = ?", shift)
	if excludeID != nil {
		q = q.Where("assignments.assignment_id <> ?", *excludeID)
	}

	var rows []struct {
		AssignmentID       uuid.UUID
		AssignmentPosition string
		ProductionLineName string
	}
	if err := q.Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &ConflictError{
		AssignmentID:       rows[0].AssignmentID,
		ProductionLineName: rows[0].ProductionLineName,
		Position:           rows[0].AssignmentPosition,
		Date:               dayStart,
		Shift:              shift,
	}, nil
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
