// file: internals/features/workforce/assignments/model/assignment_model.go
package model

import (
	"strings"
	"time"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type AssignmentShift string

const (
	ShiftMorning   AssignmentShift = "morning"
	ShiftAfternoon AssignmentShift = "afternoon"
	ShiftNight     AssignmentShift = "night"
)

func ParseShift(s string) (AssignmentShift, bool) {
	switch AssignmentShift(strings.ToLower(strings.TrimSpace(s))) {
	case ShiftMorning:
		return ShiftMorning, true
	case ShiftAfternoon:
		return ShiftAfternoon, true
	case ShiftNight:
		return ShiftNight, true
	}
	return "", false
}

/* =========================
   Model: AssignmentModel
========================= */

// NOTE:
// - assignment_date disimpan granularitas hari (dinormalisasi ke 00:00 UTC saat tulis)
// - invariant: (worker, date, shift) unik — dijaga pre-check aplikasi + unique index
//   uq_assignments_worker_date_shift sebagai pagar terakhir saat ada penulis paralel
// - hard delete: assignment dihapus permanen by id setelah cek eksistensi
type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentWorkerID uuid.UUID                `gorm:"type:uuid;not null;column:assignment_worker_id;index;uniqueIndex:uq_assignments_worker_date_shift" json:"assignment_worker_id"`
	AssignmentWorker   *workerModel.WorkerModel `gorm:"foreignKey:AssignmentWorkerID;references:WorkerID" json:"assignment_worker,omitempty"`

	AssignmentProductionLineID uuid.UUID                      `gorm:"type:uuid;not null;column:assignment_production_line_id;index" json:"assignment_production_line_id"`
	AssignmentProductionLine   *lineModel.ProductionLineModel `gorm:"foreignKey:AssignmentProductionLineID;references:ProductionLineID" json:"assignment_production_line,omitempty"`

	AssignmentPosition string          `gorm:"column:assignment_position;type:varchar(120);not null" json:"assignment_position"`
	AssignmentDate     time.Time       `gorm:"column:assignment_date;type:date;not null;uniqueIndex:uq_assignments_worker_date_shift" json:"assignment_date"`
	AssignmentShift    AssignmentShift `gorm:"column:assignment_shift;type:varchar(16);not null;uniqueIndex:uq_assignments_worker_date_shift" json:"assignment_shift"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;not null;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;not null;autoUpdateTime" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (a *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.AssignmentID == uuid.Nil {
		a.AssignmentID = uuid.New()
	}
	return nil
}
