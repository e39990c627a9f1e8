// file: internals/features/workforce/workers/model/worker_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type WorkerRole string

const (
	WorkerRoleOperator   WorkerRole = "operator"
	WorkerRoleTechnician WorkerRole = "technician"
	WorkerRoleSupervisor WorkerRole = "supervisor"
)

func ValidWorkerRole(s string) bool {
	switch WorkerRole(s) {
	case WorkerRoleOperator, WorkerRoleTechnician, WorkerRoleSupervisor:
		return true
	}
	return false
}

/* =========================
   Model: WorkerModel
========================= */

// NOTE:
// - worker_cin: NIK/CIN unik (alternate key)
// - email & phone nullable, unik bila terisi (partial unique index di skema SQL)
type WorkerModel struct {
	WorkerID uuid.UUID `gorm:"type:uuid;primaryKey;column:worker_id" json:"worker_id"`

	WorkerName string  `gorm:"column:worker_name;type:varchar(120);not null" json:"worker_name"`
	WorkerCIN  string  `gorm:"column:worker_cin;type:varchar(40);not null;uniqueIndex" json:"worker_cin"`
	WorkerEmail *string `gorm:"column:worker_email;type:varchar(255)" json:"worker_email,omitempty"`
	WorkerPhone *string `gorm:"column:worker_phone;type:varchar(30)"  json:"worker_phone,omitempty"`

	WorkerRole    WorkerRole `gorm:"column:worker_role;type:varchar(20);not null;default:'operator'" json:"worker_role"`
	WorkerHiredAt *time.Time `gorm:"column:worker_hired_at;type:date" json:"worker_hired_at,omitempty"`

	WorkerCreatedAt time.Time      `gorm:"column:worker_created_at;not null;autoCreateTime" json:"worker_created_at"`
	WorkerUpdatedAt time.Time      `gorm:"column:worker_updated_at;not null;autoUpdateTime" json:"worker_updated_at"`
	WorkerDeletedAt gorm.DeletedAt `gorm:"column:worker_deleted_at;index" json:"worker_deleted_at,omitempty"`
}

func (WorkerModel) TableName() string { return "workers" }

func (w *WorkerModel) BeforeCreate(tx *gorm.DB) error {
	if w.WorkerID == uuid.Nil {
		w.WorkerID = uuid.New()
	}
	return nil
}
