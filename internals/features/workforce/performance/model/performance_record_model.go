// file: internals/features/workforce/performance/model/performance_record_model.go
package model

import (
	"time"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PerformanceRecordModel struct {
	PerformanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:performance_id" json:"performance_id"`

	PerformanceWorkerID uuid.UUID                `gorm:"type:uuid;not null;column:performance_worker_id;index" json:"performance_worker_id"`
	PerformanceWorker   *workerModel.WorkerModel `gorm:"foreignKey:PerformanceWorkerID;references:WorkerID" json:"performance_worker,omitempty"`

	PerformanceProductionLineID *uuid.UUID                     `gorm:"type:uuid;column:performance_production_line_id;index" json:"performance_production_line_id,omitempty"`
	PerformanceProductionLine   *lineModel.ProductionLineModel `gorm:"foreignKey:PerformanceProductionLineID;references:ProductionLineID" json:"performance_production_line,omitempty"`

	PerformanceDate          time.Time      `gorm:"column:performance_date;type:date;not null;index" json:"performance_date"`
	PerformanceUnitsProduced int            `gorm:"column:performance_units_produced;not null;default:0" json:"performance_units_produced"`
	PerformanceDefects       int            `gorm:"column:performance_defects;not null;default:0" json:"performance_defects"`
	PerformanceHoursWorked   float64        `gorm:"column:performance_hours_worked;not null;default:0" json:"performance_hours_worked"`
	PerformanceNotes         *string        `gorm:"column:performance_notes;type:text" json:"performance_notes,omitempty"`
	PerformanceMetrics       datatypes.JSON `gorm:"column:performance_metrics" json:"performance_metrics,omitempty"`

	PerformanceCreatedAt time.Time      `gorm:"column:performance_created_at;not null;autoCreateTime" json:"performance_created_at"`
	PerformanceUpdatedAt time.Time      `gorm:"column:performance_updated_at;not null;autoUpdateTime" json:"performance_updated_at"`
	PerformanceDeletedAt gorm.DeletedAt `gorm:"column:performance_deleted_at;index" json:"-"`
}

func (PerformanceRecordModel) TableName() string { return "performance_records" }

func (p *PerformanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if p.PerformanceID == uuid.Nil {
		p.PerformanceID = uuid.New()
	}
	return nil
}
