// file: internals/features/production/lines/model/production_line_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - production_line_is_active: assignment hanya boleh menunjuk line aktif SAAT tulis;
//   menonaktifkan line tidak membatalkan assignment yang sudah ada.
type ProductionLineModel struct {
	ProductionLineID uuid.UUID `gorm:"type:uuid;primaryKey;column:production_line_id" json:"production_line_id"`

	ProductionLineName     string `gorm:"column:production_line_name;type:varchar(120);not null" json:"production_line_name"`
	ProductionLineLocation string `gorm:"column:production_line_location;type:varchar(160);not null" json:"production_line_location"`
	ProductionLineCapacity int    `gorm:"column:production_line_capacity;not null;default:0" json:"production_line_capacity"`

	ProductionLineIsActive bool `gorm:"column:production_line_is_active;not null;default:true" json:"production_line_is_active"`

	ProductionLineCreatedAt time.Time      `gorm:"column:production_line_created_at;not null;autoCreateTime" json:"production_line_created_at"`
	ProductionLineUpdatedAt time.Time      `gorm:"column:production_line_updated_at;not null;autoUpdateTime" json:"production_line_updated_at"`
	ProductionLineDeletedAt gorm.DeletedAt `gorm:"column:production_line_deleted_at;index" json:"production_line_deleted_at,omitempty"`
}

func (ProductionLineModel) TableName() string { return "production_lines" }

func (p *ProductionLineModel) BeforeCreate(tx *gorm.DB) error {
	if p.ProductionLineID == uuid.Nil {
		p.ProductionLineID = uuid.New()
	}
	return nil
}
