// file: internals/features/production/products/model/product_model.go
package model

import (
	"time"

	lineModel "pabrikku_backend/internals/features/production/lines/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;column:product_id" json:"product_id"`

	ProductCode string  `gorm:"column:product_code;type:varchar(40);not null;uniqueIndex" json:"product_code"`
	ProductName string  `gorm:"column:product_name;type:varchar(120);not null" json:"product_name"`
	ProductDesc *string `gorm:"column:product_desc;type:text" json:"product_desc,omitempty"`
	ProductUnit string  `gorm:"column:product_unit;type:varchar(20);not null;default:'pcs'" json:"product_unit"`

	// line utama yang memproduksi (opsional)
	ProductProductionLineID *uuid.UUID                     `gorm:"type:uuid;column:product_production_line_id;index" json:"product_production_line_id,omitempty"`
	ProductProductionLine   *lineModel.ProductionLineModel `gorm:"foreignKey:ProductProductionLineID;references:ProductionLineID" json:"product_production_line,omitempty"`

	ProductIsActive bool `gorm:"column:product_is_active;not null;default:true" json:"product_is_active"`

	ProductCreatedAt time.Time      `gorm:"column:product_created_at;not null;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt time.Time      `gorm:"column:product_updated_at;not null;autoUpdateTime" json:"product_updated_at"`
	ProductDeletedAt gorm.DeletedAt `gorm:"column:product_deleted_at;index" json:"product_deleted_at,omitempty"`
}

func (ProductModel) TableName() string { return "products" }

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.ProductID == uuid.Nil {
		p.ProductID = uuid.New()
	}
	return nil
}
