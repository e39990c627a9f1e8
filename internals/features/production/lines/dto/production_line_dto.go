// file: internals/features/production/lines/dto/production_line_dto.go
package dto

import (
	"strings"

	m "pabrikku_backend/internals/features/production/lines/model"
)

type CreateProductionLineRequest struct {
	Name     string `json:"production_line_name" form:"production_line_name" validate:"required,min=1,max=120"`
	Location string `json:"production_line_location" form:"production_line_location" validate:"required,min=1,max=160"`
	Capacity int    `json:"production_line_capacity" form:"production_line_capacity" validate:"gte=0"`
	IsActive *bool  `json:"production_line_is_active" form:"production_line_is_active"`
}

func (r *CreateProductionLineRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
}

func (r CreateProductionLineRequest) ToModel() m.ProductionLineModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return m.ProductionLineModel{
		ProductionLineName:     r.Name,
		ProductionLineLocation: r.Location,
		ProductionLineCapacity: r.Capacity,
		ProductionLineIsActive: active,
	}
}

type UpdateProductionLineRequest struct {
	Name     *string `json:"production_line_name" form:"production_line_name" validate:"omitempty,min=1,max=120"`
	Location *string `json:"production_line_location" form:"production_line_location" validate:"omitempty,min=1,max=160"`
	Capacity *int    `json:"production_line_capacity" form:"production_line_capacity" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"production_line_is_active" form:"production_line_is_active"`
}

func (r *UpdateProductionLineRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Location != nil {
		v := strings.TrimSpace(*r.Location)
		r.Location = &v
	}
}

func (r UpdateProductionLineRequest) ApplyToModel(p *m.ProductionLineModel) {
	if r.Name != nil {
		p.ProductionLineName = *r.Name
	}
	if r.Location != nil {
		p.ProductionLineLocation = *r.Location
	}
	if r.Capacity != nil {
		p.ProductionLineCapacity = *r.Capacity
	}
	if r.IsActive != nil {
		p.ProductionLineIsActive = *r.IsActive
	}
}
