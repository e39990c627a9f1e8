// file: internals/features/production/products/dto/product_dto.go
package dto

import (
	"strings"

	m "pabrikku_backend/internals/features/production/products/model"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Code string  `json:"product_code" form:"product_code" validate:"required,min=1,max=40"`
	Name string  `json:"product_name" form:"product_name" validate:"required,min=1,max=120"`
	Desc *string `json:"product_desc" form:"product_desc"`
	Unit string  `json:"product_unit" form:"product_unit" validate:"omitempty,min=1,max=20"`

	ProductionLineID *uuid.UUID `json:"product_production_line_id" form:"product_production_line_id"`
	IsActive         *bool      `json:"product_is_active" form:"product_is_active"`
}

func (r *CreateProductRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	r.Unit = strings.ToLower(strings.TrimSpace(r.Unit))
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r CreateProductRequest) ToModel() m.ProductModel {
	unit := r.Unit
	if unit == "" {
		unit = "pcs"
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return m.ProductModel{
		ProductCode:             r.Code,
		ProductName:             r.Name,
		ProductDesc:             r.Desc,
		ProductUnit:             unit,
		ProductProductionLineID: r.ProductionLineID,
		ProductIsActive:         active,
	}
}

type UpdateProductRequest struct {
	Code *string `json:"product_code" form:"product_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"product_name" form:"product_name" validate:"omitempty,min=1,max=120"`
	Desc *string `json:"product_desc" form:"product_desc"`
	Unit *string `json:"product_unit" form:"product_unit" validate:"omitempty,min=1,max=20"`

	ProductionLineID *uuid.UUID `json:"product_production_line_id" form:"product_production_line_id"`
	IsActive         *bool      `json:"product_is_active" form:"product_is_active"`
}

func (r *UpdateProductRequest) Normalize() {
	if r.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Code))
		r.Code = &v
	}
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Unit != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Unit))
		r.Unit = &v
	}
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r UpdateProductRequest) ApplyToModel(p *m.ProductModel) {
	if r.Code != nil {
		p.ProductCode = *r.Code
	}
	if r.Name != nil {
		p.ProductName = *r.Name
	}
	if r.Desc != nil {
		p.ProductDesc = r.Desc
	}
	if r.Unit != nil {
		p.ProductUnit = *r.Unit
	}
	if r.ProductionLineID != nil {
		p.ProductProductionLineID = r.ProductionLineID
	}
	if r.IsActive != nil {
		p.ProductIsActive = *r.IsActive
	}
}
