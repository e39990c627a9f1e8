// file: internals/features/workforce/performance/dto/performance_dto.go
package dto

import (
	"strings"

	perfModel "pabrikku_backend/internals/features/workforce/performance/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreatePerformanceRequest struct {
	WorkerID         uuid.UUID      `json:"worker_id" validate:"required"`
	ProductionLineID *uuid.UUID     `json:"production_line_id" validate:"omitempty"`
	Date             string         `json:"date" validate:"required"`
	UnitsProduced    int            `json:"units_produced" validate:"gte=0"`
	Defects          int            `json:"defects" validate:"gte=0"`
	HoursWorked      float64        `json:"hours_worked" validate:"gte=0,lte=24"`
	Notes            *string        `json:"notes" validate:"omitempty,max=2000"`
	Metrics          datatypes.JSON `json:"metrics" validate:"omitempty"`
}

func (r *CreatePerformanceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		r.Notes = &v
	}
}

func (r *CreatePerformanceRequest) ToModel() (perfModel.PerformanceRecordModel, error) {
	date, err := helper.ParseDateYMD(r.Date)
	if err != nil {
		return perfModel.PerformanceRecordModel{}, err
	}
	return perfModel.PerformanceRecordModel{
		PerformanceWorkerID:         r.WorkerID,
		PerformanceProductionLineID: r.ProductionLineID,
		PerformanceDate:             date,
		PerformanceUnitsProduced:    r.UnitsProduced,
		PerformanceDefects:          r.Defects,
		PerformanceHoursWorked:      r.HoursWorked,
		PerformanceNotes:            r.Notes,
		PerformanceMetrics:          r.Metrics,
	}, nil
}

type UpdatePerformanceRequest struct {
	WorkerID         *uuid.UUID     `json:"worker_id" validate:"omitempty"`
	ProductionLineID *uuid.UUID     `json:"production_line_id" validate:"omitempty"`
	Date             *string        `json:"date" validate:"omitempty"`
	UnitsProduced    *int           `json:"units_produced" validate:"omitempty,gte=0"`
	Defects          *int           `json:"defects" validate:"omitempty,gte=0"`
	HoursWorked      *float64       `json:"hours_worked" validate:"omitempty,gte=0,lte=24"`
	Notes            *string        `json:"notes" validate:"omitempty,max=2000"`
	Metrics          datatypes.JSON `json:"metrics" validate:"omitempty"`
}

func (r *UpdatePerformanceRequest) Normalize() {
	if r.Date != nil {
		v := strings.TrimSpace(*r.Date)
		r.Date = &v
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		r.Notes = &v
	}
}

// ApplyToModel menyalin field non-nil ke record tersimpan.
func (r *UpdatePerformanceRequest) ApplyToModel(p *perfModel.PerformanceRecordModel) error {
	if r.WorkerID != nil {
		p.PerformanceWorkerID = *r.WorkerID
	}
	if r.ProductionLineID != nil {
		p.PerformanceProductionLineID = r.ProductionLineID
	}
	if r.Date != nil {
		date, err := helper.ParseDateYMD(*r.Date)
		if err != nil {
			return err
		}
		p.PerformanceDate = date
	}
	if r.UnitsProduced != nil {
		p.PerformanceUnitsProduced = *r.UnitsProduced
	}
	if r.Defects != nil {
		p.PerformanceDefects = *r.Defects
	}
	if r.HoursWorked != nil {
		p.PerformanceHoursWorked = *r.HoursWorked
	}
	if r.Notes != nil {
		p.PerformanceNotes = r.Notes
	}
	if len(r.Metrics) > 0 {
		p.PerformanceMetrics = r.Metrics
	}
	return nil
}

/* =========================
   Stats
   ========================= */

type WorkerStats struct {
	WorkerID       uuid.UUID `json:"worker_id"`
	WorkerName     string    `json:"worker_name"`
	TotalRecords   int       `json:"total_records"`
	TotalUnits     int       `json:"total_units"`
	TotalDefects   int       `json:"total_defects"`
	TotalHours     float64   `json:"total_hours"`
	AvgUnitsPerDay float64   `json:"avg_units_per_day"`
	DefectRate     float64   `json:"defect_rate"`      // defects / units
	Efficiency     float64   `json:"units_per_hour"`   // units / hours
}
