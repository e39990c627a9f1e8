// file: internals/features/workforce/assignments/dto/assignment_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	"pabrikku_backend/internals/features/workforce/assignments/service"
	helper "pabrikku_backend/internals/helpers"

	"github.com/google/uuid"
)

/* =========================
   Requests
   ========================= */

type CreateAssignmentRequest struct {
	AssignmentWorkerID         uuid.UUID `json:"worker_id" validate:"required"`
	AssignmentProductionLineID uuid.UUID `json:"production_line_id" validate:"required"`
	AssignmentPosition         string    `json:"position" validate:"required,min=2,max=120"`
	AssignmentDate             string    `json:"date" validate:"required"`
	AssignmentShift            string    `json:"shift" validate:"required,oneof=morning afternoon night"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.AssignmentPosition = strings.TrimSpace(r.AssignmentPosition)
	r.AssignmentDate = strings.TrimSpace(r.AssignmentDate)
	r.AssignmentShift = strings.ToLower(strings.TrimSpace(r.AssignmentShift))
}

func (r *CreateAssignmentRequest) ToInput() (service.CreateInput, error) {
	date, err := helper.ParseDateYMD(r.AssignmentDate)
	if err != nil {
		return service.CreateInput{}, err
	}
	shift, ok := assignmentModel.ParseShift(r.AssignmentShift)
	if !ok {
		return service.CreateInput{}, errors.New("shift tidak dikenali")
	}
	return service.CreateInput{
		WorkerID:         r.AssignmentWorkerID,
		ProductionLineID: r.AssignmentProductionLineID,
		Position:         r.AssignmentPosition,
		Date:             date,
		Shift:            shift,
	}, nil
}

type UpdateAssignmentRequest struct {
	AssignmentWorkerID         *uuid.UUID `json:"worker_id" validate:"omitempty"`
	AssignmentProductionLineID *uuid.UUID `json:"production_line_id" validate:"omitempty"`
	AssignmentPosition         *string    `json:"position" validate:"omitempty,min=2,max=120"`
	AssignmentDate             *string    `json:"date" validate:"omitempty"`
	AssignmentShift            *string    `json:"shift" validate:"omitempty,oneof=morning afternoon night"`
}

func (r *UpdateAssignmentRequest) Normalize() {
	if r.AssignmentPosition != nil {
		v := strings.TrimSpace(*r.AssignmentPosition)
		r.AssignmentPosition = &v
	}
	if r.AssignmentDate != nil {
		v := strings.TrimSpace(*r.AssignmentDate)
		r.AssignmentDate = &v
	}
	if r.AssignmentShift != nil {
		v := strings.ToLower(strings.TrimSpace(*r.AssignmentShift))
		r.AssignmentShift = &v
	}
}

func (r *UpdateAssignmentRequest) ToInput() (service.UpdateInput, error) {
	in := service.UpdateInput{
		WorkerID:         r.AssignmentWorkerID,
		ProductionLineID: r.AssignmentProductionLineID,
		Position:         r.AssignmentPosition,
	}
	if r.AssignmentDate != nil {
		date, err := helper.ParseDateYMD(*r.AssignmentDate)
		if err != nil {
			return service.UpdateInput{}, err
		}
		in.Date = &date
	}
	if r.AssignmentShift != nil {
		shift, ok := assignmentModel.ParseShift(*r.AssignmentShift)
		if !ok {
			return service.UpdateInput{}, errors.New("shift tidak dikenali")
		}
		in.Shift = &shift
	}
	return in, nil
}

/* =========================
   Responses
   ========================= */

type AssignmentWorkerLite struct {
	WorkerID   uuid.UUID `json:"worker_id"`
	WorkerName string    `json:"worker_name"`
	WorkerCIN  string    `json:"worker_cin"`
}

type AssignmentLineLite struct {
	ProductionLineID       uuid.UUID `json:"production_line_id"`
	ProductionLineName     string    `json:"production_line_name"`
	ProductionLineIsActive bool      `json:"production_line_is_active"`
}

type AssignmentResponse struct {
	AssignmentID       uuid.UUID             `json:"assignment_id"`
	WorkerID           uuid.UUID             `json:"worker_id"`
	ProductionLineID   uuid.UUID             `json:"production_line_id"`
	Position           string                `json:"position"`
	Date               string                `json:"date"`
	Shift              string                `json:"shift"`
	Worker             *AssignmentWorkerLite `json:"worker,omitempty"`
	ProductionLine     *AssignmentLineLite   `json:"production_line,omitempty"`
	AssignmentCreatedAt time.Time            `json:"created_at"`
	AssignmentUpdatedAt time.Time            `json:"updated_at"`
}

func ToAssignmentResponse(a *assignmentModel.AssignmentModel) AssignmentResponse {
	resp := AssignmentResponse{
		AssignmentID:        a.AssignmentID,
		WorkerID:            a.AssignmentWorkerID,
		ProductionLineID:    a.AssignmentProductionLineID,
		Position:            a.AssignmentPosition,
		Date:                helper.FormatDateYMD(a.AssignmentDate),
		Shift:               string(a.AssignmentShift),
		AssignmentCreatedAt: a.AssignmentCreatedAt,
		AssignmentUpdatedAt: a.AssignmentUpdatedAt,
	}
	if a.AssignmentWorker != nil {
		resp.Worker = &AssignmentWorkerLite{
			WorkerID:   a.AssignmentWorker.WorkerID,
			WorkerName: a.AssignmentWorker.WorkerName,
			WorkerCIN:  a.AssignmentWorker.WorkerCIN,
		}
	}
	if a.AssignmentProductionLine != nil {
		resp.ProductionLine = &AssignmentLineLite{
			ProductionLineID:       a.AssignmentProductionLine.ProductionLineID,
			ProductionLineName:     a.AssignmentProductionLine.ProductionLineName,
			ProductionLineIsActive: a.AssignmentProductionLine.ProductionLineIsActive,
		}
	}
	return resp
}

func ToAssignmentResponses(list []assignmentModel.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToAssignmentResponse(&list[i]))
	}
	return out
}
