// file: internals/features/workforce/workers/dto/worker_dto.go
package dto

import (
	"strings"
	"time"

	m "pabrikku_backend/internals/features/workforce/workers/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateWorkerRequest struct {
	Name  string  `json:"worker_name" form:"worker_name" validate:"required,min=1,max=120"`
	CIN   string  `json:"worker_cin"  form:"worker_cin"  validate:"required,min=3,max=40"`
	Email *string `json:"worker_email" form:"worker_email" validate:"omitempty,email"`
	Phone *string `json:"worker_phone" form:"worker_phone" validate:"omitempty,min=6,max=30"`

	Role    string     `json:"worker_role" form:"worker_role" validate:"omitempty,oneof=operator technician supervisor"`
	HiredAt *time.Time `json:"worker_hired_at" form:"worker_hired_at"`
}

func (r *CreateWorkerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.CIN = strings.ToUpper(strings.TrimSpace(r.CIN))
	trimPtr(&r.Email, true)
	trimPtr(&r.Phone, false)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

func (r CreateWorkerRequest) ToModel() m.WorkerModel {
	role := m.WorkerRole(r.Role)
	if r.Role == "" {
		role = m.WorkerRoleOperator
	}
	return m.WorkerModel{
		WorkerName:    r.Name,
		WorkerCIN:     r.CIN,
		WorkerEmail:   r.Email,
		WorkerPhone:   r.Phone,
		WorkerRole:    role,
		WorkerHiredAt: r.HiredAt,
	}
}

/* =========================================================
   UPDATE (partial — field absen tidak diubah)
   ========================================================= */

type UpdateWorkerRequest struct {
	Name  *string `json:"worker_name" form:"worker_name" validate:"omitempty,min=1,max=120"`
	CIN   *string `json:"worker_cin"  form:"worker_cin"  validate:"omitempty,min=3,max=40"`
	Email *string `json:"worker_email" form:"worker_email" validate:"omitempty,email"`
	Phone *string `json:"worker_phone" form:"worker_phone" validate:"omitempty,min=6,max=30"`

	Role    *string    `json:"worker_role" form:"worker_role" validate:"omitempty,oneof=operator technician supervisor"`
	HiredAt *time.Time `json:"worker_hired_at" form:"worker_hired_at"`
}

func (r *UpdateWorkerRequest) Normalize() {
	trimPtr(&r.Name, false)
	if r.CIN != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.CIN))
		r.CIN = &v
	}
	trimPtr(&r.Email, true)
	trimPtr(&r.Phone, false)
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
}

// ApplyToModel menerapkan field yang terisi saja
func (r UpdateWorkerRequest) ApplyToModel(w *m.WorkerModel) {
	if r.Name != nil {
		w.WorkerName = *r.Name
	}
	if r.CIN != nil {
		w.WorkerCIN = *r.CIN
	}
	if r.Email != nil {
		w.WorkerEmail = r.Email
	}
	if r.Phone != nil {
		w.WorkerPhone = r.Phone
	}
	if r.Role != nil {
		w.WorkerRole = m.WorkerRole(*r.Role)
	}
	if r.HiredAt != nil {
		w.WorkerHiredAt = r.HiredAt
	}
}

/* =========================================================
   RESPONSE (profil publik — dipakai juga laporan konflik)
   ========================================================= */

type WorkerPublic struct {
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	WorkerCIN  string `json:"worker_cin"`
	WorkerRole string `json:"worker_role"`
}

func ToWorkerPublic(w m.WorkerModel) WorkerPublic {
	return WorkerPublic{
		WorkerID:   w.WorkerID.String(),
		WorkerName: w.WorkerName,
		WorkerCIN:  w.WorkerCIN,
		WorkerRole: string(w.WorkerRole),
	}
}

/* ========================================================= */

func trimPtr(pp **string, lower bool) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	if lower {
		v = strings.ToLower(v)
	}
	*pp = &v
}
