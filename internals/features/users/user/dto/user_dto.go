// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	userModel "pabrikku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=worker supervisor admin"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
}

func (r *UpdateUserRequest) ApplyToModel(u *userModel.UserModel) {
	if r.UserName != nil {
		u.UserName = *r.UserName
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

type UserPublic struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserPublic(u *userModel.UserModel) UserPublic {
	return UserPublic{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserPublics(list []userModel.UserModel) []UserPublic {
	out := make([]UserPublic, 0, len(list))
	for i := range list {
		out = append(out, ToUserPublic(&list[i]))
	}
	return out
}
