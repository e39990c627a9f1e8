// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"pabrikku_backend/internals/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null;uniqueIndex" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`

	// worker | supervisor | admin
	Role string `gorm:"type:varchar(20);not null;default:'worker'" json:"role"`

	SecurityQuestion string `gorm:"not null" json:"security_question"`
	SecurityAnswer   string `gorm:"size:255;not null" json:"-"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleWorker
	}
	return nil
}

func ValidRole(r string) bool {
	for _, v := range constants.AllRoles {
		if v == r {
			return true
		}
	}
	return false
}
