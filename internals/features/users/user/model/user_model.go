package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserMasjidID  uuid.UUID `gorm:"column:user_masjid_id;type:uuid;not null" json:"user_masjid_id"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(150);not null" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserFullName  string    `gorm:"column:user_full_name;type:varchar(150)" json:"user_full_name"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:PENGURUSAN" json:"user_role"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
