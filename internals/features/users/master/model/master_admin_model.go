package model

import (
	"time"

	"github.com/google/uuid"
)

type MasterAdminModel struct {
	MasterAdminID        uuid.UUID `gorm:"column:master_admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"master_admin_id"`
	MasterAdminEmail     string    `gorm:"column:master_admin_email;type:varchar(150);not null" json:"master_admin_email"`
	MasterAdminPassword  string    `gorm:"column:master_admin_password;type:text;not null" json:"-"`
	MasterAdminFullName  string    `gorm:"column:master_admin_full_name;type:varchar(150)" json:"master_admin_full_name"`
	MasterAdminRole      string    `gorm:"column:master_admin_role;type:varchar(20);not null;default:SUPPORT" json:"master_admin_role"`
	MasterAdminIsActive  bool      `gorm:"column:master_admin_is_active;not null;default:true" json:"master_admin_is_active"`
	MasterAdminCreatedAt time.Time `gorm:"column:master_admin_created_at;autoCreateTime" json:"master_admin_created_at"`
	MasterAdminUpdatedAt time.Time `gorm:"column:master_admin_updated_at;autoUpdateTime" json:"master_admin_updated_at"`
}

func (MasterAdminModel) TableName() string {
	return "master_admins"
}
