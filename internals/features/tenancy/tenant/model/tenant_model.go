package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status kitaran hayat tenant
const (
	TenantStatusActive    = "ACTIVE"
	TenantStatusInactive  = "INACTIVE"
	TenantStatusSuspended = "SUSPENDED"
)

type TenantModel struct {
	TenantID        uuid.UUID      `gorm:"column:tenant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tenant_id"`
	TenantSlug      string         `gorm:"column:tenant_slug;type:varchar(63);not null" json:"tenant_slug"`
	TenantName      string         `gorm:"column:tenant_name;type:varchar(150);not null" json:"tenant_name"`
	TenantLogoURL   *string        `gorm:"column:tenant_logo_url;type:text" json:"tenant_logo_url,omitempty"`
	TenantTheme     datatypes.JSON `gorm:"column:tenant_theme;type:jsonb" json:"tenant_theme,omitempty"`
	TenantStatus    string         `gorm:"column:tenant_status;type:varchar(20);not null;default:ACTIVE" json:"tenant_status"`
	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"column:tenant_updated_at;autoUpdateTime" json:"tenant_updated_at"`

	Masjid *MasjidModel `gorm:"foreignKey:MasjidTenantID;references:TenantID" json:"masjid,omitempty"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

type MasjidModel struct {
	MasjidID        uuid.UUID `gorm:"column:masjid_id;type:uuid;default:gen_random_uuid();primaryKey" json:"masjid_id"`
	MasjidTenantID  uuid.UUID `gorm:"column:masjid_tenant_id;type:uuid;not null" json:"masjid_tenant_id"`
	MasjidName      string    `gorm:"column:masjid_name;type:varchar(150);not null" json:"masjid_name"`
	MasjidAddress   string    `gorm:"column:masjid_address;type:text" json:"masjid_address"`
	MasjidPhone     string    `gorm:"column:masjid_phone;type:varchar(30)" json:"masjid_phone"`
	MasjidCreatedAt time.Time `gorm:"column:masjid_created_at;autoCreateTime" json:"masjid_created_at"`
	MasjidUpdatedAt time.Time `gorm:"column:masjid_updated_at;autoUpdateTime" json:"masjid_updated_at"`
}

func (MasjidModel) TableName() string {
	return "masjids"
}
