// file: internals/features/tenancy/tenant/dto/tenant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InitialAdminInput struct {
	UserEmail    string `json:"user_email" validate:"required,email,max=150"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=150"`
}

type CreateTenantRequest struct {
	TenantSlug    string         `json:"tenant_slug" validate:"required,min=2,max=63"`
	TenantName    string         `json:"tenant_name" validate:"required,min=2,max=150"`
	TenantLogoURL *string        `json:"tenant_logo_url,omitempty" validate:"omitempty,url"`
	TenantTheme   datatypes.JSON `json:"tenant_theme,omitempty"`

	MasjidName    string `json:"masjid_name" validate:"required,min=2,max=150"`
	MasjidAddress string `json:"masjid_address,omitempty"`
	MasjidPhone   string `json:"masjid_phone,omitempty" validate:"omitempty,max=30"`

	InitialAdmin *InitialAdminInput `json:"initial_admin,omitempty"`
}

type UpdateTenantRequest struct {
	TenantName    *string        `json:"tenant_name,omitempty" validate:"omitempty,min=2,max=150"`
	TenantLogoURL *string        `json:"tenant_logo_url,omitempty" validate:"omitempty,url"`
	TenantTheme   datatypes.JSON `json:"tenant_theme,omitempty"`
	TenantStatus  *string        `json:"tenant_status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`

	MasjidName    *string `json:"masjid_name,omitempty" validate:"omitempty,min=2,max=150"`
	MasjidAddress *string `json:"masjid_address,omitempty"`
	MasjidPhone   *string `json:"masjid_phone,omitempty" validate:"omitempty,max=30"`
}

type TenantListItem struct {
	TenantID        uuid.UUID `gorm:"column:tenant_id" json:"tenant_id"`
	TenantSlug      string    `gorm:"column:tenant_slug" json:"tenant_slug"`
	TenantName      string    `gorm:"column:tenant_name" json:"tenant_name"`
	TenantStatus    string    `gorm:"column:tenant_status" json:"tenant_status"`
	TenantCreatedAt time.Time `gorm:"column:tenant_created_at" json:"tenant_created_at"`
	MasjidName      string    `gorm:"column:masjid_name" json:"masjid_name"`
	HouseholdCount  int64     `gorm:"column:household_count" json:"household_count"`
	UserCount       int64     `gorm:"column:user_count" json:"user_count"`
}

type TenantRanking struct {
	TenantSlug     string `gorm:"column:tenant_slug" json:"tenant_slug"`
	TenantName     string `gorm:"column:tenant_name" json:"tenant_name"`
	HouseholdCount int64  `gorm:"column:household_count" json:"household_count"`
}

type PlatformStatsResponse struct {
	TotalTenants    int64           `json:"total_tenants"`
	ActiveTenants   int64           `json:"active_tenants"`
	TotalHouseholds int64           `json:"total_households"`
	TotalUsers      int64           `json:"total_users"`
	TopTenants      []TenantRanking `json:"top_tenants"`
}
