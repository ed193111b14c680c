package model

import (
	"time"

	"github.com/google/uuid"
)

// KampungModel: kawasan pentadbiran skop masjid — sumber dropdown borang
// sekaligus kunci pengelompokan analytics.
type KampungModel struct {
	KampungID        uuid.UUID `gorm:"column:kampung_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kampung_id"`
	KampungMasjidID  uuid.UUID `gorm:"column:kampung_masjid_id;type:uuid;not null" json:"kampung_masjid_id"`
	KampungName      string    `gorm:"column:kampung_name;type:varchar(150);not null" json:"kampung_name"`
	KampungIsActive  bool      `gorm:"column:kampung_is_active;not null;default:true" json:"kampung_is_active"`
	KampungCreatedAt time.Time `gorm:"column:kampung_created_at;autoCreateTime" json:"kampung_created_at"`
	KampungUpdatedAt time.Time `gorm:"column:kampung_updated_at;autoUpdateTime" json:"kampung_updated_at"`
}

func (KampungModel) TableName() string {
	return "kampungs"
}
