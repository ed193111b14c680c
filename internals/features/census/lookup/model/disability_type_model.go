package model

import "github.com/google/uuid"

// Lookup global, dikongsi semua tenant.
type DisabilityTypeModel struct {
	DisabilityTypeID   uuid.UUID `gorm:"column:disability_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"disability_type_id"`
	DisabilityTypeName string    `gorm:"column:disability_type_name;type:varchar(100);uniqueIndex;not null" json:"disability_type_name"`
}

func (DisabilityTypeModel) TableName() string {
	return "disability_types"
}
