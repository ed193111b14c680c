// file: internals/features/census/household/dto/household_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kariahku_backend/internals/features/census/household/model"
)

/* =========================================================
   REQUEST DTO — CREATE / UPDATE (borang bancian penuh)
========================================================= */

type DependentInput struct {
	Name         string  `json:"name" validate:"required"`
	IC           *string `json:"ic_no,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Gender       *string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	Relationship string  `json:"relationship"`
	Occupation   string  `json:"occupation"`
}

type DisabilityMemberInput struct {
	Name             string     `json:"name" validate:"required"`
	IC               *string    `json:"ic_no,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Gender           *string    `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	DisabilityTypeID *uuid.UUID `json:"disability_type_id,omitempty"`
	Notes            string     `json:"notes"`
}

type EmergencyContactInput struct {
	Name         string  `json:"name" validate:"required"`
	IC           *string `json:"ic_no,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Relationship string  `json:"relationship"`
}

type HouseholdRequest struct {
	ApplicantName   string  `json:"applicant_name" validate:"required"`
	ApplicantIC     *string `json:"applicant_ic,omitempty"`
	ApplicantPhone  *string `json:"applicant_phone,omitempty"`
	ApplicantGender *string `json:"applicant_gender,omitempty" validate:"omitempty,oneof=MALE FEMALE"`

	Address  string  `json:"address"`
	Postcode string  `json:"postcode"`
	District string  `json:"district"`
	State    string  `json:"state"`
	Kampung  *string `json:"kampung,omitempty"`

	NetIncome     *float64 `json:"net_income,omitempty" validate:"omitempty,gte=0"`
	HousingStatus string   `json:"housing_status" validate:"required,oneof=OWN RENT"`

	AssistanceReceived bool    `json:"assistance_received"`
	AssistanceProvider *string `json:"assistance_provider,omitempty"`
	DisabilityInFamily bool    `json:"disability_in_family"`
	DisabilityNotes    *string `json:"disability_notes,omitempty"`

	Dependents        []DependentInput        `json:"dependents" validate:"dive"`
	DisabilityMembers []DisabilityMemberInput `json:"disability_members" validate:"dive"`
	EmergencyContacts []EmergencyContactInput `json:"emergency_contacts" validate:"dive"`
}

// ToVersionModel: medan deskriptif request → satu snapshot versi.
// Nombor versi & nested collections diisi oleh service.
func (r HouseholdRequest) ToVersionModel(householdID uuid.UUID, createdBy *uuid.UUID) model.HouseholdVersionModel {
	return model.HouseholdVersionModel{
		HouseholdVersionHouseholdID: householdID,
		HouseholdVersionCreatedBy:   createdBy,
		ApplicantName:               r.ApplicantName,
		ApplicantIC:                 r.ApplicantIC,
		ApplicantPhone:              r.ApplicantPhone,
		ApplicantGender:             r.ApplicantGender,
		Address:                     r.Address,
		Postcode:                    r.Postcode,
		District:                    r.District,
		State:                       r.State,
		Kampung:                     r.Kampung,
		NetIncome:                   r.NetIncome,
		HousingStatus:               r.HousingStatus,
		AssistanceReceived:          r.AssistanceReceived,
		AssistanceProvider:          r.AssistanceProvider,
		DisabilityInFamily:          r.DisabilityInFamily,
		DisabilityNotes:             r.DisabilityNotes,
	}
}

/* =========================================================
   FILTER & LIST DTO
========================================================= */

type HouseholdFilter struct {
	Search        string
	HousingStatus string
	IncomeMin     *float64
	IncomeMax     *float64
	DependentsMin *int
	DependentsMax *int
	SortBy        string
	SortOrder     string
}

type HouseholdListItem struct {
	HouseholdID     uuid.UUID `gorm:"column:household_id" json:"household_id"`
	VersionNumber   int       `gorm:"column:household_version_number" json:"version_number"`
	ApplicantName   string    `gorm:"column:household_version_applicant_name" json:"applicant_name"`
	ApplicantIC     *string   `gorm:"column:household_version_applicant_ic" json:"applicant_ic,omitempty"`
	ApplicantPhone  *string   `gorm:"column:household_version_applicant_phone" json:"applicant_phone,omitempty"`
	Kampung         *string   `gorm:"column:household_version_kampung" json:"kampung,omitempty"`
	NetIncome       *float64  `gorm:"column:household_version_net_income" json:"net_income,omitempty"`
	HousingStatus   string    `gorm:"column:household_version_housing_status" json:"housing_status"`
	DependentsCount int       `gorm:"column:dependents_count" json:"dependents_count"`
	CreatedAt       time.Time `gorm:"column:household_created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:household_updated_at" json:"updated_at"`
}
