// file: internals/features/census/analytics/dto/analytics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type MonthCount struct {
	Month string `gorm:"column:month" json:"month"` // YYYY-MM
	Count int64  `gorm:"column:count" json:"count"`
}

type SummaryResponse struct {
	TotalHouseholds    int64   `json:"total_households"`
	TotalDependents    int64   `json:"total_dependents"`
	HousingOwn         int64   `json:"housing_own"`
	HousingRent        int64   `json:"housing_rent"`
	AssistanceReceived int64   `json:"assistance_received"`
	DisabilityInFamily int64   `json:"disability_in_family"`
	ManyDependents     int64   `json:"many_dependents"` // ≥4 tanggungan
	AverageIncome      float64 `json:"average_income"`
	StaleRecords       int64   `json:"stale_records"` // >365 hari tidak dikemas kini

	// peratus 1 titik perpuluhan; 0 bila penyebut 0
	HousingOwnPercent  float64 `json:"housing_own_percent"`
	HousingRentPercent float64 `json:"housing_rent_percent"`
	AssistancePercent  float64 `json:"assistance_percent"`
	DisabilityPercent  float64 `json:"disability_percent"`

	RegistrationsByMonth []MonthCount `json:"registrations_by_month"`
}

type IncomeBandCount struct {
	Band  string `json:"band"`
	Count int64  `json:"count"`
}

type HousingStatusResponse struct {
	Own  int64 `json:"own"`
	Rent int64 `json:"rent"`
}

type RecentSubmission struct {
	HouseholdID   uuid.UUID `gorm:"column:household_id" json:"household_id"`
	ApplicantName string    `gorm:"column:household_version_applicant_name" json:"applicant_name"`
	ApplicantIC   *string   `gorm:"column:household_version_applicant_ic" json:"applicant_ic,omitempty"`
	CreatedAt     time.Time `gorm:"column:household_created_at" json:"created_at"`
}

type GenderDistributionResponse struct {
	Male               int64   `json:"male"`
	Female             int64   `json:"female"`
	Unspecified        int64   `json:"unspecified"`
	MalePercent        float64 `json:"male_percent"`
	FemalePercent      float64 `json:"female_percent"`
	UnspecifiedPercent float64 `json:"unspecified_percent"`
}
