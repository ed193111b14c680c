// file: internals/features/census/household/dto/household_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }
func fp(v float64) *float64 { return &v }

func TestToVersionModel(t *testing.T) {
	householdID := uuid.New()
	createdBy := uuid.New()

	req := HouseholdRequest{
		ApplicantName:      "Ahmad bin Abdullah",
		ApplicantIC:        strp("800101-01-1234"),
		ApplicantPhone:     strp("012-3456789"),
		ApplicantGender:    strp("MALE"),
		Address:            "No 12, Jalan Masjid",
		Postcode:           "43000",
		District:           "Kajang",
		State:              "Selangor",
		Kampung:            strp("Kampung Baru"),
		NetIncome:          fp(2500),
		HousingStatus:      "OWN",
		AssistanceReceived: true,
		AssistanceProvider: strp("Zakat Selangor"),
		DisabilityInFamily: true,
		DisabilityNotes:    strp("anak kedua"),
		Dependents: []DependentInput{
			{Name: "Siti", Relationship: "Anak", Occupation: "Pelajar"},
		},
	}

	v := req.ToVersionModel(householdID, &createdBy)

	assert.Equal(t, householdID, v.HouseholdVersionHouseholdID)
	assert.Equal(t, &createdBy, v.HouseholdVersionCreatedBy)
	assert.Equal(t, "Ahmad bin Abdullah", v.ApplicantName)
	assert.Equal(t, "800101-01-1234", *v.ApplicantIC)
	assert.Equal(t, "MALE", *v.ApplicantGender)
	assert.Equal(t, "Selangor", v.State)
	assert.Equal(t, 2500.0, *v.NetIncome)
	assert.Equal(t, "OWN", v.HousingStatus)
	assert.True(t, v.AssistanceReceived)
	assert.True(t, v.DisabilityInFamily)

	// nombor versi & koleksi nested diisi oleh service, bukan mapper
	assert.Zero(t, v.HouseholdVersionNumber)
	assert.Empty(t, v.Dependents)
}

func TestToVersionModelOptionalFieldsStayNil(t *testing.T) {
	v := HouseholdRequest{
		ApplicantName: "Fatimah",
		HousingStatus: "RENT",
	}.ToVersionModel(uuid.New(), nil)

	assert.Nil(t, v.HouseholdVersionCreatedBy)
	assert.Nil(t, v.ApplicantIC)
	assert.Nil(t, v.Kampung)
	assert.Nil(t, v.NetIncome)
	assert.False(t, v.AssistanceReceived)
}
