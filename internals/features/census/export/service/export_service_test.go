// file: internals/features/census/export/service/export_service_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRowCells(t *testing.T) {
	ic := "800101-01-1234"
	income := 1234.5
	kampung := "Kampung Baru"

	r := exportRow{
		ApplicantName:      "Ahmad",
		ApplicantIC:        &ic,
		Address:            "Jalan Masjid",
		Postcode:           "43000",
		District:           "Kajang",
		State:              "Selangor",
		Kampung:            &kampung,
		NetIncome:          &income,
		HousingStatus:      "OWN",
		DependentsCount:    3,
		AssistanceReceived: true,
		DisabilityInFamily: false,
		CreatedAt:          time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	cells := r.cells(7)
	require.Len(t, cells, len(exportHeader))

	assert.Equal(t, "7", cells[0])
	assert.Equal(t, "Ahmad", cells[1])
	assert.Equal(t, ic, cells[2])
	assert.Equal(t, "", cells[3]) // telefon nil → kosong
	assert.Equal(t, "1234.50", cells[9])
	assert.Equal(t, "Sendiri", cells[10])
	assert.Equal(t, "3", cells[11])
	assert.Equal(t, "Ya", cells[12])
	assert.Equal(t, "Tidak", cells[14])
	assert.Equal(t, "2025-01-02", cells[15])
	assert.Equal(t, "2025-03-04", cells[16])
}

func TestHousingLabel(t *testing.T) {
	assert.Equal(t, "Sendiri", housingLabel("OWN"))
	assert.Equal(t, "Sewa", housingLabel("RENT"))
	assert.Equal(t, "LAIN", housingLabel("LAIN")) // nilai asing lulus apa adanya
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename("xlsx")
	assert.True(t, strings.HasPrefix(name, "banci_kariah_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
}

func TestExportColumnWidthsMatchHeader(t *testing.T) {
	assert.Len(t, exportColWidths, len(exportHeader))
}
