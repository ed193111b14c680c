// file: internals/features/census/export/service/export_service.go
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Lajur tetap untuk kedua-dua format (Excel & CSV)
var exportHeader = []string{
	"Bil",
	"Nama Pemohon",
	"No. IC",
	"No. Telefon",
	"Alamat",
	"Poskod",
	"Daerah",
	"Negeri",
	"Kampung",
	"Pendapatan Bersih (RM)",
	"Status Kediaman",
	"Bil. Tanggungan",
	"Terima Bantuan",
	"Penyedia Bantuan",
	"OKU Dalam Keluarga",
	"Tarikh Daftar",
	"Tarikh Kemas Kini",
}

var exportColWidths = []float64{
	6, 28, 16, 16, 40, 10, 18, 18, 20, 20, 16, 14, 14, 24, 16, 18, 18,
}

type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

type exportRow struct {
	ApplicantName      string    `gorm:"column:household_version_applicant_name"`
	ApplicantIC        *string   `gorm:"column:household_version_applicant_ic"`
	ApplicantPhone     *string   `gorm:"column:household_version_applicant_phone"`
	Address            string    `gorm:"column:household_version_address"`
	Postcode           string    `gorm:"column:household_version_postcode"`
	District           string    `gorm:"column:household_version_district"`
	State              string    `gorm:"column:household_version_state"`
	Kampung            *string   `gorm:"column:household_version_kampung"`
	NetIncome          *float64  `gorm:"column:household_version_net_income"`
	HousingStatus      string    `gorm:"column:household_version_housing_status"`
	DependentsCount    int64     `gorm:"column:dependents_count"`
	AssistanceReceived bool      `gorm:"column:household_version_assistance_received"`
	AssistanceProvider *string   `gorm:"column:household_version_assistance_provider"`
	DisabilityInFamily bool      `gorm:"column:household_version_disability_in_family"`
	CreatedAt          time.Time `gorm:"column:household_created_at"`
	UpdatedAt          time.Time `gorm:"column:household_updated_at"`
}

// fetchRows: hanya versi SEMASA setiap household, skop masjid + (pilihan) kampung.
func (s *ExportService) fetchRows(masjidID uuid.UUID, kampung string) ([]exportRow, error) {
	q := s.DB.Table("households AS h").
		Joins("JOIN household_versions hv ON hv.household_version_id = h.household_current_version_id").
		Where("h.household_masjid_id = ?", masjidID)
	if k := strings.TrimSpace(kampung); k != "" {
		q = q.Where("hv.household_version_kampung = ?", k)
	}

	var rows []exportRow
	err := q.Select(`hv.household_version_applicant_name,
			hv.household_version_applicant_ic,
			hv.household_version_applicant_phone,
			hv.household_version_address,
			hv.household_version_postcode,
			hv.household_version_district,
			hv.household_version_state,
			hv.household_version_kampung,
			hv.household_version_net_income,
			hv.household_version_housing_status,
			(SELECT COUNT(*) FROM version_dependents vd
				WHERE vd.version_dependent_version_id = hv.household_version_id) AS dependents_count,
			hv.household_version_assistance_received,
			hv.household_version_assistance_provider,
			hv.household_version_disability_in_family,
			h.household_created_at,
			h.household_updated_at`).
		Order("hv.household_version_applicant_name ASC").
		Scan(&rows).Error
	return rows, err
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func housingLabel(status string) string {
	switch status {
	case "OWN":
		return "Sendiri"
	case "RENT":
		return "Sewa"
	default:
		return status
	}
}

func yaTidak(b bool) string {
	if b {
		return "Ya"
	}
	return "Tidak"
}

func (r exportRow) cells(bil int) []string {
	income := ""
	if r.NetIncome != nil {
		income = strconv.FormatFloat(*r.NetIncome, 'f', 2, 64)
	}
	return []string{
		strconv.Itoa(bil),
		r.ApplicantName,
		derefStr(r.ApplicantIC),
		derefStr(r.ApplicantPhone),
		r.Address,
		r.Postcode,
		r.District,
		r.State,
		derefStr(r.Kampung),
		income,
		housingLabel(r.HousingStatus),
		strconv.FormatInt(r.DependentsCount, 10),
		yaTidak(r.AssistanceReceived),
		derefStr(r.AssistanceProvider),
		yaTidak(r.DisabilityInFamily),
		r.CreatedAt.Format("2006-01-02"),
		r.UpdatedAt.Format("2006-01-02"),
	}
}

/* ==========================
   Excel
========================== */

func (s *ExportService) GenerateExcel(masjidID uuid.UUID, kampung string) ([]byte, error) {
	rows, err := s.fetchRows(masjidID, kampung)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Banci Kariah"
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gagal cipta sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gagal cipta gaya header: %w", err)
	}

	for col, header := range exportHeader {
		cell, cerr := excelize.CoordinatesToCellName(col+1, 1)
		if cerr != nil {
			f.Close()
			return nil, cerr
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, w := range exportColWidths {
		col, cerr := excelize.ColumnNumberToName(i + 1)
		if cerr != nil {
			f.Close()
			return nil, cerr
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			f.Close()
			return nil, err
		}
	}

	for rowIdx, r := range rows {
		for colIdx, v := range r.cells(rowIdx + 1) {
			cell, cerr := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if cerr != nil {
				f.Close()
				return nil, cerr
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	// bekukan baris header
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("gagal tulis buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* ==========================
   CSV
========================== */

func (s *ExportService) GenerateCSV(masjidID uuid.UUID, kampung string) ([]byte, error) {
	rows, err := s.fetchRows(masjidID, kampung)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	// BOM supaya Excel buka UTF-8 dengan betul
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := w.Write(r.cells(i + 1)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename: nama fail bercap tarikh, cth. banci_kariah_2025-04-01.xlsx
func ExportFilename(ext string) string {
	return fmt.Sprintf("banci_kariah_%s.%s", time.Now().Format("2006-01-02"), ext)
}
