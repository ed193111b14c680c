// file: internals/features/census/analytics/service/analytics_service.go
package service

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/analytics/dto"
)

// Label jalur pendapatan (band tetap)
const (
	BandBelow1000   = "< RM1000"
	Band1000To2000  = "RM1000 - RM2000"
	Band2001To3000  = "RM2001 - RM3000"
	Band3001To5000  = "RM3001 - RM5000"
	BandAbove5000   = "> RM5000"
	BandUnspecified = "Tidak dinyatakan"
)

var IncomeBands = []string{
	BandBelow1000, Band1000To2000, Band2001To3000,
	Band3001To5000, BandAbove5000, BandUnspecified,
}

// AnalyticsService: operasi baca tanpa state atas versi SEMASA,
// skop masjid + (pilihan) satu kampung.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

/* ==========================
   Pure helpers
========================== */

// CalcPercent: round(100*part/total, 1 titik perpuluhan); 0 bila total 0.
func CalcPercent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// BandForIncome: setiap household jatuh tepat ke satu jalur.
// NULL atau 0 dikira "tidak dinyatakan".
func BandForIncome(income *float64) string {
	if income == nil || *income == 0 {
		return BandUnspecified
	}
	v := *income
	switch {
	case v < 1000:
		return BandBelow1000
	case v <= 2000:
		return Band1000To2000
	case v <= 3000:
		return Band2001To3000
	case v <= 5000:
		return Band3001To5000
	default:
		return BandAbove5000
	}
}

// currentScope: FROM households JOIN versi semasa, skop masjid + kampung.
func (s *AnalyticsService) currentScope(masjidID uuid.UUID, kampung string) *gorm.DB {
	q := s.DB.Table("households AS h").
		Joins("JOIN household_versions hv ON hv.household_version_id = h.household_current_version_id").
		Where("h.household_masjid_id = ?", masjidID)
	if k := strings.TrimSpace(kampung); k != "" {
		q = q.Where("hv.household_version_kampung = ?", k)
	}
	return q
}

/* ==========================
   Summary
========================== */

func (s *AnalyticsService) Summary(masjidID uuid.UUID, kampung string) (*dto.SummaryResponse, error) {
	var agg struct {
		TotalHouseholds    int64    `gorm:"column:total_households"`
		HousingOwn         int64    `gorm:"column:housing_own"`
		HousingRent        int64    `gorm:"column:housing_rent"`
		AssistanceReceived int64    `gorm:"column:assistance_received"`
		DisabilityInFamily int64    `gorm:"column:disability_in_family"`
		AverageIncome      *float64 `gorm:"column:average_income"`
		StaleRecords       int64    `gorm:"column:stale_records"`
	}
	err := s.currentScope(masjidID, kampung).
		Select(`COUNT(*) AS total_households,
			COUNT(*) FILTER (WHERE hv.household_version_housing_status = 'OWN')  AS housing_own,
			COUNT(*) FILTER (WHERE hv.household_version_housing_status = 'RENT') AS housing_rent,
			COUNT(*) FILTER (WHERE hv.household_version_assistance_received)     AS assistance_received,
			COUNT(*) FILTER (WHERE hv.household_version_disability_in_family)    AS disability_in_family,
			AVG(hv.household_version_net_income)                                 AS average_income,
			COUNT(*) FILTER (WHERE h.household_updated_at < now() - interval '365 days') AS stale_records`).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	var totalDependents int64
	if err := s.currentScope(masjidID, kampung).
		Joins("JOIN version_dependents vd ON vd.version_dependent_version_id = hv.household_version_id").
		Count(&totalDependents).Error; err != nil {
		return nil, err
	}

	// household dengan ≥4 tanggungan — grouped having dibungkus subquery
	// supaya COUNT luar mengira bilangan kumpulan, bukan baris kumpulan pertama
	manySub := s.currentScope(masjidID, kampung).
		Joins("JOIN version_dependents vd ON vd.version_dependent_version_id = hv.household_version_id").
		Group("h.household_id").
		Having("COUNT(vd.version_dependent_id) >= ?", 4).
		Select("h.household_id")
	var manyDependents int64
	if err := s.DB.Table("(?) AS many", manySub).Count(&manyDependents).Error; err != nil {
		return nil, err
	}

	var byMonth []dto.MonthCount
	if err := s.currentScope(masjidID, kampung).
		Select(`to_char(h.household_created_at, 'YYYY-MM') AS month, COUNT(*) AS count`).
		Group("1").
		Order("1 ASC").
		Scan(&byMonth).Error; err != nil {
		return nil, err
	}

	out := &dto.SummaryResponse{
		TotalHouseholds:      agg.TotalHouseholds,
		TotalDependents:      totalDependents,
		HousingOwn:           agg.HousingOwn,
		HousingRent:          agg.HousingRent,
		AssistanceReceived:   agg.AssistanceReceived,
		DisabilityInFamily:   agg.DisabilityInFamily,
		ManyDependents:       manyDependents,
		StaleRecords:         agg.StaleRecords,
		RegistrationsByMonth: byMonth,
		HousingOwnPercent:    CalcPercent(agg.HousingOwn, agg.TotalHouseholds),
		HousingRentPercent:   CalcPercent(agg.HousingRent, agg.TotalHouseholds),
		AssistancePercent:    CalcPercent(agg.AssistanceReceived, agg.TotalHouseholds),
		DisabilityPercent:    CalcPercent(agg.DisabilityInFamily, agg.TotalHouseholds),
	}
	if agg.AverageIncome != nil {
		out.AverageIncome = math.Round(*agg.AverageIncome*100) / 100
	}
	return out, nil
}

/* ==========================
   Distributions
========================== */

func (s *AnalyticsService) IncomeDistribution(masjidID uuid.UUID, kampung string) ([]dto.IncomeBandCount, error) {
	var incomes []*float64
	if err := s.currentScope(masjidID, kampung).
		Pluck("hv.household_version_net_income", &incomes).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(IncomeBands))
	for _, inc := range incomes {
		counts[BandForIncome(inc)]++
	}

	out := make([]dto.IncomeBandCount, 0, len(IncomeBands))
	for _, band := range IncomeBands {
		out = append(out, dto.IncomeBandCount{Band: band, Count: counts[band]})
	}
	return out, nil
}

func (s *AnalyticsService) HousingStatus(masjidID uuid.UUID, kampung string) (*dto.HousingStatusResponse, error) {
	var agg struct {
		Own  int64 `gorm:"column:own"`
		Rent int64 `gorm:"column:rent"`
	}
	err := s.currentScope(masjidID, kampung).
		Select(`COUNT(*) FILTER (WHERE hv.household_version_housing_status = 'OWN')  AS own,
			COUNT(*) FILTER (WHERE hv.household_version_housing_status = 'RENT') AS rent`).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &dto.HousingStatusResponse{Own: agg.Own, Rent: agg.Rent}, nil
}

func (s *AnalyticsService) RecentSubmissions(masjidID uuid.UUID, kampung string, limit int) ([]dto.RecentSubmission, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	var out []dto.RecentSubmission
	err := s.currentScope(masjidID, kampung).
		Select(`h.household_id, hv.household_version_applicant_name,
			hv.household_version_applicant_ic, h.household_created_at`).
		Order("h.household_created_at DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// GenderDistribution: jumlah jantina pemohon (pada versi) + setiap
// Person tanggungan yang dipaut versi semasa.
func (s *AnalyticsService) GenderDistribution(masjidID uuid.UUID, kampung string) (*dto.GenderDistributionResponse, error) {
	var applicants []*string
	if err := s.currentScope(masjidID, kampung).
		Pluck("hv.household_version_applicant_gender", &applicants).Error; err != nil {
		return nil, err
	}

	var dependents []*string
	if err := s.currentScope(masjidID, kampung).
		Joins("JOIN version_dependents vd ON vd.version_dependent_version_id = hv.household_version_id").
		Joins("JOIN persons p ON p.person_id = vd.version_dependent_person_id").
		Pluck("p.person_gender", &dependents).Error; err != nil {
		return nil, err
	}

	out := &dto.GenderDistributionResponse{}
	tally := func(g *string) {
		if g == nil {
			out.Unspecified++
			return
		}
		switch strings.ToUpper(strings.TrimSpace(*g)) {
		case "MALE", "LELAKI", "M":
			out.Male++
		case "FEMALE", "PEREMPUAN", "F":
			out.Female++
		default:
			out.Unspecified++
		}
	}
	for _, g := range applicants {
		tally(g)
	}
	for _, g := range dependents {
		tally(g)
	}

	total := out.Male + out.Female + out.Unspecified
	out.MalePercent = CalcPercent(out.Male, total)
	out.FemalePercent = CalcPercent(out.Female, total)
	out.UnspecifiedPercent = CalcPercent(out.Unspecified, total)
	return out, nil
}

// ListKampungNames: nama kampung tak-null yang muncul di versi semasa.
func (s *AnalyticsService) ListKampungNames(masjidID uuid.UUID) ([]string, error) {
	var names []string
	err := s.DB.Table("households AS h").
		Joins("JOIN household_versions hv ON hv.household_version_id = h.household_current_version_id").
		Where("h.household_masjid_id = ?", masjidID).
		Where("hv.household_version_kampung IS NOT NULL").
		Distinct().
		Order("hv.household_version_kampung ASC").
		Pluck("hv.household_version_kampung", &names).Error
	return names, err
}
