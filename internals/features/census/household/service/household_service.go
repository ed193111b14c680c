// file: internals/features/census/household/service/household_service.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/features/census/household/dto"
	"kariahku_backend/internals/features/census/household/model"
	helper "kariahku_backend/internals/helpers"
)

const (
	MsgHouseholdNotFound = "Rekod isi rumah tidak ditemukan"
	MsgICConflict        = "No. IC pemohon sudah didaftarkan"
)

// Kolom sort yang dibenarkan untuk senarai isi rumah.
var householdSortColumns = map[string]string{
	"name":       "hv.household_version_applicant_name",
	"net_income": "hv.household_version_net_income",
	"created_at": "h.household_created_at",
	"updated_at": "h.household_updated_at",
}

type HouseholdService struct {
	DB *gorm.DB
}

func NewHouseholdService(db *gorm.DB) *HouseholdService {
	return &HouseholdService{DB: db}
}

/* ==========================
   Helpers
========================== */

// NormalizeIC: IC kosong dianggap tiada (NULL), bukan string kosong.
func NormalizeIC(ic *string) *string {
	if ic == nil {
		return nil
	}
	v := strings.TrimSpace(*ic)
	if v == "" {
		return nil
	}
	return &v
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint")
}

/* ==========================
   IC existence probe
========================== */

// CheckIcExists: probe terhadap versi SEMASA sahaja, skop satu masjid.
// excludeHouseholdID dipakai saat edit (rekod sendiri tidak dikira).
func (s *HouseholdService) CheckIcExists(masjidID uuid.UUID, ic string, excludeHouseholdID *uuid.UUID) (bool, error) {
	ic = strings.TrimSpace(ic)
	if ic == "" {
		return false, nil
	}

	q := s.DB.Table("households AS h").
		Joins("JOIN household_versions hv ON hv.household_version_id = h.household_current_version_id").
		Where("h.household_masjid_id = ?", masjidID).
		Where("hv.household_version_applicant_ic = ?", ic)
	if excludeHouseholdID != nil {
		q = q.Where("h.household_id <> ?", *excludeHouseholdID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

/* ==========================
   CREATE
========================== */

// Create: cipta household + versi 1 + nested rows secara atomik, lalu
// set penunjuk versi semasa. Pulangkan rekod dimuat penuh.
func (s *HouseholdService) Create(masjidID uuid.UUID, createdBy uuid.UUID, req dto.HouseholdRequest) (*model.HouseholdModel, error) {
	req.ApplicantIC = NormalizeIC(req.ApplicantIC)

	if req.ApplicantIC != nil {
		exists, err := s.CheckIcExists(masjidID, *req.ApplicantIC, nil)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fiber.NewError(fiber.StatusConflict, MsgICConflict)
		}
	}

	hh := model.HouseholdModel{HouseholdMasjidID: masjidID}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hh).Error; err != nil {
			return err
		}
		v, err := insertVersionTree(tx, hh.HouseholdID, &createdBy, req)
		if err != nil {
			return err
		}
		return repointCurrentVersion(tx, hh.HouseholdID, v.HouseholdVersionID)
	})
	if err != nil {
		return nil, err
	}

	return s.FindOne(masjidID, hh.HouseholdID)
}

/* ==========================
   UPDATE (versi baru + repoint)
========================== */

// Update: tidak pernah mutasi versi lama — sentiasa insert versi baru
// (nombor = max + 1) lalu alih penunjuk. Penetapan nombor versi atomik:
// subquery MAX+1 di bawah index unik (household, nombor), retry sekali
// kalau dua update serentak berlanggar.
func (s *HouseholdService) Update(masjidID, householdID uuid.UUID, createdBy uuid.UUID, req dto.HouseholdRequest) (*model.HouseholdModel, error) {
	var hh model.HouseholdModel
	if err := s.DB.
		Where("household_id = ? AND household_masjid_id = ?", householdID, masjidID).
		First(&hh).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgHouseholdNotFound)
	}

	req.ApplicantIC = NormalizeIC(req.ApplicantIC)
	if req.ApplicantIC != nil {
		exists, err := s.CheckIcExists(masjidID, *req.ApplicantIC, &householdID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fiber.NewError(fiber.StatusConflict, MsgICConflict)
		}
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			v, err := insertVersionTree(tx, householdID, &createdBy, req)
			if err != nil {
				return err
			}
			return repointCurrentVersion(tx, householdID, v.HouseholdVersionID)
		})
		if lastErr == nil {
			break
		}
		if !isUniqueViolation(lastErr) {
			return nil, lastErr
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	return s.FindOne(masjidID, householdID)
}

/* ==========================
   Version tree insert
========================== */

// insertVersionTree: satu versi + Person/join/contact rows di dalam tx
// pemanggil. Setiap tanggungan & ahli OKU dapat row Person BARU —
// snapshot per versi, tiada reuse antara versi.
func insertVersionTree(tx *gorm.DB, householdID uuid.UUID, createdBy *uuid.UUID, req dto.HouseholdRequest) (*model.HouseholdVersionModel, error) {
	var next int
	if err := tx.Raw(`
		SELECT COALESCE(MAX(household_version_number), 0) + 1
		FROM household_versions
		WHERE household_version_household_id = ?
	`, householdID).Scan(&next).Error; err != nil {
		return nil, err
	}

	v := req.ToVersionModel(householdID, createdBy)
	v.HouseholdVersionNumber = next
	if err := tx.Create(&v).Error; err != nil {
		return nil, err
	}

	for _, d := range req.Dependents {
		p := model.PersonModel{
			PersonName:   strings.TrimSpace(d.Name),
			PersonIC:     NormalizeIC(d.IC),
			PersonPhone:  d.Phone,
			PersonGender: d.Gender,
		}
		if err := tx.Create(&p).Error; err != nil {
			return nil, err
		}
		link := model.VersionDependentModel{
			VersionDependentVersionID:    v.HouseholdVersionID,
			VersionDependentPersonID:     p.PersonID,
			VersionDependentRelationship: d.Relationship,
			VersionDependentOccupation:   d.Occupation,
		}
		if err := tx.Create(&link).Error; err != nil {
			return nil, err
		}
	}

	for _, m := range req.DisabilityMembers {
		p := model.PersonModel{
			PersonName:   strings.TrimSpace(m.Name),
			PersonIC:     NormalizeIC(m.IC),
			PersonPhone:  m.Phone,
			PersonGender: m.Gender,
		}
		if err := tx.Create(&p).Error; err != nil {
			return nil, err
		}
		link := model.VersionDisabilityMemberModel{
			VersionDisabilityMemberVersionID: v.HouseholdVersionID,
			VersionDisabilityMemberPersonID:  p.PersonID,
			VersionDisabilityMemberTypeID:    m.DisabilityTypeID,
			VersionDisabilityMemberNotes:     m.Notes,
		}
		if err := tx.Create(&link).Error; err != nil {
			return nil, err
		}
	}

	for _, ec := range req.EmergencyContacts {
		row := model.EmergencyContactModel{
			EmergencyContactVersionID:    v.HouseholdVersionID,
			EmergencyContactName:         strings.TrimSpace(ec.Name),
			EmergencyContactIC:           NormalizeIC(ec.IC),
			EmergencyContactPhone:        ec.Phone,
			EmergencyContactRelationship: ec.Relationship,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	return &v, nil
}

func repointCurrentVersion(tx *gorm.DB, householdID, versionID uuid.UUID) error {
	return tx.Model(&model.HouseholdModel{}).
		Where("household_id = ?", householdID).
		Update("household_current_version_id", versionID).Error
}

/* ==========================
   FIND ALL (filter + paging)
========================== */

func (s *HouseholdService) FindAll(masjidID uuid.UUID, f dto.HouseholdFilter, paging helper.Paging) ([]dto.HouseholdListItem, int64, error) {
	// Filter julat bilangan tanggungan: kiraan berkelompok atas versi
	// SEMASA sahaja; LEFT JOIN supaya household tanpa tanggungan
	// dikira 0 (cabang "tiada tanggungan" bila bawah julat ≤ 0).
	var idFilter []uuid.UUID
	if f.DependentsMin != nil || f.DependentsMax != nil {
		min, max := 0, int(^uint(0)>>1)
		if f.DependentsMin != nil {
			min = *f.DependentsMin
		}
		if f.DependentsMax != nil {
			max = *f.DependentsMax
		}
		if err := s.DB.Raw(`
			SELECT h.household_id
			FROM households h
			JOIN household_versions hv ON hv.household_version_id = h.household_current_version_id
			LEFT JOIN version_dependents vd ON vd.version_dependent_version_id = hv.household_version_id
			WHERE h.household_masjid_id = ?
			GROUP BY h.household_id
			HAVING COUNT(vd.version_dependent_id) >= ? AND COUNT(vd.version_dependent_id) <= ?
		`, masjidID, min, max).Scan(&idFilter).Error; err != nil {
			return nil, 0, err
		}
		// tiada padanan seluruh masjid → muka surat kosong, tiada query lanjut
		if len(idFilter) == 0 {
			return []dto.HouseholdListItem{}, 0, nil
		}
	}

	base := s.DB.Table("households AS h").
		Joins("JOIN household_versions hv ON hv.household_version_id = h.household_current_version_id").
		Where("h.household_masjid_id = ?", masjidID)

	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + q + "%"
		base = base.Where(`(hv.household_version_applicant_name ILIKE ?
			OR hv.household_version_applicant_ic ILIKE ?
			OR hv.household_version_address ILIKE ?)`, like, like, like)
	}
	if hs := strings.TrimSpace(f.HousingStatus); hs != "" {
		base = base.Where("hv.household_version_housing_status = ?", strings.ToUpper(hs))
	}
	if f.IncomeMin != nil {
		base = base.Where("hv.household_version_net_income >= ?", *f.IncomeMin)
	}
	if f.IncomeMax != nil {
		base = base.Where("hv.household_version_net_income <= ?", *f.IncomeMax)
	}
	if len(idFilter) > 0 {
		base = base.Where("h.household_id IN ?", idFilter)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := helper.SafeOrderClause(householdSortColumns, f.SortBy, f.SortOrder, "updated_at")
	if err != nil {
		return nil, 0, err
	}

	var items []dto.HouseholdListItem
	if err := base.Session(&gorm.Session{}).
		Select(`h.household_id, h.household_created_at, h.household_updated_at,
			hv.household_version_number, hv.household_version_applicant_name,
			hv.household_version_applicant_ic, hv.household_version_applicant_phone,
			hv.household_version_kampung, hv.household_version_net_income,
			hv.household_version_housing_status,
			(SELECT COUNT(*) FROM version_dependents vd
				WHERE vd.version_dependent_version_id = hv.household_version_id) AS dependents_count`).
		Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

/* ==========================
   FIND ONE & HISTORY
========================== */

// FindOne: versi semasa dimuat penuh + senarai versi menurun.
func (s *HouseholdService) FindOne(masjidID, householdID uuid.UUID) (*model.HouseholdModel, error) {
	var hh model.HouseholdModel
	err := s.DB.
		Preload("CurrentVersion.Dependents.Person").
		Preload("CurrentVersion.DisabilityMembers.Person").
		Preload("CurrentVersion.DisabilityMembers.DisabilityType").
		Preload("CurrentVersion.EmergencyContacts").
		Preload("CurrentVersion.Creator").
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("household_version_number DESC")
		}).
		Where("household_id = ? AND household_masjid_id = ?", householdID, masjidID).
		First(&hh).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgHouseholdNotFound)
	}
	return &hh, nil
}

// VersionHistory: semua versi menurun, masing-masing dimuat penuh —
// snapshot lama kekal boleh diperiksa sendiri.
func (s *HouseholdService) VersionHistory(masjidID, householdID uuid.UUID) ([]model.HouseholdVersionModel, error) {
	var hh model.HouseholdModel
	if err := s.DB.
		Where("household_id = ? AND household_masjid_id = ?", householdID, masjidID).
		First(&hh).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgHouseholdNotFound)
	}

	var versions []model.HouseholdVersionModel
	if err := s.DB.
		Preload("Dependents.Person").
		Preload("DisabilityMembers.Person").
		Preload("DisabilityMembers.DisabilityType").
		Preload("EmergencyContacts").
		Preload("Creator").
		Where("household_version_household_id = ?", householdID).
		Order("household_version_number DESC").
		Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}
