package model

import (
	"time"

	"github.com/google/uuid"

	lookupModel "kariahku_backend/internals/features/census/lookup/model"
	userModel "kariahku_backend/internals/features/users/user/model"
)

// Status kediaman
const (
	HousingOwn  = "OWN"
	HousingRent = "RENT"
)

// HouseholdModel: identiti kekal satu keluarga. Semua medan deskriptif
// berada pada versinya — row ini cuma pemilik + penunjuk versi semasa.
type HouseholdModel struct {
	HouseholdID               uuid.UUID  `gorm:"column:household_id;type:uuid;default:gen_random_uuid();primaryKey" json:"household_id"`
	HouseholdMasjidID         uuid.UUID  `gorm:"column:household_masjid_id;type:uuid;not null" json:"household_masjid_id"`
	HouseholdCurrentVersionID *uuid.UUID `gorm:"column:household_current_version_id;type:uuid" json:"household_current_version_id,omitempty"`
	HouseholdCreatedAt        time.Time  `gorm:"column:household_created_at;autoCreateTime" json:"household_created_at"`
	HouseholdUpdatedAt        time.Time  `gorm:"column:household_updated_at;autoUpdateTime" json:"household_updated_at"`

	CurrentVersion *HouseholdVersionModel `gorm:"foreignKey:HouseholdCurrentVersionID;references:HouseholdVersionID" json:"current_version,omitempty"`
	Versions       []HouseholdVersionModel `gorm:"foreignKey:HouseholdVersionHouseholdID;references:HouseholdID" json:"versions,omitempty"`
}

func (HouseholdModel) TableName() string {
	return "households"
}

// HouseholdVersionModel: snapshot tak berubah; edit sentiasa tambah row
// baru + alih penunjuk, tidak pernah mutasi in-place.
type HouseholdVersionModel struct {
	HouseholdVersionID          uuid.UUID  `gorm:"column:household_version_id;type:uuid;default:gen_random_uuid();primaryKey" json:"household_version_id"`
	HouseholdVersionHouseholdID uuid.UUID  `gorm:"column:household_version_household_id;type:uuid;not null" json:"household_version_household_id"`
	HouseholdVersionNumber      int        `gorm:"column:household_version_number;not null" json:"household_version_number"`
	HouseholdVersionCreatedBy   *uuid.UUID `gorm:"column:household_version_created_by;type:uuid" json:"household_version_created_by,omitempty"`

	ApplicantName   string   `gorm:"column:household_version_applicant_name;type:varchar(150);not null" json:"applicant_name"`
	ApplicantIC     *string  `gorm:"column:household_version_applicant_ic;type:varchar(20)" json:"applicant_ic,omitempty"`
	ApplicantPhone  *string  `gorm:"column:household_version_applicant_phone;type:varchar(30)" json:"applicant_phone,omitempty"`
	ApplicantGender *string  `gorm:"column:household_version_applicant_gender;type:varchar(10)" json:"applicant_gender,omitempty"`
	Address         string   `gorm:"column:household_version_address;type:text" json:"address"`
	Postcode        string   `gorm:"column:household_version_postcode;type:varchar(10)" json:"postcode"`
	District        string   `gorm:"column:household_version_district;type:varchar(100)" json:"district"`
	State           string   `gorm:"column:household_version_state;type:varchar(100)" json:"state"`
	Kampung         *string  `gorm:"column:household_version_kampung;type:varchar(150)" json:"kampung,omitempty"`
	NetIncome       *float64 `gorm:"column:household_version_net_income;type:numeric(12,2)" json:"net_income,omitempty"`
	HousingStatus   string   `gorm:"column:household_version_housing_status;type:varchar(10)" json:"housing_status"`

	AssistanceReceived bool    `gorm:"column:household_version_assistance_received;not null;default:false" json:"assistance_received"`
	AssistanceProvider *string `gorm:"column:household_version_assistance_provider;type:text" json:"assistance_provider,omitempty"`
	DisabilityInFamily bool    `gorm:"column:household_version_disability_in_family;not null;default:false" json:"disability_in_family"`
	DisabilityNotes    *string `gorm:"column:household_version_disability_notes;type:text" json:"disability_notes,omitempty"`

	HouseholdVersionCreatedAt time.Time `gorm:"column:household_version_created_at;autoCreateTime" json:"household_version_created_at"`

	Creator           *userModel.UserModel          `gorm:"foreignKey:HouseholdVersionCreatedBy;references:UserID" json:"creator,omitempty"`
	Dependents        []VersionDependentModel       `gorm:"foreignKey:VersionDependentVersionID;references:HouseholdVersionID" json:"dependents,omitempty"`
	DisabilityMembers []VersionDisabilityMemberModel `gorm:"foreignKey:VersionDisabilityMemberVersionID;references:HouseholdVersionID" json:"disability_members,omitempty"`
	EmergencyContacts []EmergencyContactModel       `gorm:"foreignKey:EmergencyContactVersionID;references:HouseholdVersionID" json:"emergency_contacts,omitempty"`
}

func (HouseholdVersionModel) TableName() string {
	return "household_versions"
}

// PersonModel: rekod identiti sekunder untuk tanggungan / ahli OKU.
// Setiap versi mencipta row Person baru (snapshot per versi).
type PersonModel struct {
	PersonID        uuid.UUID `gorm:"column:person_id;type:uuid;default:gen_random_uuid();primaryKey" json:"person_id"`
	PersonName      string    `gorm:"column:person_name;type:varchar(150);not null" json:"person_name"`
	PersonIC        *string   `gorm:"column:person_ic;type:varchar(20)" json:"person_ic,omitempty"`
	PersonPhone     *string   `gorm:"column:person_phone;type:varchar(30)" json:"person_phone,omitempty"`
	PersonGender    *string   `gorm:"column:person_gender;type:varchar(10)" json:"person_gender,omitempty"`
	PersonCreatedAt time.Time `gorm:"column:person_created_at;autoCreateTime" json:"person_created_at"`
}

func (PersonModel) TableName() string {
	return "persons"
}

type VersionDependentModel struct {
	VersionDependentID           uuid.UUID `gorm:"column:version_dependent_id;type:uuid;default:gen_random_uuid();primaryKey" json:"version_dependent_id"`
	VersionDependentVersionID    uuid.UUID `gorm:"column:version_dependent_version_id;type:uuid;not null" json:"version_dependent_version_id"`
	VersionDependentPersonID     uuid.UUID `gorm:"column:version_dependent_person_id;type:uuid;not null" json:"version_dependent_person_id"`
	VersionDependentRelationship string    `gorm:"column:version_dependent_relationship;type:varchar(50)" json:"relationship"`
	VersionDependentOccupation   string    `gorm:"column:version_dependent_occupation;type:varchar(100)" json:"occupation"`

	Person *PersonModel `gorm:"foreignKey:VersionDependentPersonID;references:PersonID" json:"person,omitempty"`
}

func (VersionDependentModel) TableName() string {
	return "version_dependents"
}

type VersionDisabilityMemberModel struct {
	VersionDisabilityMemberID        uuid.UUID  `gorm:"column:version_disability_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"version_disability_member_id"`
	VersionDisabilityMemberVersionID uuid.UUID  `gorm:"column:version_disability_member_version_id;type:uuid;not null" json:"version_disability_member_version_id"`
	VersionDisabilityMemberPersonID  uuid.UUID  `gorm:"column:version_disability_member_person_id;type:uuid;not null" json:"version_disability_member_person_id"`
	VersionDisabilityMemberTypeID    *uuid.UUID `gorm:"column:version_disability_member_type_id;type:uuid" json:"version_disability_member_type_id,omitempty"`
	VersionDisabilityMemberNotes     string     `gorm:"column:version_disability_member_notes;type:text" json:"notes"`

	Person         *PersonModel                    `gorm:"foreignKey:VersionDisabilityMemberPersonID;references:PersonID" json:"person,omitempty"`
	DisabilityType *lookupModel.DisabilityTypeModel `gorm:"foreignKey:VersionDisabilityMemberTypeID;references:DisabilityTypeID" json:"disability_type,omitempty"`
}

func (VersionDisabilityMemberModel) TableName() string {
	return "version_disability_members"
}

type EmergencyContactModel struct {
	EmergencyContactID           uuid.UUID `gorm:"column:emergency_contact_id;type:uuid;default:gen_random_uuid();primaryKey" json:"emergency_contact_id"`
	EmergencyContactVersionID    uuid.UUID `gorm:"column:emergency_contact_version_id;type:uuid;not null" json:"emergency_contact_version_id"`
	EmergencyContactName         string    `gorm:"column:emergency_contact_name;type:varchar(150);not null" json:"name"`
	EmergencyContactIC           *string   `gorm:"column:emergency_contact_ic;type:varchar(20)" json:"ic_no,omitempty"`
	EmergencyContactPhone        *string   `gorm:"column:emergency_contact_phone;type:varchar(30)" json:"phone,omitempty"`
	EmergencyContactRelationship string    `gorm:"column:emergency_contact_relationship;type:varchar(50)" json:"relationship"`
}

func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}
