package database

import (
	"log"

	"gorm.io/gorm"
)

// Migrate menjalankan DDL berurutan. Skema diurus eksplisit di sini,
// bukan lewat AutoMigrate, supaya constraint & index unik terkawal.
func Migrate(db *gorm.DB) {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		// ===== tenancy =====
		`CREATE TABLE IF NOT EXISTS tenants (
			tenant_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			tenant_slug VARCHAR(63) NOT NULL,
			tenant_name VARCHAR(150) NOT NULL,
			tenant_logo_url TEXT,
			tenant_theme JSONB,
			tenant_status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
			tenant_created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			tenant_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tenants_slug ON tenants (LOWER(tenant_slug))`,

		`CREATE TABLE IF NOT EXISTS masjids (
			masjid_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			masjid_tenant_id UUID NOT NULL REFERENCES tenants(tenant_id),
			masjid_name VARCHAR(150) NOT NULL,
			masjid_address TEXT,
			masjid_phone VARCHAR(30),
			masjid_created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			masjid_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_masjids_tenant ON masjids (masjid_tenant_id)`,

		// ===== principals =====
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_masjid_id UUID NOT NULL REFERENCES masjids(masjid_id),
			user_email VARCHAR(150) NOT NULL,
			user_password TEXT NOT NULL,
			user_full_name VARCHAR(150),
			user_role VARCHAR(20) NOT NULL DEFAULT 'PENGURUSAN',
			user_is_active BOOLEAN NOT NULL DEFAULT TRUE,
			user_created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			user_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (LOWER(user_email))`,
		`CREATE INDEX IF NOT EXISTS idx_users_masjid ON users (user_masjid_id)`,

		`CREATE TABLE IF NOT EXISTS master_admins (
			master_admin_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			master_admin_email VARCHAR(150) NOT NULL,
			master_admin_password TEXT NOT NULL,
			master_admin_full_name VARCHAR(150),
			master_admin_role VARCHAR(20) NOT NULL DEFAULT 'SUPPORT',
			master_admin_is_active BOOLEAN NOT NULL DEFAULT TRUE,
			master_admin_created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			master_admin_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_master_admins_email ON master_admins (LOWER(master_admin_email))`,

		// ===== lookup & kawasan =====
		`CREATE TABLE IF NOT EXISTS disability_types (
			disability_type_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			disability_type_name VARCHAR(100) NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_disability_types_name ON disability_types (disability_type_name)`,

		`CREATE TABLE IF NOT EXISTS kampungs (
			kampung_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			kampung_masjid_id UUID NOT NULL REFERENCES masjids(masjid_id),
			kampung_name VARCHAR(150) NOT NULL,
			kampung_is_active BOOLEAN NOT NULL DEFAULT TRUE,
			kampung_created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			kampung_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_kampungs_masjid_name ON kampungs (kampung_masjid_id, LOWER(kampung_name))`,

		// ===== bancian isi rumah =====
		`CREATE TABLE IF NOT EXISTS households (
			household_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			household_masjid_id UUID NOT NULL REFERENCES masjids(masjid_id),
			household_current_version_id UUID,
			household_created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			household_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_households_masjid ON households (household_masjid_id)`,

		`CREATE TABLE IF NOT EXISTS household_versions (
			household_version_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			household_version_household_id UUID NOT NULL REFERENCES households(household_id),
			household_version_number INT NOT NULL,
			household_version_created_by UUID REFERENCES users(user_id),
			household_version_applicant_name VARCHAR(150) NOT NULL,
			household_version_applicant_ic VARCHAR(20),
			household_version_applicant_phone VARCHAR(30),
			household_version_applicant_gender VARCHAR(10),
			household_version_address TEXT,
			household_version_postcode VARCHAR(10),
			household_version_district VARCHAR(100),
			household_version_state VARCHAR(100),
			household_version_kampung VARCHAR(150),
			household_version_net_income NUMERIC(12,2),
			household_version_housing_status VARCHAR(10),
			household_version_assistance_received BOOLEAN NOT NULL DEFAULT FALSE,
			household_version_assistance_provider TEXT,
			household_version_disability_in_family BOOLEAN NOT NULL DEFAULT FALSE,
			household_version_disability_notes TEXT,
			household_version_created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// nombor versi per household mesti unik — penjaga perlumbaan read-then-write
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_household_versions_number
			ON household_versions (household_version_household_id, household_version_number)`,
		`CREATE INDEX IF NOT EXISTS idx_household_versions_household
			ON household_versions (household_version_household_id)`,

		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_households_current_version') THEN
				ALTER TABLE households
					ADD CONSTRAINT fk_households_current_version
					FOREIGN KEY (household_current_version_id)
					REFERENCES household_versions(household_version_id);
			END IF;
		END $$`,

		`CREATE TABLE IF NOT EXISTS persons (
			person_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			person_name VARCHAR(150) NOT NULL,
			person_ic VARCHAR(20),
			person_phone VARCHAR(30),
			person_gender VARCHAR(10),
			person_created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS version_dependents (
			version_dependent_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			version_dependent_version_id UUID NOT NULL REFERENCES household_versions(household_version_id),
			version_dependent_person_id UUID NOT NULL REFERENCES persons(person_id),
			version_dependent_relationship VARCHAR(50),
			version_dependent_occupation VARCHAR(100)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_version_dependents_version
			ON version_dependents (version_dependent_version_id)`,

		`CREATE TABLE IF NOT EXISTS version_disability_members (
			version_disability_member_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			version_disability_member_version_id UUID NOT NULL REFERENCES household_versions(household_version_id),
			version_disability_member_person_id UUID NOT NULL REFERENCES persons(person_id),
			version_disability_member_type_id UUID REFERENCES disability_types(disability_type_id),
			version_disability_member_notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_version_disability_members_version
			ON version_disability_members (version_disability_member_version_id)`,

		`CREATE TABLE IF NOT EXISTS emergency_contacts (
			emergency_contact_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			emergency_contact_version_id UUID NOT NULL REFERENCES household_versions(household_version_id),
			emergency_contact_name VARCHAR(150) NOT NULL,
			emergency_contact_ic VARCHAR(20),
			emergency_contact_phone VARCHAR(30),
			emergency_contact_relationship VARCHAR(50)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_emergency_contacts_version
			ON emergency_contacts (emergency_contact_version_id)`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			log.Fatalf("❌ Gagal migrate: %v", err)
		}
	}

	seedDisabilityTypes(db)
	log.Println("✅ Skema DB sedia.")
}

func seedDisabilityTypes(db *gorm.DB) {
	names := []string{
		"Fizikal", "Penglihatan", "Pendengaran", "Pertuturan",
		"Pembelajaran", "Mental", "Lain-lain",
	}
	for _, n := range names {
		if err := db.Exec(
			`INSERT INTO disability_types (disability_type_name) VALUES (?) ON CONFLICT DO NOTHING`, n,
		).Error; err != nil {
			log.Printf("seed disability_types: %v", err)
		}
	}
}
