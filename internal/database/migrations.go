package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations executes all database migrations
func RunMigrations(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Create indexes for better performance
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Index for public case searches
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_search
		ON cases(is_public, case_type, status)
	`).Error; err != nil {
		return err
	}

	// Search results are ordered by filing date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_filing_date
		ON cases(filing_date)
	`).Error; err != nil {
		return err
	}

	// Index for hearing listings by date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_hearings_date
		ON hearings(hearing_date)
	`).Error; err != nil {
		return err
	}

	// Index for the form catalog
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_forms_category
		ON forms(is_active, category)
	`).Error; err != nil {
		return err
	}

	return nil
}
