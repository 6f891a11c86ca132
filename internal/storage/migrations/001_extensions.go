package migrations

import "gorm.io/gorm"

// migration001Up creates the extensions required by uuid primary keys
func migration001Up(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

// migration001Down is a no-op: the UUID extension might be used by other
// applications sharing the database
func migration001Down(db *gorm.DB) error {
	return nil
}
