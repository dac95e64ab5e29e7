package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: Member and Group must be migrated before the tables that reference them
func AllModels() []interface{} {
	return []interface{}{
		&Member{},
		&Group{},
		&Membership{},
		&Tag{},
		&Resource{},
		&Question{},
		&Answer{},
		&Reaction{},
		&Assignment{},
		&Announcement{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
