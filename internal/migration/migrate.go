package migration

import (
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all application tables.
// Creates missing tables and columns, never drops anything.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.VerificationToken{},
		&domain.Listing{},
		&domain.Request{},
		&domain.Message{},
		&domain.Notification{},
	)
}
