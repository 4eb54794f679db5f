package scope

import "gorm.io/gorm"

// ForUser returns a GORM scope that filters rows to one user. Every ledger,
// reporting and settings query goes through it.
func ForUser(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
