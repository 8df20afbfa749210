package repository

import (
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/database"
)

// conn resolves the handle a repository should use. Repositories built
// before the database came up hold a nil handle; falling back to the
// global connection lets the startup retry loop heal them without a
// restart.
func conn(db *gorm.DB) *gorm.DB {
	if db != nil {
		return db
	}
	return database.GetDB()
}
