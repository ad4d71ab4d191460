// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agridev/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// Migrate runs AutoMigrate for the full schema. Split out so tests can
// point it at their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Company{},
		&entities.Location{},
		&entities.Farmer{},
		&entities.Partner{},
		&entities.Child{},
		&entities.Land{},
		&entities.LandLocation{},
		&entities.Project{},
		&entities.TargetPractice{},
		&entities.Activity{},
		&entities.ProjectEnrollment{},
		&entities.TargetPracticeLand{},
		&entities.Attendance{},
	)
}
