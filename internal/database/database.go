package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"homelet/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.House{},
		&domain.HouseImage{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Review{},
		&domain.Favorite{},
		&domain.Report{},
		&domain.VerificationCode{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return migratePostgres(db)
	}
	return nil
}

// migratePostgres adds the DDL AutoMigrate cannot express. The bookings
// exclusion constraint rejects any two rows for the same house whose
// inclusive date ranges overlap, so a racing insert fails with 23P01 even
// if it slipped past the in-transaction availability check.
func migratePostgres(db *gorm.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (house_id WITH =, daterange(start_date::date, end_date::date, '[]') WITH &&)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
