package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"stayelo/internal/domain"
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
		&domain.Room{},
		&domain.Booking{},
		&domain.ChatMessage{},
	); err != nil {
		return err
	}
	return ensureBookingConstraints(db)
}

// ensureBookingConstraints installs the write-time guard against two
// confirmed bookings overlapping on the same room. The application-level
// availability check is a fast fail; this constraint is the correctness
// boundary under concurrent requests. Postgres only; the SQLite path relies
// on the repository re-checking overlap inside its write transaction.
func ensureBookingConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'no_confirmed_overlap'
	) THEN
		ALTER TABLE bookings
		ADD CONSTRAINT no_confirmed_overlap
		EXCLUDE USING gist (
			room_id WITH =,
			daterange(check_in::date, check_out::date, '[]') WITH &&
		) WHERE (status = 'Confirmed');
	END IF;
END
$$;
`).Error
}
