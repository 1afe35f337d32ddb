package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"bagpresto/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version and returns the
// version found before and after. A dirty schema is refused: it needs a
// manual force with the migrate CLI.
func Migrate(addr string) (from, to uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, 0, fmt.Errorf("open migration source: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return from, from, fmt.Errorf("schema version %d is dirty", from)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, from, fmt.Errorf("migrate to %d: %w", migrations.Version, err)
	}
	return from, migrations.Version, nil
}
