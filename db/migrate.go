package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	// The postgres database driver for golang-migrate; it talks to the server through lib/pq.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/config"
)

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies (or rolls back) the SQL migrations found in cfg.MigrationsPath.
// Files follow golang-migrate's naming: {version}_{title}.up.sql / .down.sql.
// Down rolls back a single step.
func RunMigrations(cfg *config.PoolConfig, direction Direction, log logrus.FieldLogger) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, PostgresDSN(cfg))
	if err != nil {
		return apperror.NewMigrationError("failed to create migrator", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.WithError(srcErr).Warn("error closing migration source")
		}
		if dbErr != nil {
			log.WithError(dbErr).Warn("error closing migration database instance")
		}
	}()

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Steps(-1)
	default:
		return apperror.NewMigrationError("unknown migration direction "+string(direction), nil)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.WithField("direction", direction).Info("no migrations to apply")
		return nil
	}
	if err != nil {
		return apperror.NewMigrationError("failed to run migrations", err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return apperror.NewMigrationError("failed to read migration version", verr)
	}
	log.WithFields(logrus.Fields{"direction": direction, "version": version, "dirty": dirty}).Info("migrations applied")
	return nil
}
