package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"petstay/config"
	"petstay/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

func dsn(cfg *config.Config) string {
	return postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix) +
		"&x-migrations-table=" + url.QueryEscape(cfg.DB.Postgres.MigrationTable)
}

// Run applies one migration action against the write database. ErrNoChange is success.
func Run(cfg *config.Config, action Action) error {
	mig, err := migrate.New(migrationSource, dsn(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}
