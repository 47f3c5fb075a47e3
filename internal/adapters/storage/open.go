// Package storage opens the recipe store named by the configuration.
package storage

import (
	"context"
	"errors"
	"fmt"

	"ricettario/internal/adapters/blobfile"
	"ricettario/internal/adapters/memory"
	"ricettario/internal/adapters/ormstore"
	"ricettario/internal/adapters/sqlstore"
	"ricettario/internal/config"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
	"ricettario/internal/ports"
)

// Open returns the configured repository. A corrupt blob file is logged and
// replaced by an empty collection that overwrites it on the next change.
func Open(ctx context.Context, cfg *config.Config, classifier domain.Classifier) (ports.RecipeRepository, error) {
	log := logging.With().Str("backend", cfg.Store.Backend).Logger()

	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Debug().Msg("using in-memory store")
		return memory.New(classifier), nil

	case config.BackendFile:
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		s, err := blobfile.Open(path, classifier)
		if errors.Is(err, blobfile.ErrCorrupt) {
			log.Warn().Err(err).Str("path", path).Msg("starting with an empty recipe collection")
			return blobfile.NewEmpty(path, classifier), nil
		}
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("opened recipe file")
		return s, nil

	case config.BackendSQLite:
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("opening sqlite store")
		return openSQL(ctx, sqlstore.DialectSQLite, path, classifier)

	case config.BackendMySQL:
		log.Debug().Msg("opening mysql store")
		return openSQL(ctx, sqlstore.DialectMySQL, cfg.Store.DSN, classifier)

	case config.BackendGorm:
		dsn := cfg.Store.DSN
		if cfg.Store.Driver != config.BackendMySQL {
			path, err := cfg.StorePath()
			if err != nil {
				return nil, err
			}
			dsn = path
		}
		log.Debug().Str("driver", cfg.Store.Driver).Msg("opening gorm store")
		s, err := ormstore.Open(ctx, cfg.Store.Driver, dsn, classifier)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func openSQL(ctx context.Context, dialect sqlstore.Dialect, dsn string, classifier domain.Classifier) (ports.RecipeRepository, error) {
	s, err := sqlstore.Open(ctx, dialect, dsn, classifier)
	if err != nil {
		return nil, err
	}
	return s, nil
}
