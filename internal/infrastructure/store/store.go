// Package store abre el backend de persistencia configurado (SQLite o PostgreSQL).
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Clasificador-api/internal/application/catalog"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
	"github.com/jhoicas/Clasificador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Clasificador-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Clasificador-api/pkg/config"
)

// Store repositorios del backend elegido, con el esquema ya aplicado.
type Store struct {
	Catalog repository.CatalogRepository
	Scans   repository.ScanRepository
	Tx      catalog.TxRunner
	close   func()
}

// Close libera la conexión o el pool.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open abre el backend según cfg.Driver y aplica migraciones.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Catalog: postgres.NewCatalogRepository(pool),
			Scans:   postgres.NewScanRepository(pool),
			Tx:      postgres.NewTxRunner(pool),
			close:   pool.Close,
		}, nil
	case config.DriverSQLite, "":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Catalog: sqlite.NewCatalogRepository(db),
			Scans:   sqlite.NewScanRepository(db),
			Tx:      sqlite.NewTxRunner(db),
			close:   func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("store: driver desconocido %q", cfg.Driver)
	}
}
