package catalog

import (
	"context"

	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un repositorio atado a esa tx.
// La conexión se adquiere y se libera (Commit o Rollback) dentro de cada llamada.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(repo repository.CatalogRepository) error) error
}
