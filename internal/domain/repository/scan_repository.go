package repository

import (
	"context"

	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
)

// ScanRepository define el puerto de persistencia del historial de clasificaciones.
type ScanRepository interface {
	Create(ctx context.Context, scan *entity.Scan) error
	List(ctx context.Context, limit, offset int) ([]*entity.Scan, error)
}
