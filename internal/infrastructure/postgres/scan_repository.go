package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
)

var _ repository.ScanRepository = (*ScanRepo)(nil)

// ScanRepo historial de clasificaciones sobre PostgreSQL. Las dimensiones usan NUMERIC (codec decimal del pool).
type ScanRepo struct {
	q Querier
}

// NewScanRepository construye el adaptador.
func NewScanRepository(q Querier) *ScanRepo {
	return &ScanRepo{q: q}
}

// Create persiste una clasificación.
func (r *ScanRepo) Create(ctx context.Context, scan *entity.Scan) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO scans (id, payload, type_name, perishable, placement, length, width, height, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		scan.ID, scan.Payload, scan.TypeName, scan.Perishable, scan.Placement,
		scan.Length, scan.Width, scan.Height, scan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// List lista clasificaciones, más recientes primero.
func (r *ScanRepo) List(ctx context.Context, limit, offset int) ([]*entity.Scan, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id::text, payload, type_name, perishable, placement, length, width, height, created_at
		FROM scans ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Scan, 0)
	for rows.Next() {
		var s entity.Scan
		if err := rows.Scan(&s.ID, &s.Payload, &s.TypeName, &s.Perishable, &s.Placement,
			&s.Length, &s.Width, &s.Height, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan scan: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
