package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
)

var _ repository.ScanRepository = (*ScanRepo)(nil)

// timeLayout ancho fijo en UTC para que el orden lexicográfico coincida con el cronológico.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ScanRepo historial de clasificaciones sobre SQLite.
type ScanRepo struct {
	q Querier
}

// NewScanRepository construye el adaptador.
func NewScanRepository(q Querier) *ScanRepo {
	return &ScanRepo{q: q}
}

// Create persiste una clasificación. Las dimensiones se guardan como texto decimal exacto.
func (r *ScanRepo) Create(ctx context.Context, scan *entity.Scan) error {
	var payload sql.NullString
	if scan.Payload != nil {
		payload = sql.NullString{String: *scan.Payload, Valid: true}
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO scans (id, payload, type_name, perishable, placement, length, width, height, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scan.ID, payload, scan.TypeName, scan.Perishable, scan.Placement,
		scan.Length.String(), scan.Width.String(), scan.Height.String(),
		scan.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// List lista clasificaciones, más recientes primero.
func (r *ScanRepo) List(ctx context.Context, limit, offset int) ([]*entity.Scan, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, payload, type_name, perishable, placement, length, width, height, created_at
		FROM scans ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Scan, 0)
	for rows.Next() {
		var s entity.Scan
		var payload sql.NullString
		var createdAt string
		if err := rows.Scan(&s.ID, &payload, &s.TypeName, &s.Perishable, &s.Placement,
			&s.Length, &s.Width, &s.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("scan scan: %w", err)
		}
		if payload.Valid {
			s.Payload = &payload.String
		}
		if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse scan created_at: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
