package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Clasificador-api/internal/domain"
	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// CreateCategory persiste una categoría y asigna su ID.
func (r *CatalogRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	err := r.q.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, category.Name).
		Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetCategory obtiene una categoría por ID.
func (r *CatalogRepo) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListCategories lista categorías en orden de inserción.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CreateType persiste un tipo y asigna su ID.
func (r *CatalogRepo) CreateType(ctx context.Context, itemType *entity.ItemType) error {
	err := r.q.QueryRow(ctx, `INSERT INTO types (name) VALUES ($1) RETURNING id`, itemType.Name).
		Scan(&itemType.ID)
	if err != nil {
		return fmt.Errorf("insert type: %w", err)
	}
	return nil
}

// GetType obtiene un tipo por ID.
func (r *CatalogRepo) GetType(ctx context.Context, id int64) (*entity.ItemType, error) {
	var t entity.ItemType
	err := r.q.QueryRow(ctx, `SELECT id, name FROM types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get type: %w", err)
	}
	return &t, nil
}

// ListTypes lista tipos en orden de inserción.
func (r *CatalogRepo) ListTypes(ctx context.Context) ([]*entity.ItemType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ItemType, 0)
	for rows.Next() {
		var t entity.ItemType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CreateProduct persiste un producto. Una llave foránea rota se traduce a domain.ErrReferential.
func (r *CatalogRepo) CreateProduct(ctx context.Context, product *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (category_id, type_id, name, perishable)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		product.CategoryID, product.TypeID, product.Name, product.Perishable,
	).Scan(&product.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría %d o tipo %d", domain.ErrReferential, product.CategoryID, product.TypeID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

const productColumns = `id, category_id, type_id, name, perishable`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.CategoryID, &p.TypeID, &p.Name, &p.Perishable); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProduct obtiene un producto por ID.
func (r *CatalogRepo) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindProductByType devuelve el primer producto (menor ID) con ese tipo.
func (r *CatalogRepo) FindProductByType(ctx context.Context, typeID int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE type_id = $1 ORDER BY id LIMIT 1`, typeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by type: %w", err)
	}
	return p, nil
}

// ListProducts lista productos en orden de inserción.
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountProducts cuenta los productos registrados.
func (r *CatalogRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
