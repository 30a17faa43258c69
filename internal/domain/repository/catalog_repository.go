package repository

import (
	"context"

	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia del catálogo (categorías, tipos y productos).
// Los Get* y FindProductByType devuelven (nil, nil) cuando no existe el registro.
// Los listados se ordenan por ID ascendente (orden de inserción).
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	CreateType(ctx context.Context, itemType *entity.ItemType) error
	GetType(ctx context.Context, id int64) (*entity.ItemType, error)
	ListTypes(ctx context.Context) ([]*entity.ItemType, error)

	// CreateProduct devuelve domain.ErrReferential si la categoría o el tipo no existen.
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	// FindProductByType devuelve el producto de menor ID con ese tipo.
	FindProductByType(ctx context.Context, typeID int64) (*entity.Product, error)
	CountProducts(ctx context.Context) (int, error)
}
