// Package catalog implementa el almacén del catálogo (categorías, tipos y productos) y sus invariantes:
// nombres obligatorios donde corresponde, integridad referencial y orden de inserción.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Clasificador-api/internal/application/dto"
	"github.com/jhoicas/Clasificador-api/internal/domain"
	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo. Las escrituras van en transacción; las lecturas usan repo.
// No deduplica por nombre: dos altas con el mismo nombre crean dos registros.
type CatalogUseCase struct {
	repo repository.CatalogRepository
	tx   TxRunner
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository, tx TxRunner) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, tx: tx}
}

// normalizeName recorta espacios y normaliza a NFC para que el mismo texto se guarde igual.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// AddCategory crea una categoría. Nombre vacío -> domain.ErrValidation.
func (uc *CatalogUseCase) AddCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	category := &entity.Category{Name: name}
	err := uc.tx.RunCatalog(ctx, func(repo repository.CatalogRepository) error {
		return repo.CreateCategory(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// AddType crea un tipo. El nombre no se valida (se admite vacío).
func (uc *CatalogUseCase) AddType(ctx context.Context, in dto.CreateTypeRequest) (*dto.TypeResponse, error) {
	itemType := &entity.ItemType{Name: normalizeName(in.Name)}
	err := uc.tx.RunCatalog(ctx, func(repo repository.CatalogRepository) error {
		return repo.CreateType(ctx, itemType)
	})
	if err != nil {
		return nil, err
	}
	return toTypeResponse(itemType), nil
}

// AddProduct crea un producto. Nombre vacío -> ErrValidation; categoría o tipo inexistente -> ErrReferential.
func (uc *CatalogUseCase) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	product := &entity.Product{
		CategoryID: in.CategoryID,
		TypeID:     in.TypeID,
		Name:       name,
		Perishable: in.Perishable,
	}
	err := uc.tx.RunCatalog(ctx, func(repo repository.CatalogRepository) error {
		category, err := repo.GetCategory(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("%w: categoría %d no existe", domain.ErrReferential, in.CategoryID)
		}
		itemType, err := repo.GetType(ctx, in.TypeID)
		if err != nil {
			return err
		}
		if itemType == nil {
			return fmt.Errorf("%w: tipo %d no existe", domain.ErrReferential, in.TypeID)
		}
		return repo.CreateProduct(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// FindProductByType devuelve el primer producto (menor ID) del tipo, o nil si no hay.
func (uc *CatalogUseCase) FindProductByType(ctx context.Context, typeID int64) (*entity.Product, error) {
	return uc.repo.FindProductByType(ctx, typeID)
}

// GetCategory obtiene una categoría por ID; nil si no existe.
func (uc *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetCategory(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetType obtiene un tipo por ID; nil si no existe.
func (uc *CatalogUseCase) GetType(ctx context.Context, id int64) (*dto.TypeResponse, error) {
	t, err := uc.repo.GetType(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	return toTypeResponse(t), nil
}

// GetProduct obtiene un producto por ID; nil si no existe.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// CountProducts total de productos del catálogo.
func (uc *CatalogUseCase) CountProducts(ctx context.Context) (int, error) {
	return uc.repo.CountProducts(ctx)
}

// ListCategories lista categorías en orden de creación.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// ListTypes lista tipos en orden de creación.
func (uc *CatalogUseCase) ListTypes(ctx context.Context) (*dto.TypeListResponse, error) {
	list, err := uc.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTypeResponse(t))
	}
	return &dto.TypeListResponse{Items: items}, nil
}

// ListProducts lista productos en orden de creación.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}

func toTypeResponse(t *entity.ItemType) *dto.TypeResponse {
	return &dto.TypeResponse{ID: t.ID, Name: t.Name}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		TypeID:     p.TypeID,
		Name:       p.Name,
		Perishable: p.Perishable,
	}
}
