package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clasificador-api/internal/application/catalog"
	"github.com/jhoicas/Clasificador-api/internal/application/dto"
	"github.com/jhoicas/Clasificador-api/internal/domain"
	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks en memoria
// ──────────────────────────────────────────────────────────────────────────────

type mockCatalogRepo struct {
	categories []*entity.Category
	types      []*entity.ItemType
	products   []*entity.Product
	failWith   error
}

func (m *mockCatalogRepo) CreateCategory(_ context.Context, c *entity.Category) error {
	if m.failWith != nil {
		return m.failWith
	}
	c.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, c)
	return nil
}

func (m *mockCatalogRepo) GetCategory(_ context.Context, id int64) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) ListCategories(context.Context) ([]*entity.Category, error) {
	return m.categories, nil
}

func (m *mockCatalogRepo) CreateType(_ context.Context, t *entity.ItemType) error {
	t.ID = int64(len(m.types) + 1)
	m.types = append(m.types, t)
	return nil
}

func (m *mockCatalogRepo) GetType(_ context.Context, id int64) (*entity.ItemType, error) {
	for _, t := range m.types {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) ListTypes(context.Context) ([]*entity.ItemType, error) {
	return m.types, nil
}

func (m *mockCatalogRepo) CreateProduct(_ context.Context, p *entity.Product) error {
	p.ID = int64(len(m.products) + 1)
	m.products = append(m.products, p)
	return nil
}

func (m *mockCatalogRepo) GetProduct(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) ListProducts(context.Context) ([]*entity.Product, error) {
	return m.products, nil
}

func (m *mockCatalogRepo) FindProductByType(_ context.Context, typeID int64) (*entity.Product, error) {
	for _, p := range m.products {
		if p.TypeID == typeID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) CountProducts(context.Context) (int, error) {
	return len(m.products), nil
}

type mockTxRunner struct {
	repo  *mockCatalogRepo
	calls int
}

func (r *mockTxRunner) RunCatalog(_ context.Context, fn func(repo repository.CatalogRepository) error) error {
	r.calls++
	return fn(r.repo)
}

func setup(t *testing.T) (*catalog.CatalogUseCase, *mockCatalogRepo, *mockTxRunner) {
	t.Helper()
	repo := &mockCatalogRepo{}
	tx := &mockTxRunner{repo: repo}
	return catalog.NewCatalogUseCase(repo, tx), repo, tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAddCategory(t *testing.T) {
	uc, repo, tx := setup(t)
	ctx := context.Background()

	out, err := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "  Lácteos "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Lácteos", out.Name, "se recortan espacios")
	assert.Len(t, repo.categories, 1)
	assert.Equal(t, 1, tx.calls, "la escritura va en transacción")
}

func TestAddCategory_NombreVacio(t *testing.T) {
	uc, repo, tx := setup(t)

	for _, name := range []string{"", "   "} {
		_, err := uc.AddCategory(context.Background(), dto.CreateCategoryRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Empty(t, repo.categories)
	assert.Zero(t, tx.calls, "no se abre transacción si la validación falla")
}

func TestAddCategory_NoDeduplica(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	a, err := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "Produce"})
	require.NoError(t, err)
	b, err := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "Produce"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Name, b.Name)
}

func TestAddCategory_ErrorDeRepositorio(t *testing.T) {
	uc, repo, _ := setup(t)
	repo.failWith = errors.New("disco lleno")

	_, err := uc.AddCategory(context.Background(), dto.CreateCategoryRequest{Name: "X"})
	assert.EqualError(t, err, "disco lleno")
}

func TestAddCategory_NormalizaNFC(t *testing.T) {
	uc, _, _ := setup(t)
	// "é" descompuesta (e + acento combinado) se guarda compuesta.
	out, err := uc.AddCategory(context.Background(), dto.CreateCategoryRequest{Name: "Cafe\u0301"})
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", out.Name)
}

func TestAddType_SinValidacionDeNombre(t *testing.T) {
	uc, repo, _ := setup(t)

	out, err := uc.AddType(context.Background(), dto.CreateTypeRequest{Name: ""})
	require.NoError(t, err, "el nombre de tipo vacío se admite")
	assert.Equal(t, int64(1), out.ID)
	assert.Len(t, repo.types, 1)
}

func TestAddProduct(t *testing.T) {
	uc, repo, _ := setup(t)
	ctx := context.Background()
	cat, _ := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "Alimentos"})
	typ, _ := uc.AddType(ctx, dto.CreateTypeRequest{Name: "Leche"})

	out, err := uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: cat.ID, TypeID: typ.ID, Name: "Leche entera"})
	require.NoError(t, err)
	assert.False(t, out.Perishable, "perishable por defecto es false")
	assert.Len(t, repo.products, 1)

	out, err = uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: cat.ID, TypeID: typ.ID, Name: "Yogur", Perishable: true})
	require.NoError(t, err)
	assert.True(t, out.Perishable)
}

func TestAddProduct_ReferenciasInexistentes(t *testing.T) {
	uc, repo, _ := setup(t)
	ctx := context.Background()
	cat, _ := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "Alimentos"})
	typ, _ := uc.AddType(ctx, dto.CreateTypeRequest{Name: "Leche"})

	t.Run("categoría inexistente", func(t *testing.T) {
		_, err := uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: 99, TypeID: typ.ID, Name: "X"})
		assert.ErrorIs(t, err, domain.ErrReferential)
	})
	t.Run("tipo inexistente", func(t *testing.T) {
		_, err := uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: cat.ID, TypeID: 99, Name: "X"})
		assert.ErrorIs(t, err, domain.ErrReferential)
	})
	assert.Empty(t, repo.products, "no quedan productos huérfanos")
}

func TestAddProduct_NombreVacio(t *testing.T) {
	uc, repo, _ := setup(t)
	ctx := context.Background()
	cat, _ := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "Alimentos"})
	typ, _ := uc.AddType(ctx, dto.CreateTypeRequest{Name: "Leche"})

	_, err := uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: cat.ID, TypeID: typ.ID, Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.products)
}

func TestListados_OrdenDeInsercion(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()
	for _, n := range []string{"A", "B", "C"} {
		_, err := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: n})
		require.NoError(t, err)
		_, err = uc.AddType(ctx, dto.CreateTypeRequest{Name: "t" + n})
		require.NoError(t, err)
	}

	cats, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats.Items, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{cats.Items[0].Name, cats.Items[1].Name, cats.Items[2].Name})

	types, err := uc.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types.Items, 3)
	assert.Equal(t, int64(3), types.Items[2].ID)
}

func TestGetters_Inexistente(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	c, err := uc.GetCategory(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, c)
	p, err := uc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)
	tp, err := uc.GetType(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestCountProducts_NoCuentaRechazados(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()
	cat, _ := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: "Alimentos"})
	typ, _ := uc.AddType(ctx, dto.CreateTypeRequest{Name: "Leche"})

	_, err := uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: cat.ID, TypeID: typ.ID, Name: "Entera"})
	require.NoError(t, err)
	_, err = uc.AddProduct(ctx, dto.CreateProductRequest{CategoryID: cat.ID + 9, TypeID: typ.ID, Name: "Huérfano"})
	require.Error(t, err)

	n, err := uc.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
