package http_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clasificador-api/internal/application/catalog"
	"github.com/jhoicas/Clasificador-api/internal/application/classification"
	"github.com/jhoicas/Clasificador-api/internal/application/dto"
	"github.com/jhoicas/Clasificador-api/internal/domain/barcode"
	"github.com/jhoicas/Clasificador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Clasificador-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/Clasificador-api/internal/interfaces/http"
	"github.com/jhoicas/Clasificador-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeDecoder devuelve siempre el mismo resultado.
type fakeDecoder struct {
	payload string
	ok      bool
}

func (d fakeDecoder) Decode(context.Context, []byte) (string, bool, error) {
	return d.payload, d.ok, nil
}

// buildTestApp arma la API completa sobre SQLite en memoria.
func buildTestApp(t *testing.T, decoder classification.ImageDecoder) (*fiber.App, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewCatalogRepository(db)
	catalogUC := catalog.NewCatalogUseCase(repo, sqlite.NewTxRunner(db))
	svc := classification.NewService(repo, barcode.NewInterpreter(nil), classification.Options{
		Decoder: decoder,
		Scans:   sqlite.NewScanRepository(db),
	})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:      catalogUC,
		Classification: svc,
		Label:          classification.NewLabelUseCase(svc, pdf.NewMarotoLabelGenerator("test")),
	})
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedCatalog crea Alimentos / tipo 1 ("Leche" perecedera) y devuelve el ID del tipo.
func seedCatalog(t *testing.T, app *fiber.App) int64 {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]any{"name": "Alimentos"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	cat := decode[dto.CategoryResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/types", map[string]any{"name": "Lácteos"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	typ := decode[dto.TypeResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"category_id": cat.ID, "type_id": typ.ID, "name": "Leche", "perishable": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return typ.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogo_CategoriaSinNombre(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]any{"name": "  "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	list := decode[dto.CategoryListResponse](t, doJSON(t, app, http.MethodGet, "/api/categories", nil))
	assert.Empty(t, list.Items)
}

func TestCatalogo_ProductoConReferenciaInexistente(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"category_id": 99, "type_id": 1, "name": "Huérfano",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "REFERENTIAL", decode[dto.ErrorResponse](t, resp).Code)

	list := decode[dto.ProductListResponse](t, doJSON(t, app, http.MethodGet, "/api/products", nil))
	assert.Len(t, list.Items, 1)
}

func TestCatalogo_GetPorID(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/products/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Leche", p.Name)
	assert.True(t, p.Perishable)

	assert.Equal(t, fiber.StatusNotFound, doJSON(t, app, http.MethodGet, "/api/types/42", nil).StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, doJSON(t, app, http.MethodGet, "/api/categories/abc", nil).StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación
// ──────────────────────────────────────────────────────────────────────────────

func TestClasificar_ProductoConocido(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/classifications", map[string]any{
		"payload": "X1-0001", "length": 40, "width": 40, "height": 40,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.ClassificationResponse](t, resp)
	assert.Equal(t, "Leche", out.TypeName)
	assert.True(t, out.Perishable)
	assert.Equal(t, "shelf", out.Placement)
	assert.True(t, out.Matched)
}

func TestClasificar_SinPayload(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	out := decode[dto.ClassificationResponse](t, doJSON(t, app, http.MethodPost, "/api/classifications", map[string]any{
		"payload": nil, "length": 500, "width": 500, "height": 500,
	}))
	assert.Equal(t, classification.TypeNameUnrecognized, out.TypeName)
	assert.Empty(t, out.Placement)
	assert.False(t, out.Perishable)
}

func TestClasificar_TipoIndeterminado(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	out := decode[dto.ClassificationResponse](t, doJSON(t, app, http.MethodPost, "/api/classifications", map[string]any{
		"payload": "X9", "length": "60", "width": "10", "height": "10",
	}))
	assert.Equal(t, classification.TypeNameUndetermined, out.TypeName)
	assert.Equal(t, "pallet", out.Placement)
}

func TestClasificar_DimensionesFaltantes(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	bodies := []map[string]any{
		{"payload": "X1"},
		{"payload": "X1", "length": 200},
		{"payload": "X1", "length": 10, "width": 10},
		{"length": 10, "width": 10},
	}
	for _, body := range bodies {
		resp := doJSON(t, app, http.MethodPost, "/api/classifications", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body %v", body)
		assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/classifications/label", map[string]any{"payload": "X1", "width": 1, "height": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	scans := decode[dto.ScanListResponse](t, doJSON(t, app, http.MethodGet, "/api/scans", nil))
	assert.Empty(t, scans.Items, "nada se clasifica ni se registra")
}

func TestScan_Multipart(t *testing.T) {
	app, _ := buildTestApp(t, fakeDecoder{payload: "X1", ok: true})
	seedCatalog(t, app)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("barcode", "codigo.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("imagen"))
	require.NoError(t, w.WriteField("length", "101"))
	require.NoError(t, w.WriteField("width", "1"))
	require.NoError(t, w.WriteField("height", "1"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/classifications/scan", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.ClassificationResponse](t, resp)
	assert.Equal(t, "Leche", out.TypeName)
	assert.Equal(t, "floor", out.Placement)
}

func TestScan_DimensionInvalida(t *testing.T) {
	app, _ := buildTestApp(t, fakeDecoder{})

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("length", "abc"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/classifications/scan", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLabel_PDF(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/classifications/label", map[string]any{
		"payload": "X1", "length": 10, "width": 10, "height": 10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "etiqueta-")
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestScans_Historial(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	seedCatalog(t, app)

	doJSON(t, app, http.MethodPost, "/api/classifications", map[string]any{"payload": "X1", "length": 1, "width": 1, "height": 1})
	doJSON(t, app, http.MethodPost, "/api/classifications", map[string]any{"length": 1, "width": 1, "height": 1})

	out := decode[dto.ScanListResponse](t, doJSON(t, app, http.MethodGet, "/api/scans?limit=500", nil))
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 100, out.Page.Limit, "límite acotado")
}
