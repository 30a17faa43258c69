// seed_catalog carga categorías, tipos y productos desde un XML de catálogo.
// Acepta exportaciones heredadas en windows-1251, windows-1252 o ISO-8859-1.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.xml]
// Por defecto busca catalogo.xml en el directorio actual. El backend se toma de DB_DRIVER.
//
// Formato:
//
//	<catalogo>
//	  <tipo clave="leche" nombre="Lácteos"/>
//	  <categoria nombre="Alimentos">
//	    <producto tipo="leche" nombre="Leche entera" perecedero="true"/>
//	  </categoria>
//	</catalogo>
package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Clasificador-api/internal/application/catalog"
	"github.com/jhoicas/Clasificador-api/internal/application/dto"
	"github.com/jhoicas/Clasificador-api/internal/infrastructure/store"
	"github.com/jhoicas/Clasificador-api/pkg/config"
)

type catalogoXML struct {
	Tipos      []tipoXML      `xml:"tipo"`
	Categorias []categoriaXML `xml:"categoria"`
}

type tipoXML struct {
	Clave  string `xml:"clave,attr"`
	Nombre string `xml:"nombre,attr"`
}

type categoriaXML struct {
	Nombre    string        `xml:"nombre,attr"`
	Productos []productoXML `xml:"producto"`
}

type productoXML struct {
	Tipo       string `xml:"tipo,attr"`
	Nombre     string `xml:"nombre,attr"`
	Perecedero bool   `xml:"perecedero,attr"`
}

// legacyCharsets codificaciones de un byte aceptadas en la declaración XML.
var legacyCharsets = map[string]encoding.Encoding{
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso8859-1":    charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
}

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cat, err := parseCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir catálogo: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	n, err := load(ctx, catalog.NewCatalogUseCase(st.Catalog, st.Tx), cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar catálogo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cargado %s: %d tipos, %d categorías, %d productos (%d en el catálogo)\n",
		xmlPath, n.types, n.categories, n.products, n.total)
}

func parseCatalog(r io.Reader) (*catalogoXML, error) {
	var c catalogoXML
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if enc, ok := legacyCharsets[strings.ToLower(charset)]; ok {
			return transform.NewReader(input, enc.NewDecoder()), nil
		}
		if strings.EqualFold(charset, "utf-8") {
			return input, nil
		}
		return nil, fmt.Errorf("codificación no soportada: %s", charset)
	}
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

type counts struct {
	types, categories, products int
	total                       int // productos en el catálogo tras la carga
}

// load crea primero los tipos y luego cada categoría con sus productos.
func load(ctx context.Context, uc *catalog.CatalogUseCase, c *catalogoXML) (counts, error) {
	var n counts
	typeIDs := make(map[string]int64, len(c.Tipos))
	for _, t := range c.Tipos {
		out, err := uc.AddType(ctx, dto.CreateTypeRequest{Name: t.Nombre})
		if err != nil {
			return n, fmt.Errorf("tipo %q: %w", t.Clave, err)
		}
		typeIDs[strings.TrimSpace(t.Clave)] = out.ID
		n.types++
	}
	for _, cat := range c.Categorias {
		out, err := uc.AddCategory(ctx, dto.CreateCategoryRequest{Name: cat.Nombre})
		if err != nil {
			return n, fmt.Errorf("categoría %q: %w", cat.Nombre, err)
		}
		n.categories++
		for _, p := range cat.Productos {
			typeID, ok := typeIDs[strings.TrimSpace(p.Tipo)]
			if !ok {
				return n, fmt.Errorf("producto %q: tipo %q no declarado", p.Nombre, p.Tipo)
			}
			if _, err := uc.AddProduct(ctx, dto.CreateProductRequest{
				CategoryID: out.ID,
				TypeID:     typeID,
				Name:       p.Nombre,
				Perishable: p.Perecedero,
			}); err != nil {
				return n, fmt.Errorf("producto %q: %w", p.Nombre, err)
			}
			n.products++
		}
	}
	total, err := uc.CountProducts(ctx)
	if err != nil {
		return n, fmt.Errorf("contar productos: %w", err)
	}
	n.total = total
	return n, nil
}
