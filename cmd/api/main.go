// @title        Clasificador API
// @version      1.0
// @description  Clasificación de productos escaneados: tipo, perecibilidad y ubicación en bodega.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/Clasificador-api/docs"
	"github.com/jhoicas/Clasificador-api/internal/application/catalog"
	"github.com/jhoicas/Clasificador-api/internal/application/classification"
	"github.com/jhoicas/Clasificador-api/internal/domain/barcode"
	infrabarcode "github.com/jhoicas/Clasificador-api/internal/infrastructure/barcode"
	infrapdf "github.com/jhoicas/Clasificador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Clasificador-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Clasificador-api/internal/interfaces/http"
	"github.com/jhoicas/Clasificador-api/pkg/config"
	"github.com/jhoicas/Clasificador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	extractor, err := barcode.NewExtractor(cfg.Barcode.SegmentMode, cfg.Barcode.SegmentIndex, cfg.Barcode.SegmentSeparator)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de código de barras")
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir catálogo")
	}
	defer st.Close()

	catalogUC := catalog.NewCatalogUseCase(st.Catalog, st.Tx)
	classifier := classification.NewService(st.Catalog, barcode.NewInterpreter(extractor), classification.Options{
		Decoder:          infrabarcode.NewZXingDecoder(),
		Scans:            st.Scans,
		StrictDimensions: cfg.Placement.StrictDimensions,
		Logger:           log,
	})
	labelUC := classification.NewLabelUseCase(classifier, infrapdf.NewMarotoLabelGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    10 << 20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Clasificador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:      catalogUC,
		Classification: classifier,
		Label:          labelUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
