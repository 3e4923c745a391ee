package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/boletas-api/internal/application/manifiesto"
	"github.com/jhoicas/boletas-api/internal/application/saldo"
	"github.com/jhoicas/boletas-api/internal/application/traslado"
	"github.com/jhoicas/boletas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/boletas-api/internal/interfaces/http"
	"github.com/jhoicas/boletas-api/pkg/config"
	"github.com/jhoicas/boletas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	saldoRepo := postgres.NewSaldoRepository(pool)
	manifRepo := postgres.NewManifiestoRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)

	trasladoUC := traslado.NewUseCase(txRunner, log)
	manifiestoUC := manifiesto.NewUseCase(txRunner, manifRepo)
	saldoUC := saldo.NewUseCase(saldoRepo, movRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		TrasladoUC:   trasladoUC,
		ManifiestoUC: manifiestoUC,
		SaldoUC:      saldoUC,
		JWTSecret:    cfg.JWT.Secret,
		Metrics:      cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP iniciado")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("apagado completo")
}
