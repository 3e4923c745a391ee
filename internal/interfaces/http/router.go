package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/boletas-api/internal/application/manifiesto"
	"github.com/jhoicas/boletas-api/internal/application/saldo"
	"github.com/jhoicas/boletas-api/internal/application/traslado"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TrasladoUC   *traslado.UseCase
	ManifiestoUC *manifiesto.UseCase
	SaldoUC      *saldo.UseCase
	JWTSecret    string
	Metrics      bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	if deps.Metrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Todas las rutas de negocio requieren Bearer Token: el usuario del
	// token es el actor de auditoría.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	boletas := api.Group("/boletas")
	trasladoHandler := NewTrasladoHandler(deps.TrasladoUC)
	saldoHandler := NewSaldoHandler(deps.SaldoUC)
	boletas.Post("/traslados", trasladoHandler.Trasladar)
	boletas.Get("/saldos", saldoHandler.Listar)
	boletas.Get("/movimientos", saldoHandler.Movimientos)

	manifiestos := api.Group("/manifiestos")
	manifiestoHandler := NewManifiestoHandler(deps.ManifiestoUC)
	manifiestos.Post("/reversas", trasladoHandler.Reversar)
	// Renumerar es mantenimiento: solo admin.
	manifiestos.Put("/renumerar", RequireRole("admin"), manifiestoHandler.Renumerar)
	manifiestos.Get("/:numero", manifiestoHandler.Resolver)
	manifiestos.Get("/:numero/lineas", manifiestoHandler.Detalle)
}
