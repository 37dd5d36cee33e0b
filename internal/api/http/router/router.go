package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/tinysteps/session-service/config"
	"github.com/tinysteps/session-service/internal/api/http/handler"
	"github.com/tinysteps/session-service/internal/api/http/middleware"
	"github.com/tinysteps/session-service/internal/service/offering"
	"github.com/tinysteps/session-service/internal/service/sessiontype"
	"github.com/tinysteps/session-service/internal/service/transfer"
	pasetotoken "github.com/tinysteps/session-service/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	SessionTypeSvc sessiontype.Service
	OfferingSvc    offering.Service
	TransferSvc    transfer.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// 3. Initialize Handlers
	sessionTypeH := handler.NewSessionTypeHandler(r.p.SessionTypeSvc)
	offeringH := handler.NewOfferingHandler(r.p.OfferingSvc)
	transferH := handler.NewTransferHandler(r.p.TransferSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerSessionTypeRoutes(api, sessionTypeH, authRequired)
	r.registerOfferingRoutes(api, offeringH, authRequired)
	r.registerTransferRoutes(api, transferH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
