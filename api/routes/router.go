package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/pantrycost-backend/api/controllers"
	ingredientcontrollers "github.com/angelmondragon/pantrycost-backend/api/controllers/ingredients"
	ordercontrollers "github.com/angelmondragon/pantrycost-backend/api/controllers/orders"
	recipecontrollers "github.com/angelmondragon/pantrycost-backend/api/controllers/recipes"
	"github.com/angelmondragon/pantrycost-backend/api/middleware"
	"github.com/angelmondragon/pantrycost-backend/internal/ingredients"
	"github.com/angelmondragon/pantrycost-backend/internal/orders"
	"github.com/angelmondragon/pantrycost-backend/internal/recipes"
	"github.com/angelmondragon/pantrycost-backend/pkg/config"
	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/logger"
	"github.com/angelmondragon/pantrycost-backend/pkg/metrics"
	"github.com/angelmondragon/pantrycost-backend/pkg/redis"
)

// NewRouter wires every HTTP route. redisClient and gatherer are optional:
// without Redis idempotency keys are ignored, without a gatherer /metrics is
// not served.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	ingredientService ingredients.Service,
	recipeService recipes.Service,
	orderService orders.Service,
) http.Handler {
	var (
		idempotencyStore redis.IdempotencyStore
		redisPinger      redis.Pinger
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		redisPinger = redisClient
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
		idempotent := middleware.Idempotency(idempotencyStore, cfg.Pricing.IdempotencyTTL, logg)

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredientcontrollers.List(ingredientService, logg))
			r.Post("/", ingredientcontrollers.Create(ingredientService, logg))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipecontrollers.List(recipeService, logg))
			r.With(idempotent).Post("/", recipecontrollers.Create(recipeService, logg))
			r.Post("/quote", recipecontrollers.Quote(recipeService, logg))
			r.Get("/{id}", recipecontrollers.Get(recipeService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(idempotent).Post("/", ordercontrollers.Create(orderService, logg))
			r.Post("/quote", ordercontrollers.Quote(orderService, logg))
			r.Get("/{id}", ordercontrollers.Get(orderService, logg))
		})
	})

	return r
}
