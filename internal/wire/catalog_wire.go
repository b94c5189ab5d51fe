package wire

import (
	"net/http"
	"time"

	"autohub-service/internal/adaptor"
	"autohub-service/pkg/middleware"
	"autohub-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// wireCatalog wires the three public catalogs (cars, products, services).
// Public listings sit behind the Redis cache; admin writes invalidate it.
func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	ttl := time.Duration(config.Redis.CacheSeconds) * time.Second

	wireCatalogResource(r, "/api/cars", "cars", rdb, ttl, config, log, catalogRoutes{
		list:   handler.Car.GetCars,
		get:    handler.Car.GetCar,
		create: handler.Car.CreateCar,
		update: handler.Car.UpdateCar,
		delete: handler.Car.DeleteCar,
	})

	wireCatalogResource(r, "/api/products", "products", rdb, ttl, config, log, catalogRoutes{
		list:   handler.Product.GetProducts,
		get:    handler.Product.GetProduct,
		create: handler.Product.CreateProduct,
		update: handler.Product.UpdateProduct,
		delete: handler.Product.DeleteProduct,
	})

	wireCatalogResource(r, "/api/services", "services", rdb, ttl, config, log, catalogRoutes{
		list:   handler.Catalog.GetServices,
		get:    handler.Catalog.GetService,
		create: handler.Catalog.CreateService,
		update: handler.Catalog.UpdateService,
		delete: handler.Catalog.DeleteService,
	})
}

type catalogRoutes struct {
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

func wireCatalogResource(
	r chi.Router,
	pattern, cachePrefix string,
	rdb *redis.Client,
	ttl time.Duration,
	config *utils.Config,
	log *zap.Logger,
	routes catalogRoutes,
) {
	// ==================== PUBLIC ROUTES (cached) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Cache(rdb, cachePrefix, ttl, log))

		r.Get(pattern, routes.list)
		r.Get(pattern+"/{id}", routes.get)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post(pattern, invalidating(rdb, cachePrefix, log, routes.create))
		r.Put(pattern+"/{id}", invalidating(rdb, cachePrefix, log, routes.update))
		r.Delete(pattern+"/{id}", invalidating(rdb, cachePrefix, log, routes.delete))
	})
}

// invalidating drops the cached catalog entries after the write handler runs,
// so admin edits show up on the next public read.
func invalidating(rdb *redis.Client, prefix string, log *zap.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r)
		middleware.InvalidateCache(rdb, prefix, log)
	}
}
