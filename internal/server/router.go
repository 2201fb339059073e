package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anka-backend/internal/catalog"
	"anka-backend/internal/config"
	"anka-backend/internal/enrich"
	"anka-backend/internal/handlers"
	"anka-backend/internal/middleware"
	"anka-backend/internal/store"
)

// Deps carries everything the routes need. Stores are interfaces so tests
// can swap in fakes.
type Deps struct {
	Clients     store.Clients
	Allocations store.Allocations
	Changes     store.ChangeLogs
	Catalog     *catalog.Catalog
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	enricher := enrich.NewService(deps.Allocations, deps.Catalog)

	clients := handlers.NewClientHandler(deps.Clients, deps.Changes)
	allocations := handlers.NewAllocationHandler(deps.Clients, deps.Allocations, enricher, deps.Catalog, deps.Changes)
	assets := handlers.NewAssetHandler(deps.Catalog)
	changelog := handlers.NewChangeLogHandler(deps.Changes)

	api := r.Group("/api")

	// CLIENTS
	api.POST("/clients", clients.Create)
	api.GET("/clients", clients.List)
	api.GET("/clients/:id", clients.Get)
	api.PUT("/clients/:id", clients.Update)
	api.DELETE("/clients/:id", clients.Delete)

	// ASSET CATALOG
	api.GET("/assets", assets.List)

	// ALLOCATIONS
	// gin requires the same wildcard name as /clients/:id above
	api.POST("/clients/:id/allocations", allocations.Create)
	api.GET("/clients/:id/allocations", allocations.ListByClient)
	api.DELETE("/allocations/:id", allocations.Delete)

	// CHANGE LOG
	api.GET("/changelog", changelog.List)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
