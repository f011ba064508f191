// Package api wires the pricing handlers into a gin router.
package api

import (
	"net/http"

	"binomial-pricer/internal/api/handlers"
	"binomial-pricer/internal/api/middleware"
	"binomial-pricer/internal/data"
	"binomial-pricer/internal/lattice"

	"github.com/gin-gonic/gin"
)

// Options configures NewRouter.
type Options struct {
	Pricer          *lattice.LatticePricer
	Cache           *data.QuoteCache // nil disables quote retrieval
	AllowedOrigins  []string
	AccessLog       bool
	MaxRequestNodes int64 // bounds batch and convergence work; 0 uses the default
}

func NewRouter(opts Options) *gin.Engine {
	if opts.Pricer == nil {
		opts.Pricer = &lattice.LatticePricer{}
	}

	router := gin.New()
	router.Use(middleware.CORS(opts.AllowedOrigins...))
	if opts.AccessLog {
		router.Use(middleware.Logger())
	}
	router.Use(middleware.ErrorHandler())

	priceHandler := handlers.NewPriceHandler(opts.Pricer, opts.Cache, opts.MaxRequestNodes)
	representationHandler := handlers.NewRepresentationHandler(opts.Pricer.Representation)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/price", priceHandler.Price)
		api.GET("/price/:id", priceHandler.GetQuote)
		api.POST("/price/batch", priceHandler.Batch)
		api.POST("/convergence", priceHandler.Convergence)

		api.GET("/representations", representationHandler.ListRepresentations)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
