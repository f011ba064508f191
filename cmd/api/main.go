package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"binomial-pricer/internal/api"
	"binomial-pricer/internal/config"
	"binomial-pricer/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables take precedence.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("PRICER_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded pricer config from %s", path)
	}

	pricer, err := cfg.NewPricer()
	if err != nil {
		log.Fatalf("Invalid pricer config: %v", err)
	}
	log.Printf("Pricing on %s lattice, max %d steps", pricer.Name(), pricer.Limit())

	var cache *data.QuoteCache
	if cfg.Cache.Enabled || os.Getenv("ENABLE_QUOTE_CACHE") == "true" {
		ttl := cfg.Cache.TTL
		if ttlStr := os.Getenv("QUOTE_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			} else {
				log.Printf("Ignoring QUOTE_CACHE_TTL=%q: %v", ttlStr, err)
			}
		}
		cache = data.NewQuoteCache(ttl)
		defer cache.Close()
		log.Printf("Quote cache enabled (ttl %s)", ttl)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var origins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	router := api.NewRouter(api.Options{
		Pricer:          pricer,
		Cache:           cache,
		AllowedOrigins:  origins,
		AccessLog:       true,
		MaxRequestNodes: cfg.Pricer.MaxRequestNodes,
	})

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
