package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	zlog "github.com/rs/zerolog/log"

	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/config"
	dbpkg "github.com/manapixels/hair-salon-app-sub002/internal/db"
	"github.com/manapixels/hair-salon-app-sub002/internal/logger"
	"github.com/manapixels/hair-salon-app-sub002/internal/metrics"
	"github.com/manapixels/hair-salon-app-sub002/internal/routes"
	"github.com/manapixels/hair-salon-app-sub002/internal/storage"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	zlog.Logger = log

	db := dbpkg.NewDB(cfg, log)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		log.Info().Str("addr", cfg.RedisAddr).Msg("schedule cache enabled")
	}
	settings := cache.NewSettings(rdb, 5*time.Minute)

	photos := storage.NewPhotoStore(cfg)
	if photos == nil {
		log.Info().Msg("photo storage not configured, uploads disabled")
	}

	metrics.Register()

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, settings, photos)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
