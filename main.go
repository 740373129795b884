package main

import (
	"strings"

	"github.com/DedS3t/cashflow-backend/app/controllers"
	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/pkg/routes"
	"github.com/DedS3t/cashflow-backend/platform/cache"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/DedS3t/cashflow-backend/platform/config"
	"github.com/DedS3t/cashflow-backend/platform/database"
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/DedS3t/cashflow-backend/platform/logging"
	"github.com/DedS3t/cashflow-backend/platform/queries"
	"github.com/DedS3t/cashflow-backend/platform/saves"
	socket "github.com/DedS3t/cashflow-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	var store saves.Store
	if cfg.RedisURL != "" {
		pool := cache.CreateRedisPool(cfg.RedisURL)
		defer pool.Close()
		redisStore := cache.NewStore(pool)
		if err := redisStore.Ping(); err != nil {
			log.WithError(err).Fatal("redis")
		}
		store = redisStore
	} else {
		log.Warn("REDIS_URL not set, saves are kept in memory")
		store = saves.NewMemoryStore()
	}

	var repo queries.GameRepository
	if cfg.DB.Enabled() {
		db := database.PostgreSQLConnection(cfg.DB)
		defer db.Close()
		if err := database.CreateSchema(db); err != nil {
			log.WithError(err).Fatal("postgres")
		}
		repo = queries.NewPgGameRepository(db)
	} else {
		log.Warn("database not configured, lobby is kept in memory")
		repo = queries.NewMemoryGameRepository()
	}

	manager := game.NewManager(catalog.Default(), func(gameId string) game.Saver {
		return saves.New(store, cfg.SavePrefix+gameId+":")
	})

	server, err := socket.NewServer(manager, repo)
	if err != nil {
		log.WithError(err).Fatal("socket.io")
	}

	recorder := queries.NewRecorder(repo)
	manager.OnChange(func(id string, state models.GameState) {
		server.Broadcast(id, state)
		recorder.Record(id, state)
	})

	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler})
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CorsOrigins, ","),
	}))

	ctl := controllers.New(manager, repo)
	routes.GameRoutes(app, ctl)
	routes.SaveRoutes(app, ctl)

	go func() {
		if err := server.ListenAndServe(cfg.SocketAddr, cfg.CorsOrigins); err != nil {
			log.WithError(err).Fatal("socket.io")
		}
	}()

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("http")
	}
}
