package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"github.com/sthiefaine/psycholinguistique-back/internals/configs"
	database "github.com/sthiefaine/psycholinguistique-back/internals/databases"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
	middlewares "github.com/sthiefaine/psycholinguistique-back/internals/middlewares"
	routes "github.com/sthiefaine/psycholinguistique-back/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	repo, err := buildRepository()
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	routes.SetupRoutes(app, repo)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("[SERVER] listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown, then release the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := repo.Close(); err != nil {
		log.Printf("[DB] close error: %v", err)
	}
}

// buildRepository picks the storage backend: PostgreSQL by default, the
// in-memory store when DB_DRIVER=memory (local runs without a database).
func buildRepository() (repository.Repository, error) {
	if configs.GetEnv("DB_DRIVER") == "memory" {
		log.Println("[DB] using in-memory store")
		return repository.NewMemoryRepository(), nil
	}

	db, err := database.Connect()
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return repository.NewGormRepository(db), nil
}
