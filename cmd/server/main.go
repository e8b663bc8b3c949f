package main

import (
	"context"
	"log"

	"evently/config"
	"evently/internal/cache"
	"evently/internal/database"
	"evently/internal/handler"
	"evently/internal/queue"
	"evently/internal/repository"
	"evently/internal/revalidate"
	"evently/internal/service"
	"evently/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connector := database.NewConnector(&cfg.Database)
	pool, err := connector.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer connector.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	revalidationQueue, err := queue.NewRedisStreamRevalidationQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize revalidation queue: %v", err)
	}
	pageCache := cache.NewRedisPageCache(rdb)
	notifier := revalidate.NewQueueNotifier(revalidationQueue)

	revalidationWorker := worker.NewRevalidationWorker(pageCache, revalidationQueue)
	if err := revalidationWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start revalidation worker: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	eventService := service.NewEventService(eventRepo, userRepo, categoryRepo, notifier)
	orderService := service.NewOrderService(orderRepo, eventRepo, userRepo)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewUserHandler(userService).RegisterRoutes(router)
	handler.NewCategoryHandler(categoryService).RegisterRoutes(router)
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewOrderHandler(orderService, eventService).RegisterRoutes(router)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
