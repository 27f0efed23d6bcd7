package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"catalog/internal/handlers"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/dummyjson"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Viper reads configuration from environment variables with defaults
	// suitable for local development.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("CATALOG_BASE_URL", "https://dummyjson.com/products")
	viper.SetDefault("STORE_DRIVER", "memory") // memory | file | sqlite | postgres
	viper.SetDefault("STORE_FILE", "data/products.json")
	viper.SetDefault("SQLITE_DSN", "data/catalog.db")
	viper.SetDefault("POSTGRES_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables product events
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Initialize Local Product Store ---
	store, err := buildStore()
	if err != nil {
		log.Fatalf("Failed to initialize product store: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, product events disabled")
	}

	// --- Initialize Remote Catalog Client ---
	catalogClient := dummyjson.NewClient(viper.GetString("CATALOG_BASE_URL"))

	// --- Initialize Service and Handler ---
	// The publisher stays a nil interface when no MQ client is configured.
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	productService := services.NewProductService(store, catalogClient, publisher)
	productHandler := handlers.NewProductHandler(productService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))

	// --- API Routes ---
	productHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  viper.GetString("STORE_DRIVER"),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Logs every product lifecycle event as a simple audit trail.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for product events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received product event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeProductEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildStore constructs the local product store selected by STORE_DRIVER.
func buildStore() (repositories.ProductStore, error) {
	driver := viper.GetString("STORE_DRIVER")
	switch driver {
	case "memory":
		return repositories.NewMemoryProductStore(), nil
	case "file":
		return repositories.NewFileProductStore(viper.GetString("STORE_FILE")), nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(viper.GetString("SQLITE_DSN")), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return repositories.NewGormProductStore(db)
	case "postgres":
		db, err := gorm.Open(postgres.Open(viper.GetString("POSTGRES_DSN")), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return repositories.NewGormProductStore(db)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}
