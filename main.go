package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dailydiet/internal/handlers"
	"dailydiet/internal/models"
	"dailydiet/internal/repositories"
	"dailydiet/internal/services"
	"dailydiet/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3333")
	viper.SetDefault("DATABASE_CLIENT", "sqlite")
	viper.SetDefault("DATABASE_URL", "file:diet.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Database (GORM) ---
	db, err := openDatabase(viper.GetString("DATABASE_CLIENT"), viper.GetString("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Snack{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, running without snack event publishing")
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	snackRepo := repositories.NewGORMSnackRepository(db)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo)
	snackService := services.NewSnackService(snackRepo, mqClient)

	// --- Initialize Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	snackHandler := handlers.NewSnackHandler(snackService, userService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	userHandler.RegisterRoutes(app)
	snackHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start Snack Event Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for snack events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received snack event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeSnackEvents(messageHandler); consumerErr != nil {
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

// openDatabase opens a GORM connection for the configured client. The
// client switch mirrors the sqlite/pg deployment options of the service:
// sqlite takes a file path (or :memory:), pg a full DSN.
func openDatabase(client, url string) (*gorm.DB, error) {
	switch client {
	case "pg", "postgres":
		return gorm.Open(postgres.Open(url), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(url), &gorm.Config{})
	}
}
