package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventario-services/internal/handler"
	"go-inventario-services/internal/model"
	"go-inventario-services/internal/repository"
	"go-inventario-services/internal/service"
	"go-inventario-services/internal/stockclient"
	"go-inventario-services/pkg/database"
	"go-inventario-services/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zlog := logger.New()
	defer zlog.Sync()

	db := database.Connect()
	db.AutoMigrate(&model.Transaccion{})

	// cliente único y de larga vida hacia el API de productos
	productosURL := os.Getenv("PRODUCTOS_API_URL")
	if productosURL == "" {
		productosURL = "http://localhost:5054"
	}
	timeout := 5 * time.Second
	if v := os.Getenv("PRODUCTOS_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}
	productos := stockclient.New(productosURL, timeout)

	transaccionRepo := repository.NewTransaccionRepo(db)
	transaccionService := service.NewTransaccionService(transaccionRepo, productos, zlog)
	transaccionHandler := handler.NewTransaccionHandler(transaccionService)

	app := fiber.New(fiber.Config{
		AppName: "Inventario Transacciones API",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api")
	transaccionHandler.RegisterRoutes(api)

	app.Static("/", "./web/transacciones")

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5055"
		}
		if err := app.Listen(":" + port); err != nil {
			zlog.Sugar().Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Sugar().Info("shutting down transacciones-api")
	if err := app.Shutdown(); err != nil {
		zlog.Sugar().Fatalw("forced shutdown", "error", err)
	}
}
