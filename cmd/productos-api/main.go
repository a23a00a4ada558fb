package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventario-services/internal/handler"
	"go-inventario-services/internal/model"
	"go-inventario-services/internal/repository"
	"go-inventario-services/internal/service"
	"go-inventario-services/internal/ws"
	"go-inventario-services/pkg/database"
	"go-inventario-services/pkg/logger"

	"github.com/gofiber/contrib/websocket"
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
	db.AutoMigrate(&model.Producto{})

	hub := ws.NewHub()
	go hub.Run()

	productoRepo := repository.NewProductoRepo(db)
	productoService := service.NewProductoService(productoRepo, hub, zlog)
	productoHandler := handler.NewProductoHandler(productoService)

	app := fiber.New(fiber.Config{
		AppName: "Inventario Productos API",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api")
	productoHandler.RegisterRoutes(api)

	// feed de stock para el panel
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	app.Static("/", "./web/productos")

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5054"
		}
		if err := app.Listen(":" + port); err != nil {
			zlog.Sugar().Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Sugar().Info("shutting down productos-api")
	if err := app.Shutdown(); err != nil {
		zlog.Sugar().Fatalw("forced shutdown", "error", err)
	}
}
