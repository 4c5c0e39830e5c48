package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"velour_backend/internal/controller"
	"velour_backend/internal/middleware"
	"velour_backend/internal/model"
	"velour_backend/pkg/config"
	"velour_backend/pkg/cron"
	"velour_backend/pkg/database"
	"velour_backend/pkg/seed"
	"velour_backend/pkg/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Lead capture
	api.Post("/lead", controller.CreateLead)

	// Public content
	api.Get("/events", controller.ListEvents)
	api.Get("/news", controller.ListNews)
	api.Get("/news/:slug", controller.GetNewsBySlug)
	api.Get("/menu", controller.GetMenu)
	api.Get("/gallery", controller.GetGallery)

	// News automation webhook
	api.Post("/news/webhook", controller.NewsWebhook)

	// Admin session
	admin := api.Group("/admin")
	admin.Post("/login", controller.AdminLogin)
	admin.Post("/logout", controller.AdminLogout)

	// Admin dashboard routes
	protected := admin.Use(middleware.RequireAdmin())
	protected.Post("/upload-image", controller.UploadImage)
	protected.Post("/events", controller.CreateEvent)
	protected.Put("/events/:id", controller.UpdateEvent)
	protected.Delete("/events/:id", controller.DeleteEvent)
}

func main() {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.Lead{},
		&model.Event{},
		&model.NewsArticle{},
		&model.MenuCategory{},
		&model.MenuItem{},
		&model.GalleryImage{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if os.Getenv("SEED_DATA") == "true" {
		seed.SeedContent(database.GetDB())
	}

	if err := storage.Init(cfg.Storage); err != nil {
		log.Fatal("Could not initialize storage client:", err)
	}

	controller.InitLeadController(cfg)
	cron.InitLeadStatsCron()

	app := fiber.New(fiber.Config{
		// Above Fiber's default so oversized uploads reach the handler's own
		// size check and get its 400 message instead of a bare 413.
		BodyLimit: 25 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Server error",
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
