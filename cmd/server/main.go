package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/blacklabelhq/scheduler-api/configs"
	"github.com/blacklabelhq/scheduler-api/internal/api/handlers"
	"github.com/blacklabelhq/scheduler-api/internal/api/middleware"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
	"github.com/blacklabelhq/scheduler-api/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using UTC", cfg.Timezone)
		loc = time.UTC
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    25 * 1024 * 1024, // 25 MB, image uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	postRepo := repository.NewPostRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	refreshCounter := service.NewRefreshCounter()

	authService := service.NewAuthService(*cfg, db, userRepo, workspaceRepo)
	userService := service.NewUserService(userRepo)
	workspaceService := service.NewWorkspaceService(db, workspaceRepo)
	settingsService := service.NewSettingsService(settingsRepo, workspaceRepo, loc)
	postService := service.NewPostService(postRepo, workspaceRepo, settingsService, refreshCounter)
	calendarService := service.NewCalendarService(postRepo, workspaceRepo, settingsService)
	r2Service := service.NewR2Service(*cfg)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/auth/signup", auth.SignUp)
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", auth.Logout)
	app.Get("/login", auth.GoogleLogin)
	app.Get("/login/callback", auth.GoogleCallback)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	workspace := handlers.NewWorkspaceHandler(workspaceService)
	api.Get("/workspaces", workspace.ListWorkspaces)
	api.Get("/workspaces/info", workspace.GetWorkspaceInfo)
	api.Post("/workspaces/create", workspace.CreateWorkspace)

	settings := handlers.NewSettingsHandler(settingsService)
	api.Get("/settings/info", settings.GetSettingsInfo)
	api.Post("/settings/update", settings.UpdateSettings)

	post := handlers.NewPostHandler(postService, calendarService)
	api.Post("/posts/create", post.CreatePost)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/remove", post.RemovePost)
	api.Get("/posts/calendar", post.Calendar)
	api.Post("/posts/preview", post.Preview)
	api.Get("/posts/refresh", post.Refresh)
	api.Get("/templates", post.ListTemplates)

	upload := handlers.NewUploadHandler(r2Service, workspaceService)
	api.Post("/uploads", upload.UploadImage)

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
