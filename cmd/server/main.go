package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hafizhramadhan/company-profile-api/internal/config"
	"github.com/hafizhramadhan/company-profile-api/internal/domain/fiber/handler"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/usecase"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	authConfig := config.LoadAuthConfig()
	uploadConfig := config.LoadUploadConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.FrontendURL,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	adminRepo := repository.NewAdminRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	contactRepo := repository.NewContactRepository(db)

	tokens := util.NewTokenManager(authConfig.JWTSecret, authConfig.TokenExpiry)
	auth := middleware.NewAuthMiddleware(tokens, adminRepo)
	dashboard := usecase.NewDashboardUsecase(jobRepo, applicationRepo, projectRepo, serviceRepo, contactRepo)

	api := app.Group("/api")
	handler.NewAdminHandler(adminRepo, tokens, auth).RegisterRoutes(api)
	handler.NewJobHandler(jobRepo, auth).RegisterRoutes(api)
	handler.NewApplicationHandler(applicationRepo, jobRepo, auth).RegisterRoutes(api)
	handler.NewProjectHandler(projectRepo, auth).RegisterRoutes(api)
	handler.NewServiceHandler(serviceRepo, auth).RegisterRoutes(api)
	handler.NewContactHandler(contactRepo, auth).RegisterRoutes(api)
	handler.NewDashboardHandler(dashboard, auth).RegisterRoutes(api)

	// Uploaded images and the SPA build
	app.Static(uploadConfig.URLPrefix, uploadConfig.Dir)
	app.Static("/", appConfig.DistDir)
	app.Get("*", func(c *fiber.Ctx) error {
		// API routes and asset requests never fall through to the SPA
		if strings.HasPrefix(c.Path(), "/api/") || strings.Contains(filepath.Base(c.Path()), ".") {
			return fiber.ErrNotFound
		}
		return c.SendFile(filepath.Join(appConfig.DistDir, "index.html"))
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(100)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// migrasi tabel
	err = db.AutoMigrate(
		&model.Admin{},
		&model.Job{},
		&model.Application{},
		&model.Project{},
		&model.Service{},
		&model.Contact{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
