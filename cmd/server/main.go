package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipebook/internal/cache"
	"recipebook/internal/config"
	"recipebook/internal/db"
	"recipebook/internal/handler"
	"recipebook/internal/model"
	"recipebook/internal/repository"
	"recipebook/internal/router"
	"recipebook/internal/service"
)

// @title Recipe Book API
// @version 1.0
// @description CRUD API over recipes, authors, users, and saved recipes.
// @host localhost:8080
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}
	cfg := config.Load()

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Author{},
		&model.User{},
		&model.Recipe{},
		&model.SavedRecipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	authorRepo := repository.NewAuthorRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	savedRepo := repository.NewSavedRecipeRepository(gormDB)

	// Initialize services
	authorService := service.NewAuthorService(authorRepo, recipeRepo, cacheClient)
	recipeService := service.NewRecipeService(recipeRepo, authorRepo, cacheClient)
	userService := service.NewUserService(userRepo)
	savedService := service.NewSavedRecipeService(savedRepo, userRepo, recipeRepo)

	// Initialize handlers
	authorHandler := handler.NewAuthorHandler(authorService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	userHandler := handler.NewUserHandler(userService)
	savedHandler := handler.NewSavedRecipeHandler(savedService)

	// Register routes
	router.Register(e, authorHandler, recipeHandler, userHandler, savedHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
