package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebook/internal/config"
	"recipebook/internal/db"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}
	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Author{},
		&model.User{},
		&model.Recipe{},
		&model.SavedRecipe{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	authorRepo := repository.NewAuthorRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	savedRepo := repository.NewSavedRecipeRepository(gormDB)

	author := &model.Author{
		FirstName:       "Julia",
		LastName:        "Child",
		SocialMediaLink: strPtr("https://example.com/juliachild"),
	}
	if err := authorRepo.Create(ctx, author); err != nil {
		log.Fatalf("Failed to seed author: %v", err)
	}

	recipes := []model.Recipe{
		{
			Title:           "Omelette",
			Method:          "Beat eggs, cook gently in butter, fold.",
			CookTime:        10 * time.Minute,
			DifficultyLevel: model.DifficultyEasy,
			Category:        strPtr("breakfast"),
			Cuisine:         strPtr("french"),
			AuthorID:        author.AuthorID,
		},
		{
			Title:           "Boeuf Bourguignon",
			Method:          "Brown beef, braise in red wine with aromatics for three hours.",
			CookTime:        210 * time.Minute,
			DifficultyLevel: model.DifficultyHard,
			Category:        strPtr("dinner"),
			Cuisine:         strPtr("french"),
			AuthorID:        author.AuthorID,
		},
	}
	for i := range recipes {
		if err := recipeRepo.Create(ctx, &recipes[i]); err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipes[i].Title, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	user := &model.User{
		FirstName:      "Sample",
		LastName:       "User",
		Email:          "sample@example.com",
		HashedPassword: string(hash),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Seed user already exists, skipping")
		} else {
			log.Fatalf("Failed to seed user: %v", err)
		}
	}

	if user.UserID != 0 {
		saved := &model.SavedRecipe{
			UserID:   user.UserID,
			RecipeID: recipes[0].RecipeID,
			SavedAt:  time.Now().UTC(),
			Rating:   intPtr(5),
			Notes:    strPtr("Weekend favorite"),
		}
		if err := savedRepo.Create(ctx, saved); err != nil {
			log.Fatalf("Failed to seed saved recipe: %v", err)
		}
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Authors: 1, Recipes: %d, Users: 1, Saved: 1", len(recipes))
}
