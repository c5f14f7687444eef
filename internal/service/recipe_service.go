package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recipebook/internal/cache"
	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

const recipeCacheTTL = 5 * time.Minute

// RecipePatch is a partial update of a recipe. Nil fields are left untouched;
// present fields go through the same validation as create.
type RecipePatch struct {
	Title           *string
	Method          *string
	CookTime        *time.Duration
	DifficultyLevel *string
	Category        *string
	Cuisine         *string
	AuthorID        *uint
}

// RecipeService exposes recipe domain operations.
type RecipeService interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, patch RecipePatch) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error
}

type recipeService struct {
	recipes repository.RecipeRepository
	authors repository.AuthorRepository
	cache   *cache.Client
}

// NewRecipeService builds a RecipeService.
func NewRecipeService(recipes repository.RecipeRepository, authors repository.AuthorRepository, cache *cache.Client) RecipeService {
	return &recipeService{recipes: recipes, authors: authors, cache: cache}
}

// recipeCacheEntry carries the cook time alongside the model, which excludes
// it from its own JSON form.
type recipeCacheEntry struct {
	Recipe   model.Recipe  `json:"recipe"`
	CookTime time.Duration `json:"cook_time"`
}

func (s *recipeService) cacheKey(id uint) string {
	return fmt.Sprintf("recipe:%d", id)
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	return s.recipes.List(ctx)
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var entry recipeCacheEntry
	if s.cache.GetJSON(ctx, s.cacheKey(id), &entry) {
		entry.Recipe.CookTime = entry.CookTime
		return &entry.Recipe, nil
	}

	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), recipeCacheEntry{Recipe: *recipe, CookTime: recipe.CookTime}, recipeCacheTTL)
	return recipe, nil
}

// CreateRecipe validates the author reference and the difficulty literal
// before the write; the storage constraints back both checks up.
func (s *recipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if !model.ValidDifficulty(recipe.DifficultyLevel) {
		return nil, apperrors.ErrInvalidDifficulty
	}
	if err := s.authorExists(ctx, recipe.AuthorID); err != nil {
		return nil, err
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, patch RecipePatch) (*model.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Method != nil {
		recipe.Method = *patch.Method
	}
	if patch.CookTime != nil {
		recipe.CookTime = *patch.CookTime
	}
	if patch.DifficultyLevel != nil {
		if !model.ValidDifficulty(*patch.DifficultyLevel) {
			return nil, apperrors.ErrInvalidDifficulty
		}
		recipe.DifficultyLevel = *patch.DifficultyLevel
	}
	if patch.Category != nil {
		recipe.Category = patch.Category
	}
	if patch.Cuisine != nil {
		recipe.Cuisine = patch.Cuisine
	}
	if patch.AuthorID != nil {
		if err := s.authorExists(ctx, *patch.AuthorID); err != nil {
			return nil, err
		}
		recipe.AuthorID = *patch.AuthorID
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return recipe, nil
}

// DeleteRecipe removes the recipe and cascades its saved-recipe rows so no
// dangling reference survives the delete.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return err
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *recipeService) authorExists(ctx context.Context, authorID uint) error {
	if _, err := s.authors.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAuthorReference
		}
		return err
	}
	return nil
}
