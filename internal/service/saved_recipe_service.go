package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

// SavedRecipeService exposes the saved-recipe operations.
type SavedRecipeService interface {
	// ListForUser returns the user's saved rows with the referenced recipe
	// preloaded.
	ListForUser(ctx context.Context, userID uint) ([]model.SavedRecipe, error)
	SaveRecipe(ctx context.Context, userID, recipeID uint, rating *int, notes *string) (*model.SavedRecipe, error)
	UnsaveRecipe(ctx context.Context, userID, recipeID uint) error
}

type savedRecipeService struct {
	saved   repository.SavedRecipeRepository
	users   repository.UserRepository
	recipes repository.RecipeRepository
}

// NewSavedRecipeService builds a SavedRecipeService.
func NewSavedRecipeService(saved repository.SavedRecipeRepository, users repository.UserRepository, recipes repository.RecipeRepository) SavedRecipeService {
	return &savedRecipeService{saved: saved, users: users, recipes: recipes}
}

func (s *savedRecipeService) ListForUser(ctx context.Context, userID uint) ([]model.SavedRecipe, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return s.saved.ListByUser(ctx, userID)
}

// SaveRecipe records that the user saved the recipe. User and recipe are
// checked separately so the caller learns which reference is broken. The
// duplicate pre-check only improves the message; the composite primary key
// rejects a racing duplicate and it is reported the same way.
func (s *savedRecipeService) SaveRecipe(ctx context.Context, userID, recipeID uint, rating *int, notes *string) (*model.SavedRecipe, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}

	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, apperrors.ErrInvalidRating
	}

	if _, err := s.saved.Find(ctx, userID, recipeID); err == nil {
		return nil, apperrors.ErrRecipeAlreadySaved
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	saved := &model.SavedRecipe{
		UserID:   userID,
		RecipeID: recipeID,
		SavedAt:  time.Now().UTC(),
		Rating:   rating,
		Notes:    notes,
	}
	if err := s.saved.Create(ctx, saved); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRecipeAlreadySaved
		}
		return nil, err
	}
	return saved, nil
}

func (s *savedRecipeService) UnsaveRecipe(ctx context.Context, userID, recipeID uint) error {
	if err := s.saved.Delete(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSavedRecipeNotFound
		}
		return err
	}
	return nil
}
