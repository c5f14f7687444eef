package repository

import (
	"context"

	"gorm.io/gorm"

	"recipebook/internal/model"
)

// SavedRecipeRepository defines persistence operations on the user/recipe
// saved junction.
type SavedRecipeRepository interface {
	Create(ctx context.Context, saved *model.SavedRecipe) error
	Find(ctx context.Context, userID, recipeID uint) (*model.SavedRecipe, error)
	// ListByUser returns the user's saved rows with the referenced recipe
	// preloaded for read-time enrichment.
	ListByUser(ctx context.Context, userID uint) ([]model.SavedRecipe, error)
	Delete(ctx context.Context, userID, recipeID uint) error
}

type savedRecipeRepository struct {
	db *gorm.DB
}

// NewSavedRecipeRepository builds a GORM-backed repository.
func NewSavedRecipeRepository(db *gorm.DB) SavedRecipeRepository {
	return &savedRecipeRepository{db: db}
}

func (r *savedRecipeRepository) Create(ctx context.Context, saved *model.SavedRecipe) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *savedRecipeRepository) Find(ctx context.Context, userID, recipeID uint) (*model.SavedRecipe, error) {
	var saved model.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedRecipeRepository) ListByUser(ctx context.Context, userID uint) ([]model.SavedRecipe, error) {
	var saved []model.SavedRecipe
	if err := r.db.WithContext(ctx).Preload("Recipe").
		Where("user_id = ?", userID).Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *savedRecipeRepository) Delete(ctx context.Context, userID, recipeID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
