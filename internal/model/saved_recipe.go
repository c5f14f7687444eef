package model

import "time"

// SavedRecipe is the user/recipe junction row recording that a user saved a
// recipe. Identity is the (user_id, recipe_id) composite key, so the storage
// layer itself rejects a second save of the same pair.
type SavedRecipe struct {
	UserID   uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RecipeID uint      `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	SavedAt  time.Time `json:"saved_at" gorm:"not null"`
	Rating   *int      `json:"rating" gorm:"check:rating BETWEEN 1 AND 5"`
	Notes    *string   `json:"notes" gorm:"type:text"`

	// Relations
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the junction table name explicit.
func (SavedRecipe) TableName() string {
	return "user_saved_recipes"
}
