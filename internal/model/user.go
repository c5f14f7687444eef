package model

// User represents an account that can save recipes.
type User struct {
	UserID         uint   `json:"user_id" gorm:"primaryKey"`
	FirstName      string `json:"first_name" gorm:"size:100;not null"`
	LastName       string `json:"last_name" gorm:"size:100;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string `json:"-" gorm:"size:255;not null"` // Never expose in JSON

	// Relations
	SavedRecipes []SavedRecipe `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
