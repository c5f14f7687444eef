package model

import (
	"fmt"
	"time"
)

// Difficulty levels accepted for a recipe. The same set is enforced by the
// check constraint on the recipes table.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recipe represents a recipe owned by an author.
//
// CookTime is stored as a duration (int64 nanoseconds in the recipes table).
// It is accepted over the wire as an integer count of minutes and rendered
// back as a clock-style duration string, so it is excluded from direct JSON
// serialization; handlers format it via CookTimeString.
type Recipe struct {
	RecipeID        uint          `json:"recipe_id" gorm:"primaryKey"`
	Title           string        `json:"title" gorm:"size:100;not null"`
	Method          string        `json:"method" gorm:"type:text;not null"`
	CookTime        time.Duration `json:"-" gorm:"not null"`
	DifficultyLevel string        `json:"difficulty_level" gorm:"size:20;not null;check:difficulty_level IN ('easy','medium','hard')"`
	Category        *string       `json:"category" gorm:"size:50"`
	Cuisine         *string       `json:"cuisine" gorm:"size:50"`
	AuthorID        uint          `json:"author_id" gorm:"not null;index"`

	// Relations
	Author  Author        `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	SavedBy []SavedRecipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// ValidDifficulty reports whether level is one of the accepted literals.
func ValidDifficulty(level string) bool {
	switch level {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CookTimeString renders the cook time as H:MM:SS, e.g. 90 minutes -> "1:30:00".
func (r *Recipe) CookTimeString() string {
	return FormatDuration(r.CookTime)
}

// FormatDuration renders a duration as H:MM:SS.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
