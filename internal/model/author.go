package model

// Author represents a recipe author.
type Author struct {
	AuthorID        uint    `json:"author_id" gorm:"primaryKey"`
	FirstName       string  `json:"first_name" gorm:"size:100;not null"`
	LastName        string  `json:"last_name" gorm:"size:100;not null"`
	SocialMediaLink *string `json:"social_media_link" gorm:"type:text"`

	// Relations
	Recipes []Recipe `json:"-" gorm:"foreignKey:AuthorID"`
}
