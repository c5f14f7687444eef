package repository

import (
	"context"

	"gorm.io/gorm"

	"recipebook/internal/model"
)

// AuthorRepository defines author persistence operations.
type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	FindByID(ctx context.Context, id uint) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id uint) error
}

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository builds a GORM-backed repository.
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *model.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) Update(ctx context.Context, author *model.Author) error {
	return r.db.WithContext(ctx).Save(author).Error
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Author{}, id).Error
}
