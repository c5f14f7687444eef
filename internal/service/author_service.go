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

const authorCacheTTL = 5 * time.Minute

// AuthorPatch is a partial update of an author. Nil fields are left untouched.
type AuthorPatch struct {
	FirstName       *string
	LastName        *string
	SocialMediaLink *string
}

// AuthorService exposes author domain operations.
type AuthorService interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id uint) (*model.Author, error)
	CreateAuthor(ctx context.Context, author *model.Author) (*model.Author, error)
	UpdateAuthor(ctx context.Context, id uint, patch AuthorPatch) (*model.Author, error)
	DeleteAuthor(ctx context.Context, id uint) error
}

type authorService struct {
	authors repository.AuthorRepository
	recipes repository.RecipeRepository
	cache   *cache.Client
}

// NewAuthorService builds an AuthorService.
func NewAuthorService(authors repository.AuthorRepository, recipes repository.RecipeRepository, cache *cache.Client) AuthorService {
	return &authorService{authors: authors, recipes: recipes, cache: cache}
}

func (s *authorService) cacheKey(id uint) string {
	return fmt.Sprintf("author:%d", id)
}

func (s *authorService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.authors.List(ctx)
}

func (s *authorService) GetAuthor(ctx context.Context, id uint) (*model.Author, error) {
	var cached model.Author
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAuthorNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), author, authorCacheTTL)
	return author, nil
}

func (s *authorService) CreateAuthor(ctx context.Context, author *model.Author) (*model.Author, error) {
	if err := s.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id uint, patch AuthorPatch) (*model.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAuthorNotFound
		}
		return nil, err
	}

	if patch.FirstName != nil {
		author.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		author.LastName = *patch.LastName
	}
	if patch.SocialMediaLink != nil {
		author.SocialMediaLink = patch.SocialMediaLink
	}

	if err := s.authors.Update(ctx, author); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return author, nil
}

// DeleteAuthor removes the author. Authors with live recipes are rejected
// rather than cascaded: saved recipes of other users hang off those rows.
func (s *authorService) DeleteAuthor(ctx context.Context, id uint) error {
	if _, err := s.authors.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAuthorNotFound
		}
		return err
	}

	count, err := s.recipes.CountByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrAuthorHasRecipes
	}

	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
