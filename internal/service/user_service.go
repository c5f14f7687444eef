package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
	"recipebook/internal/repository"
)

// UserPatch is a partial update of a user. Nil fields are left untouched.
// A present Password is re-hashed before storage.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// UserService exposes user domain operations. Plaintext passwords cross this
// boundary exactly once, on their way into bcrypt.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, firstName, lastName, email, password string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password and inserts the user. The email pre-check
// exists for the friendly error; the unique index on users.email is the
// authoritative guard and a concurrent insert surfaces as the same error.
func (s *userService) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		// A user keeping their own email is not a conflict.
		existing, err := s.users.FindByEmail(ctx, *patch.Email)
		if err == nil && existing.UserID != user.UserID {
			return nil, apperrors.ErrEmailExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and all of the user's saved-recipe rows.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(ctx, id)
}
