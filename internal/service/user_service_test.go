package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "recipebook/internal/errors"
	"recipebook/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful creation hashes the password",
			email: "a@b.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "duplicate email",
			email: "taken@b.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@b.com").
					Return(&model.User{UserID: 2, Email: "taken@b.com"}, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			svc := NewUserService(userRepo)
			user, err := svc.CreateUser(context.Background(), "A", "B", tt.email, "pw")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.HashedPassword)
				assert.NotEqual(t, "pw", user.HashedPassword)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("pw")))
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser_Email(t *testing.T) {
	current := func() *model.User {
		return &model.User{UserID: 1, FirstName: "A", LastName: "B", Email: "a@b.com", HashedPassword: "x"}
	}

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(current(), nil)
		userRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(current(), nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		email := "a@b.com"
		svc := NewUserService(userRepo)
		user, err := svc.UpdateUser(context.Background(), 1, UserPatch{Email: &email})

		assert.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("another user's email is a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(current(), nil)
		userRepo.On("FindByEmail", mock.Anything, "other@b.com").
			Return(&model.User{UserID: 2, Email: "other@b.com"}, nil)

		email := "other@b.com"
		svc := NewUserService(userRepo)
		_, err := svc.UpdateUser(context.Background(), 1, UserPatch{Email: &email})

		assert.ErrorIs(t, err, apperrors.ErrEmailExists)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateUser_PasswordRehash(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&model.User{UserID: 1, Email: "a@b.com", HashedPassword: "old-hash"}, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	pw := "new-password"
	svc := NewUserService(userRepo)
	user, err := svc.UpdateUser(context.Background(), 1, UserPatch{Password: &pw})

	assert.NoError(t, err)
	assert.NotEqual(t, "old-hash", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(pw)))
	userRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{UserID: 1}, nil)
		userRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := NewUserService(userRepo)
		assert.NoError(t, svc.DeleteUser(context.Background(), 1))
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(userRepo)
		err := svc.DeleteUser(context.Background(), 3)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
