package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebook/internal/model"
	"recipebook/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a user create payload. The password arrives
// in plaintext and is hashed before it is stored; it never appears in any
// response.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a partial user update; absent fields keep
// their current value.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// CreateUserResponse confirms a user create.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, CreateUserResponse{
		Message: "User created successfully",
		UserID:  user.UserID,
	})
}

// UpdateUser godoc
// @Summary Partially update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	patch := service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if _, err := h.userService.UpdateUser(c.Request().Context(), id, patch); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User updated successfully"})
}

// DeleteUser godoc
// @Summary Delete user and the user's saved recipes
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
