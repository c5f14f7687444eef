package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthorNotFound is returned when an author is not found by id.
	ErrAuthorNotFound = errors.New("Author not found")
	// ErrRecipeNotFound is returned when a recipe is not found by id.
	ErrRecipeNotFound = errors.New("Recipe not found")
	// ErrUserNotFound is returned when a user is not found by id.
	ErrUserNotFound = errors.New("User not found")
	// ErrSavedRecipeNotFound is returned when no saved row exists for a user/recipe pair.
	ErrSavedRecipeNotFound = errors.New("Saved recipe not found")
	// ErrAuthorReference is returned when a recipe write references a missing author.
	ErrAuthorReference = errors.New("Author does not exist")
	// ErrEmailExists is returned when a user create or update collides on email.
	ErrEmailExists = errors.New("Email already exists")
	// ErrRecipeAlreadySaved is returned when a user saves the same recipe twice.
	ErrRecipeAlreadySaved = errors.New("Recipe already saved")
	// ErrAuthorHasRecipes is returned when deleting an author that recipes still reference.
	ErrAuthorHasRecipes = errors.New("Author still has recipes")
	// ErrInvalidDifficulty is returned for a difficulty level outside the allowed set.
	ErrInvalidDifficulty = errors.New("difficulty_level must be: easy, medium, or hard")
	// ErrInvalidRating is returned for a rating outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
//
// Referenced-resource errors keep the status the wire contract assigns them:
// a missing author on a recipe write is a 400, while a missing user or recipe
// on a save is a 404.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "AUTHOR_NOT_FOUND")
	case errors.Is(err, ErrRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrSavedRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SAVED_RECIPE_NOT_FOUND")
	case errors.Is(err, ErrAuthorReference):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "AUTHOR_NOT_FOUND")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrRecipeAlreadySaved):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_SAVED")
	case errors.Is(err, ErrAuthorHasRecipes):
		return NewHTTPError(http.StatusConflict, err.Error(), "AUTHOR_HAS_RECIPES")
	case errors.Is(err, ErrInvalidDifficulty):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DIFFICULTY")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
