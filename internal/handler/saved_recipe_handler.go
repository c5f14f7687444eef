package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"recipebook/internal/model"
	"recipebook/internal/service"
)

// SavedRecipeHandler handles saved-recipe endpoints.
type SavedRecipeHandler struct {
	savedService service.SavedRecipeService
}

// NewSavedRecipeHandler creates a new saved-recipe handler.
func NewSavedRecipeHandler(savedService service.SavedRecipeService) *SavedRecipeHandler {
	return &SavedRecipeHandler{savedService: savedService}
}

// SaveRecipeRequest represents a save payload.
type SaveRecipeRequest struct {
	UserID   *uint   `json:"user_id" validate:"required"`
	RecipeID *uint   `json:"recipe_id" validate:"required"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Notes    *string `json:"notes"`
}

// UnsaveRecipeRequest represents an unsave payload.
type UnsaveRecipeRequest struct {
	UserID   *uint `json:"user_id" validate:"required"`
	RecipeID *uint `json:"recipe_id" validate:"required"`
}

// SavedRecipeResponse is one saved row enriched with the referenced recipe's
// title and cuisine at read time.
type SavedRecipeResponse struct {
	UserID        uint      `json:"user_id"`
	RecipeID      uint      `json:"recipe_id"`
	SavedAt       time.Time `json:"saved_at"`
	RecipeTitle   string    `json:"recipe_title"`
	RecipeCuisine *string   `json:"recipe_cuisine"`
	Rating        *int      `json:"rating"`
	Notes         *string   `json:"notes"`
}

func toSavedRecipeResponse(s *model.SavedRecipe) SavedRecipeResponse {
	return SavedRecipeResponse{
		UserID:        s.UserID,
		RecipeID:      s.RecipeID,
		SavedAt:       s.SavedAt,
		RecipeTitle:   s.Recipe.Title,
		RecipeCuisine: s.Recipe.Cuisine,
		Rating:        s.Rating,
		Notes:         s.Notes,
	}
}

// ListForUser godoc
// @Summary List a user's saved recipes
// @Tags saved
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} SavedRecipeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved/user/{user_id} [get]
func (h *SavedRecipeHandler) ListForUser(c echo.Context) error {
	userID, httpErr := pathID(c, "user_id")
	if httpErr != nil {
		return httpErr
	}
	saved, err := h.savedService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	out := make([]SavedRecipeResponse, 0, len(saved))
	for i := range saved {
		out = append(out, toSavedRecipeResponse(&saved[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// SaveRecipe godoc
// @Summary Save a recipe for a user
// @Tags saved
// @Accept json
// @Produce json
// @Param request body SaveRecipeRequest true "Save payload"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved [post]
func (h *SavedRecipeHandler) SaveRecipe(c echo.Context) error {
	var req SaveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	if _, err := h.savedService.SaveRecipe(c.Request().Context(), *req.UserID, *req.RecipeID, req.Rating, req.Notes); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "Recipe saved successfully"})
}

// UnsaveRecipe godoc
// @Summary Remove a saved recipe
// @Tags saved
// @Accept json
// @Produce json
// @Param request body UnsaveRecipeRequest true "Unsave payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved [delete]
func (h *SavedRecipeHandler) UnsaveRecipe(c echo.Context) error {
	var req UnsaveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	if err := h.savedService.UnsaveRecipe(c.Request().Context(), *req.UserID, *req.RecipeID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Saved recipe removed"})
}
