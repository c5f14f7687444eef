package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"recipebook/internal/model"
	"recipebook/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// CreateRecipeRequest represents a recipe create payload. CookTime is an
// integer count of minutes.
type CreateRecipeRequest struct {
	Title           string  `json:"title" validate:"required"`
	Method          string  `json:"method" validate:"required"`
	CookTime        *int    `json:"cook_time" validate:"required"`
	DifficultyLevel string  `json:"difficulty_level" validate:"required,oneof=easy medium hard"`
	Category        *string `json:"category"`
	Cuisine         *string `json:"cuisine"`
	AuthorID        *uint   `json:"author_id" validate:"required"`
}

// UpdateRecipeRequest represents a partial recipe update; absent fields keep
// their current value, present ones are validated like on create.
type UpdateRecipeRequest struct {
	Title           *string `json:"title"`
	Method          *string `json:"method"`
	CookTime        *int    `json:"cook_time"`
	DifficultyLevel *string `json:"difficulty_level" validate:"omitempty,oneof=easy medium hard"`
	Category        *string `json:"category"`
	Cuisine         *string `json:"cuisine"`
	AuthorID        *uint   `json:"author_id"`
}

// CreateRecipeResponse confirms a recipe create.
type CreateRecipeResponse struct {
	Message  string `json:"message"`
	RecipeID uint   `json:"recipe_id"`
}

// RecipeResponse is the read shape of a recipe. CookTime comes back as a
// clock-style duration string ("1:30:00"), not the minute count it was
// submitted as.
type RecipeResponse struct {
	RecipeID        uint    `json:"recipe_id"`
	Title           string  `json:"title"`
	Method          string  `json:"method"`
	CookTime        string  `json:"cook_time"`
	DifficultyLevel string  `json:"difficulty_level"`
	Category        *string `json:"category"`
	Cuisine         *string `json:"cuisine"`
	AuthorID        uint    `json:"author_id"`
}

func toRecipeResponse(r *model.Recipe) RecipeResponse {
	return RecipeResponse{
		RecipeID:        r.RecipeID,
		Title:           r.Title,
		Method:          r.Method,
		CookTime:        r.CookTimeString(),
		DifficultyLevel: r.DifficultyLevel,
		Category:        r.Category,
		Cuisine:         r.Cuisine,
		AuthorID:        r.AuthorID,
	}
}

// ListRecipes godoc
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} RecipeResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.recipeService.ListRecipes(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetRecipe godoc
// @Summary Get recipe by id
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} RecipeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	recipe, err := h.recipeService.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// CreateRecipe godoc
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "Recipe payload"
// @Success 201 {object} CreateRecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	recipe := &model.Recipe{
		Title:           req.Title,
		Method:          req.Method,
		CookTime:        time.Duration(*req.CookTime) * time.Minute,
		DifficultyLevel: req.DifficultyLevel,
		Category:        req.Category,
		Cuisine:         req.Cuisine,
		AuthorID:        *req.AuthorID,
	}
	created, err := h.recipeService.CreateRecipe(c.Request().Context(), recipe)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, CreateRecipeResponse{
		Message:  "Recipe created successfully",
		RecipeID: created.RecipeID,
	})
}

// UpdateRecipe godoc
// @Summary Partially update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	var req UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	patch := service.RecipePatch{
		Title:           req.Title,
		Method:          req.Method,
		DifficultyLevel: req.DifficultyLevel,
		Category:        req.Category,
		Cuisine:         req.Cuisine,
		AuthorID:        req.AuthorID,
	}
	if req.CookTime != nil {
		d := time.Duration(*req.CookTime) * time.Minute
		patch.CookTime = &d
	}
	if _, err := h.recipeService.UpdateRecipe(c.Request().Context(), id, patch); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Recipe updated successfully"})
}

// DeleteRecipe godoc
// @Summary Delete recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	if err := h.recipeService.DeleteRecipe(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Recipe deleted successfully"})
}
