package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebook/internal/model"
	"recipebook/internal/service"
)

// AuthorHandler handles author endpoints.
type AuthorHandler struct {
	authorService service.AuthorService
}

// NewAuthorHandler creates a new author handler.
func NewAuthorHandler(authorService service.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// CreateAuthorRequest represents an author create payload.
type CreateAuthorRequest struct {
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	SocialMediaLink *string `json:"social_media_link"`
}

// UpdateAuthorRequest represents a partial author update; absent fields keep
// their current value.
type UpdateAuthorRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	SocialMediaLink *string `json:"social_media_link"`
}

// CreateAuthorResponse confirms an author create.
type CreateAuthorResponse struct {
	Message  string `json:"message"`
	AuthorID uint   `json:"author_id"`
}

// UpdateAuthorResponse echoes the updated author.
type UpdateAuthorResponse struct {
	Message         string  `json:"message"`
	AuthorID        uint    `json:"author_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	SocialMediaLink *string `json:"social_media_link"`
}

// ListAuthors godoc
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} model.Author
// @Failure 500 {object} errors.ErrorResponse
// @Router /authors [get]
func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	authors, err := h.authorService.ListAuthors(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	if authors == nil {
		authors = []model.Author{}
	}
	return c.JSON(http.StatusOK, authors)
}

// GetAuthor godoc
// @Summary Get author by id
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} model.Author
// @Failure 404 {object} errors.ErrorResponse
// @Router /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	author, err := h.authorService.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, author)
}

// CreateAuthor godoc
// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Param request body CreateAuthorRequest true "Author payload"
// @Success 201 {object} CreateAuthorResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /authors [post]
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	author := &model.Author{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		SocialMediaLink: req.SocialMediaLink,
	}
	created, err := h.authorService.CreateAuthor(c.Request().Context(), author)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, CreateAuthorResponse{
		Message:  "Author created successfully",
		AuthorID: created.AuthorID,
	})
}

// UpdateAuthor godoc
// @Summary Partially update author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "Author ID"
// @Param request body UpdateAuthorRequest true "Fields to update"
// @Success 200 {object} UpdateAuthorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	var req UpdateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	patch := service.AuthorPatch{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		SocialMediaLink: req.SocialMediaLink,
	}
	author, err := h.authorService.UpdateAuthor(c.Request().Context(), id, patch)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, UpdateAuthorResponse{
		Message:         "Author updated successfully",
		AuthorID:        author.AuthorID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		SocialMediaLink: author.SocialMediaLink,
	})
}

// DeleteAuthor godoc
// @Summary Delete author
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	if err := h.authorService.DeleteAuthor(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Author deleted successfully"})
}
