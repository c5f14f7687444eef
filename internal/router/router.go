package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipebook/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authorHandler *handler.AuthorHandler,
	recipeHandler *handler.RecipeHandler,
	userHandler *handler.UserHandler,
	savedHandler *handler.SavedRecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = NewCustomValidator()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "API is running and connected to PostgreSQL!",
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authors := e.Group("/authors")
	authors.GET("", authorHandler.ListAuthors)
	authors.GET("/:id", authorHandler.GetAuthor)
	authors.POST("", authorHandler.CreateAuthor)
	authors.PUT("/:id", authorHandler.UpdateAuthor)
	authors.DELETE("/:id", authorHandler.DeleteAuthor)

	recipes := e.Group("/recipes")
	recipes.GET("", recipeHandler.ListRecipes)
	recipes.GET("/:id", recipeHandler.GetRecipe)
	recipes.POST("", recipeHandler.CreateRecipe)
	recipes.PUT("/:id", recipeHandler.UpdateRecipe)
	recipes.DELETE("/:id", recipeHandler.DeleteRecipe)

	users := e.Group("/users")
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.POST("", userHandler.CreateUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	saved := e.Group("/saved")
	saved.GET("/user/:user_id", savedHandler.ListForUser)
	saved.POST("", savedHandler.SaveRecipe)
	saved.DELETE("", savedHandler.UnsaveRecipe)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the validator with json tag names, so validation
// errors name the wire-level field the caller sent.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
