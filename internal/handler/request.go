package handler

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"recipebook/internal/errors"
)

// MessageResponse is the generic success envelope for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// pathID parses a numeric path parameter, or answers 400.
func pathID(c echo.Context, name string) (uint, *echo.HTTPError) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// bindError turns an echo bind failure into a field-naming 400. A JSON value
// of the wrong type is called out by field (e.g. a string where cook_time's
// integer is expected); anything else is a generic bad body.
func bindError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if goerrors.As(err, &he) && he.Internal != nil {
		var ute *json.UnmarshalTypeError
		if goerrors.As(he.Internal, &ute) && ute.Field != "" {
			msg := fmt.Sprintf("%s must be of type %s", ute.Field, ute.Type.String())
			switch ute.Type.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				msg = fmt.Sprintf("%s must be an integer", ute.Field)
			}
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: msg,
				Code:  "VALIDATION_ERROR",
			})
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

// validationError turns validator failures into field-naming 400s. Field
// names come from the json tags (registered in the router).
func validationError(err error) *echo.HTTPError {
	var verrs validator.ValidationErrors
	if goerrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("Missing field: %s", fe.Field())
		case "oneof":
			msg = fmt.Sprintf("%s must be: easy, medium, or hard", fe.Field())
		case "min", "max":
			msg = fmt.Sprintf("%s must be between 1 and 5", fe.Field())
		default:
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: msg,
			Code:  "VALIDATION_ERROR",
		})
	}
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// domainError maps a service error onto its HTTP shape.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
