package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"recipebook/internal/errors"
	"recipebook/internal/router"
)

// newEcho builds an echo instance with the production validator wiring so
// validation errors carry wire-level field names.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = router.NewCustomValidator()
	return e
}

// doJSON runs a handler against a synthetic request and returns either the
// recorder (success path) or the echo.HTTPError (error path).
func doJSON(e *echo.Echo, method, target, body string, paramNames []string, paramValues []string, h echo.HandlerFunc) (*httptest.ResponseRecorder, *echo.HTTPError) {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(paramNames) > 0 {
		c.SetParamNames(paramNames...)
		c.SetParamValues(paramValues...)
	}
	if err := h(c); err != nil {
		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return rec, he
	}
	return rec, nil
}

func errorBody(t *testing.T, he *echo.HTTPError) errors.ErrorResponse {
	t.Helper()
	resp, ok := he.Message.(errors.ErrorResponse)
	require.True(t, ok, "error message should be an ErrorResponse, got %T", he.Message)
	return resp
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}
