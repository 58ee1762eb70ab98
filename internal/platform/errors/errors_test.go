package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypes_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("bad").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ExternalError("down", nil).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, InternalError("boom", nil).HTTPStatus())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalError("provider unreachable", cause)
	assert.ErrorIs(t, err, cause)
}

func TestError_Message(t *testing.T) {
	err := InternalError("boom", fmt.Errorf("root cause"))
	assert.Equal(t, "internal: boom: root cause", err.Error())
	assert.Equal(t, "validation: bad", ValidationError("bad").Error())
}

func TestAsStructuredError(t *testing.T) {
	structured := ValidationError("nope")
	assert.Same(t, structured, AsStructuredError(structured))

	plain := errors.New("surprise")
	wrapped := AsStructuredError(plain)
	assert.Equal(t, TypeInternal, wrapped.Type)
	assert.ErrorIs(t, wrapped, plain)

	assert.Nil(t, AsStructuredError(nil))
}

func TestToResponse_OnlyExposesMessage(t *testing.T) {
	err := ValidationError("invalid ticker").WithField("ticker", "???")

	body, marshalErr := json.Marshal(err.ToResponse())
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":"invalid ticker"}`, string(body))
}

func TestMiddleware_StructuredError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorsTotal.Reset()

	handler := Middleware()(func(c echo.Context) error {
		return ValidationError("invalid input")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid input", resp.Error)
}

func TestMiddleware_PlainErrorBecomesInternal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware()(func(c echo.Context) error {
		return errors.New("sensitive detail")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sensitive detail")
}

func TestMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
