package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// strictBinder decodes JSON bodies with DisallowUnknownFields so payloads
// carrying fields outside the schema are rejected, not silently dropped.
// Non-JSON requests fall through to Echo's default binder.
type strictBinder struct {
	fallback echo.DefaultBinder
}

// NewStrictBinder returns a binder ready to be assigned to echo.Echo.Binder.
func NewStrictBinder() echo.Binder {
	return &strictBinder{}
}

func (b *strictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is required")
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return b.fallback.Bind(i, c)
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
