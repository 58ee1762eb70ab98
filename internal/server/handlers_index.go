package server

import (
	"bytes"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// handleIndex serves the static analysis UI page.
func (s *Server) handleIndex(c echo.Context) error {
	// Render to a buffer first to prevent partial HTML from being sent if
	// template execution fails.
	var buf bytes.Buffer
	if err := s.indexTemplate.Execute(&buf, nil); err != nil {
		slog.ErrorContext(c.Request().Context(), "Template execution failed", "error", err)
		return c.String(500, "Failed to render page")
	}
	return c.HTMLBlob(200, buf.Bytes())
}
