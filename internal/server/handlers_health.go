package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zaraumer/SentimentVSROI/internal/platform/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

// handleReadiness reports ready as soon as the server is up. The service
// holds no connections to warm up; provider reachability is only known at
// analysis time and a probe against Yahoo or Reddit would burn API budget.
func (s *Server) handleReadiness(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"status":  "ready",
		"version": version.Get(),
	})
}
