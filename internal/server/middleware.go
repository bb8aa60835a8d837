package server

import (
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// requestLogger logs one line per request.
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()
		entry := log.WithFields(log.Fields{
			"method":    req.Method,
			"endpoint":  req.URL.Path,
			"status":    res.Status,
			"latency":   time.Since(start).Milliseconds(),
			"remote_ip": c.RealIP(),
		})
		if res.Status >= 500 {
			entry.Warn("Request processed")
		} else {
			entry.Debug("Request processed")
		}

		return nil
	}
}
