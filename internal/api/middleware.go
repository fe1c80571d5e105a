package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequireAuth guards the dashboard routes: without a usable session the
// request bounces to the login screen carrying a return hint. Token
// presence is checked before any dispatch; expired tokens that slip
// through are caught by the client's 401 hook.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.store.IsAuthenticated() {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated keeps logged-in operators off the public screens.
func (h *Handler) RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.store.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger tags every request with an id and logs its outcome.
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("Request handled")
	}
}
