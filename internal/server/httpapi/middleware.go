package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

// userIDKey is the gin context key under which authRequired stores the
// authorized subject.
const userIDKey = "userID"

// authRequired admits only requests carrying a valid, non-revoked bearer
// token. It short-circuits with 401 on credential failures and 500 when the
// denylist store is unavailable; handlers behind it never run on failure.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := s.gate.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, common.ErrorInternal) {
				s.logger.Error(c.Request.Context(), "error verifying token", "error", err)
				respondError(c, http.StatusInternalServerError, "there was an error verifying the token")
			} else {
				respondError(c, http.StatusUnauthorized, err.Error())
			}
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// requestLogger logs one line per request with method, path, status and
// duration.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
