package session

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "session_id"

	contextKeySessionID = "session_id"
)

// IDFromContext returns the session ID set by Ensure. Empty if not set.
func IDFromContext(c *gin.Context) string {
	return c.GetString(contextKeySessionID)
}

// SetID attaches a session ID to the request context.
func SetID(c *gin.Context, id string) {
	c.Set(contextKeySessionID, id)
}

// Ensure returns a middleware that attaches a session to every request. A
// missing or expired cookie gets a fresh session.
func Ensure(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sessionID, err := c.Cookie(CookieName)
		if err == nil && sessionID != "" {
			ok, err := sessions.Exists(ctx, sessionID)
			if err != nil {
				log.Printf("session lookup: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
				return
			}
			if !ok {
				sessionID = ""
			}
		}
		if sessionID == "" {
			sessionID, err = sessions.Create(ctx)
			if err != nil {
				log.Printf("session create: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
				return
			}
			c.SetCookie(CookieName, sessionID, int(sessions.TTL().Seconds()), "/", "", false, true) // httpOnly
		}
		SetID(c, sessionID)
		c.Next()
	}
}
