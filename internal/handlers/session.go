package handlers

import (
	"context"
	"net/http"

	"Calendar/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionEnder deletes a session.
type SessionEnder interface {
	Delete(ctx context.Context, id string) error
}

type SessionHandler struct {
	sessions SessionEnder
}

func NewSessionHandler(sessions SessionEnder) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// End godoc
// @Summary      End the browser session
// @Tags         session
// @Success      204
// @Router       /session [delete]
func (h *SessionHandler) End(c *gin.Context) {
	if id := session.IDFromContext(c); id != "" {
		_ = h.sessions.Delete(c.Request.Context(), id)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
