package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// SessionHandler serves the current user. There is no auth; the session is a
// static profile injected at wiring time.
type SessionHandler struct {
	Session entity.Session
}

func NewSessionHandler(session entity.Session) *SessionHandler {
	return &SessionHandler{Session: session}
}

// Me handles GET /me.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.Session.CurrentUser())
}
