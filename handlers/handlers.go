package handlers

import (
	"errors"
	"net/http"
	"sync"

	"scheduledash/config"
	"scheduledash/middleware"
	"scheduledash/services/dashboard"
	"scheduledash/services/remote"
	"scheduledash/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// DashboardHandler owns the per-browser-session dashboard sessions and the
// remote API transport.
type DashboardHandler struct {
	Client   *remote.Client
	Registry *utils.SessionRegistry

	mu       sync.Mutex
	sessions map[string]dashboard.Session
}

func NewDashboardHandler(client *remote.Client, registry *utils.SessionRegistry) *DashboardHandler {
	h := &DashboardHandler{
		Client:   client,
		Registry: registry,
		sessions: make(map[string]dashboard.Session),
	}
	// Dashboard state lives exactly as long as the browser session; when the
	// registry evicts one (logout, TTL, token expiry) its dashboard session
	// goes with it.
	registry.OnEvict(h.dropSession)
	return h
}

// sessionFor returns the dashboard session bound to the authenticated
// browser session, creating it on first use.
func (h *DashboardHandler) sessionFor(c *gin.Context) (dashboard.Session, bool) {
	browser, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return nil, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	session, exists := h.sessions[browser.ID]
	if !exists {
		session = dashboard.NewSession(
			remote.ScheduleService{Client: h.Client, Token: browser.Token},
			remote.TimeOffService{Client: h.Client, Token: browser.Token},
			config.NotificationTTL(),
		)
		h.sessions[browser.ID] = session
	}
	return session, true
}

func (h *DashboardHandler) dropSession(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}

// respondError maps a session failure onto an HTTP response. Validation
// problems carry field-keyed messages; transport failures surface the
// remote message when one was supplied.
func respondError(c *gin.Context, err error, fieldErrs map[string]string) {
	var validationErr *dashboard.ValidationError
	var stateErr *dashboard.StateError
	var apiErr *remote.APIError

	switch {
	case errors.Is(err, dashboard.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "Another request is in progress. Please wait."})
	case errors.Is(err, dashboard.ErrConfirmationRequired):
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "Deletion requires confirmation"})
	case errors.Is(err, dashboard.ErrNoEditSession):
		c.JSON(http.StatusConflict, gin.H{"error": "No entry is being edited"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErr.Fields})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusNotFound, gin.H{"error": stateErr.Error()})
	case errors.As(err, &apiErr):
		body := gin.H{"error": apiErr.Message}
		if len(fieldErrs) > 0 {
			body["errors"] = fieldErrs
		}
		c.JSON(http.StatusBadGateway, body)
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "The schedule service is unavailable. Please try again."})
	}
}
