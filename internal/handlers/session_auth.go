package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/services"
	"github.com/hosteldesk/complaint-service/internal/session"
)

const (
	sessionCookieName = "session_token"
	identityKey       = "identity"
)

// SessionAuthMiddleware gates protected routes behind the session store. A
// missing, invalid, expired or wrong-role session redirects to the login
// page; it is never a 401.
type SessionAuthMiddleware struct {
	store *session.Store
	role  models.UserRole
}

func NewSessionAuthMiddleware(store *session.Store, role models.UserRole) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		store: store,
		role:  role,
	}
}

// LoadSession resolves the session cookie when present and stores the
// identity in the context. It never aborts; routes like the login page use
// it to decide between page and redirect.
func (m *SessionAuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(sessionCookieName)
		if err == nil && cookie != "" {
			data, err := m.store.Get(c.Request.Context(), cookie)
			if err == nil && data.Role == m.role {
				c.Set(identityKey, services.Identity{
					UserID: data.UserID,
					RegNo:  data.RegNo,
					Role:   data.Role,
				})
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with a redirect to the login page when LoadSession did
// not produce an identity.
func (m *SessionAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(identityKey); !exists {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity set by LoadSession.
func IdentityFromContext(c *gin.Context) (services.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return services.Identity{}, false
	}
	identity, ok := value.(services.Identity)
	return identity, ok
}
