package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/services"
	"github.com/hosteldesk/complaint-service/internal/session"
	"github.com/hosteldesk/complaint-service/internal/utils"
)

const roleKey = "role"

// RoleMiddleware stamps the engine's role on every request so the shared
// handler set knows which surface it serves.
func RoleMiddleware(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(roleKey, role)
		c.Next()
	}
}

func roleFromContext(c *gin.Context) models.UserRole {
	if value, exists := c.Get(roleKey); exists {
		if role, ok := value.(models.UserRole); ok {
			return role
		}
	}
	return models.RoleStudent
}

// landingPath is where a fresh or already-authenticated session is sent.
func landingPath(role models.UserRole) string {
	if role == models.RoleTechnician {
		return "/complaints/students"
	}
	return "/mainpage"
}

func loginTitle(role models.UserRole) string {
	if role == models.RoleTechnician {
		return "Technician Login"
	}
	return "Student Login"
}

type AuthHandler struct {
	BaseHandler
	service    services.AuthService
	store      *session.Store
	production bool
}

func NewAuthHandler(service services.AuthService, store *session.Store, logger utils.Logger, production bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		store:       store,
		production:  production,
	}
}

// Home serves the login page, or redirects to the role's landing page when a
// session already exists.
func (h *AuthHandler) Home(c *gin.Context) {
	role := roleFromContext(c)
	if _, authenticated := IdentityFromContext(c); authenticated {
		c.Redirect(http.StatusFound, landingPath(role))
		return
	}
	c.HTML(http.StatusOK, "login", gin.H{"Title": loginTitle(role)})
}

// Login authenticates the posted credentials and establishes a session.
// Lookup misses and wrong passwords are plain 200 messages, not error codes.
func (h *AuthHandler) Login(c *gin.Context) {
	role := roleFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, "User not found")
		return
	}

	identity, err := h.service.Login(c.Request.Context(), role, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.String(http.StatusOK, "User not found")
		case errors.Is(err, services.ErrIncorrectPassword):
			c.String(http.StatusOK, "Incorrect Password")
		default:
			h.LogError(c, err, "login failed")
			c.String(http.StatusInternalServerError, "An error occurred during login.")
		}
		return
	}

	cookie, err := h.store.Create(c.Request.Context(), session.Data{
		UserID: identity.UserID,
		RegNo:  identity.RegNo,
		Role:   identity.Role,
	})
	if err != nil {
		h.LogError(c, err, "session create failed")
		c.String(http.StatusInternalServerError, "An error occurred during login.")
		return
	}

	h.setSessionCookie(c, cookie)
	c.Redirect(http.StatusFound, landingPath(role))
}

// GetRegNo returns the caller's registration number.
func (h *AuthHandler) GetRegNo(c *gin.Context) {
	identity, _ := IdentityFromContext(c)
	c.JSON(http.StatusOK, gin.H{"regno": identity.RegNo})
}

// Mainpage is the student landing page.
func (h *AuthHandler) Mainpage(c *gin.Context) {
	identity, _ := IdentityFromContext(c)
	c.HTML(http.StatusOK, "mainpage", gin.H{"RegNo": identity.RegNo})
}

// SubmitComplaintPage serves the submission form.
func (h *AuthHandler) SubmitComplaintPage(c *gin.Context) {
	c.HTML(http.StatusOK, "form", nil)
}

// Logout destroys the session, clears client-side state and redirects to the
// login page. It succeeds whether or not a session existed.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		if err := h.store.Destroy(c.Request.Context(), cookie); err != nil {
			h.LogError(c, err, "session destroy failed")
		}
	}

	h.clearSessionCookie(c)
	c.Header("Clear-Site-Data", `"cache", "cookies", "storage"`)
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string) {
	c.SetCookie(sessionCookieName, value, int(h.store.TTL().Seconds()), "/", "", h.production, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.production, true)
}
