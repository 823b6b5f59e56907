package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
	"github.com/hosteldesk/complaint-service/internal/services"
	"github.com/hosteldesk/complaint-service/internal/session"
	"github.com/hosteldesk/complaint-service/internal/utils"
)

// HandlerManager wires one shared handler set. The two role surfaces are
// built from it; there is no per-role handler duplication.
type HandlerManager struct {
	authHandler      *AuthHandler
	complaintHandler *ComplaintHandler
	healthHandler    *HealthHandler

	store  *session.Store
	logger utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	store *session.Store,
	repo repositories.Repository,
	redisClient *redis.Client,
	logger utils.Logger,
	production bool,
) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), store, logger, production),
		complaintHandler: NewComplaintHandler(serviceManager.Complaint(), serviceManager.Export(), logger),
		healthHandler:    NewHealthHandler(repo, redisClient, logger),
		store:            store,
		logger:           logger,
	}
}

// BuildRouter assembles the gin engine for one role surface. Both surfaces
// share the handler set; the role capability decides which routes exist and
// how ownership checks behave.
func (hm *HandlerManager) BuildRouter(role models.UserRole) *gin.Engine {
	router := gin.New()
	SetupMiddleware(router, hm.logger)
	router.SetHTMLTemplate(LoadTemplates())

	sessionAuth := NewSessionAuthMiddleware(hm.store, role)
	router.Use(RoleMiddleware(role))
	router.Use(sessionAuth.LoadSession())

	// Public routes.
	router.GET("/", hm.authHandler.Home)
	router.POST("/Login", hm.authHandler.Login)
	router.GET("/logout", hm.authHandler.Logout)
	router.GET("/health", hm.healthHandler.Check)

	// Protected routes shared by both roles.
	protected := router.Group("", sessionAuth.RequireAuth())
	protected.GET("/api/user/regno", hm.authHandler.GetRegNo)
	protected.POST("/markAsSolved/:id", hm.complaintHandler.MarkSolved)

	switch role {
	case models.RoleTechnician:
		protected.GET("/complaints/students", hm.complaintHandler.TechnicianComplaints)
		protected.GET("/complaints/export", hm.complaintHandler.Export)
	default:
		protected.GET("/mainpage", hm.authHandler.Mainpage)
		protected.GET("/submitComplaint", hm.authHandler.SubmitComplaintPage)
		protected.POST("/submit", hm.complaintHandler.Submit)
		protected.GET("/studentComplaints/:regno", hm.complaintHandler.StudentComplaints)
		protected.DELETE("/complaints/:id", hm.complaintHandler.Delete)
	}

	return router
}
