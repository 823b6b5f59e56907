package services

import (
	"log/slog"
	"sync"

	"github.com/hosteldesk/complaint-service/internal/events"
	"github.com/hosteldesk/complaint-service/internal/repositories"
	"github.com/hosteldesk/complaint-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator

	authService      AuthService
	complaintService ComplaintService
	exportService    ExportService

	once sync.Once
}

// NewServiceManager creates the service manager with all dependencies.
func NewServiceManager(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) ServiceManager {
	return &serviceManager{
		repo:           repo,
		eventPublisher: publisher,
		logger:         logger,
		validator:      v,
	}
}

func (sm *serviceManager) initialize() {
	sm.once.Do(func() {
		sm.authService = NewAuthService(sm.repo, sm.logger, sm.validator)
		sm.complaintService = NewComplaintService(sm.repo, sm.eventPublisher, sm.logger)
		sm.exportService = NewExportService(sm.repo, sm.logger)
	})
}

func (sm *serviceManager) Auth() AuthService {
	sm.initialize()
	return sm.authService
}

func (sm *serviceManager) Complaint() ComplaintService {
	sm.initialize()
	return sm.complaintService
}

func (sm *serviceManager) Export() ExportService {
	sm.initialize()
	return sm.exportService
}
