package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hosteldesk/complaint-service/internal/events"
	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
)

type complaintService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
}

func NewComplaintService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) ComplaintService {
	return &complaintService{
		repo:           repo,
		eventPublisher: publisher,
		logger:         logger,
	}
}

// Submit creates a complaint owned by the session identity. The status and
// creation timestamp are server-assigned.
func (s *complaintService) Submit(ctx context.Context, identity Identity, req *CreateComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		RegNo:       identity.RegNo,
		Email:       req.Email,
		Hostel:      req.Hostel,
		FloorNo:     req.FloorNo,
		RoomNo:      req.RoomNo,
		PhoneNo:     req.PhoneNo,
		Description: req.Description,
		Status:      models.StatusUnsolved,
	}

	if err := s.repo.Complaint().Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.ComplaintCreated, complaint, identity)
	return complaint, nil
}

func (s *complaintService) ListForStudent(ctx context.Context, regno string) ([]models.Complaint, error) {
	return s.repo.Complaint().ListByOwner(ctx, regno)
}

func (s *complaintService) ListForTechnician(ctx context.Context) ([]repositories.ComplaintWithStudent, error) {
	return s.repo.Complaint().ListAllWithStudents(ctx)
}

// MarkSolved applies the one-way Unsolved -> Solved transition. The student
// path is restricted to the caller's own rows; technicians solve any row.
func (s *complaintService) MarkSolved(ctx context.Context, identity Identity, id uint) error {
	ownerRegNo := identity.RegNo
	if identity.Role == models.RoleTechnician {
		ownerRegNo = ""
	}

	affected, err := s.repo.Complaint().MarkSolved(ctx, id, ownerRegNo)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrComplaintNotFound
	}

	s.publishEvent(ctx, events.ComplaintSolved, &models.Complaint{ID: id}, identity)
	return nil
}

// Delete removes the caller's own complaint.
func (s *complaintService) Delete(ctx context.Context, identity Identity, id uint) error {
	affected, err := s.repo.Complaint().DeleteByOwner(ctx, id, identity.RegNo)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrComplaintNotFound
	}

	s.publishEvent(ctx, events.ComplaintDeleted, &models.Complaint{ID: id, RegNo: identity.RegNo}, identity)
	return nil
}

// publishEvent emits a lifecycle event. Publish failures are logged and
// swallowed; the request already committed.
func (s *complaintService) publishEvent(ctx context.Context, eventType string, complaint *models.Complaint, identity Identity) {
	if s.eventPublisher == nil {
		return
	}
	payload := events.ComplaintEvent{
		ComplaintID: complaint.ID,
		RegNo:       complaint.RegNo,
		Hostel:      complaint.Hostel,
		Actor:       identity.RegNo,
		ActorRole:   string(identity.Role),
	}
	if err := s.eventPublisher.Publish(ctx, eventType, payload); err != nil {
		s.logger.Error("event publish failed", "type", eventType, "error", fmt.Sprint(err))
	}
}
