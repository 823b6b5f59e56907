package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
	"github.com/hosteldesk/complaint-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use request DTO types from the validator package.
type LoginRequest = validator.LoginRequest
type CreateComplaintRequest = validator.ComplaintCreateRequest

// Identity is the authenticated caller, as stored in the session.
type Identity struct {
	UserID uint            `json:"user_id"`
	RegNo  string          `json:"regno"`
	Role   models.UserRole `json:"role"`
}

// ===== SERVICE INTERFACES =====

// AuthService authenticates students and technicians against their tables.
type AuthService interface {
	// Login normalizes the registration number to uppercase, looks the
	// account up case-insensitively in the role's table and checks the
	// password. Failures are ErrUserNotFound or ErrIncorrectPassword.
	Login(ctx context.Context, role models.UserRole, req *LoginRequest) (*Identity, error)
}

// ComplaintService owns the complaint lifecycle.
type ComplaintService interface {
	// Submit creates a complaint owned by the caller's registration number.
	// Ownership always comes from the session identity, never the form.
	Submit(ctx context.Context, identity Identity, req *CreateComplaintRequest) (*models.Complaint, error)

	// ListForStudent returns the student's own complaints newest-first.
	ListForStudent(ctx context.Context, regno string) ([]models.Complaint, error)

	// ListForTechnician returns every complaint joined with its student,
	// Unsolved first, newest-first within each group.
	ListForTechnician(ctx context.Context) ([]repositories.ComplaintWithStudent, error)

	// MarkSolved transitions the complaint to Solved. Students may only
	// solve their own complaints; technicians may solve any. Zero rows
	// affected is ErrComplaintNotFound.
	MarkSolved(ctx context.Context, identity Identity, id uint) error

	// Delete removes the caller's complaint. Zero rows affected is
	// ErrComplaintNotFound. Technicians have no delete.
	Delete(ctx context.Context, identity Identity, id uint) error
}

// ExportService produces the technician XLSX report.
type ExportService interface {
	ExportComplaints(ctx context.Context) (*excelize.File, error)
}

// ServiceManager aggregates all services for the handler layer.
type ServiceManager interface {
	Auth() AuthService
	Complaint() ComplaintService
	Export() ExportService
}
