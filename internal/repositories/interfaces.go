package repositories

import (
	"context"

	"github.com/hosteldesk/complaint-service/internal/models"
)

// ===== SHARED ROW STRUCTS =====

// ComplaintWithStudent is one row of the technician listing: the complaint
// joined to the owning student record.
type ComplaintWithStudent struct {
	models.Complaint
	StudentRegNo string `json:"student_regno" gorm:"column:student_regno"`
}

// ===== REPOSITORY INTERFACES =====

// StudentRepository reads externally provisioned student accounts.
type StudentRepository interface {
	GetByRegNo(ctx context.Context, regno string) (*models.Student, error)
}

// TechnicianRepository reads externally provisioned technician accounts.
type TechnicianRepository interface {
	GetByRegNo(ctx context.Context, regno string) (*models.Technician, error)
}

// ComplaintRepository owns all access to the complaintdata table.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error

	// ListByOwner returns the owner's complaints newest-first.
	ListByOwner(ctx context.Context, regno string) ([]models.Complaint, error)

	// ListAllWithStudents returns every complaint joined to its student,
	// Unsolved before Solved, newest-first within each status group.
	ListAllWithStudents(ctx context.Context) ([]ComplaintWithStudent, error)

	// MarkSolved transitions the complaint to Solved. ownerRegNo restricts
	// the update to the owner's rows; empty means no ownership check
	// (technician path). Returns the number of rows affected.
	MarkSolved(ctx context.Context, id uint, ownerRegNo string) (int64, error)

	// DeleteByOwner removes the complaint only when owned by regno.
	// Returns the number of rows affected.
	DeleteByOwner(ctx context.Context, id uint, regno string) (int64, error)

	GetByID(ctx context.Context, id uint) (*models.Complaint, error)
}

// Repository aggregates the per-table repositories behind one handle.
type Repository interface {
	Student() StudentRepository
	Technician() TechnicianRepository
	Complaint() ComplaintRepository

	Ping(ctx context.Context) error
	Close() error
}
