package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hosteldesk/complaint-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	student    repositories.StudentRepository
	technician repositories.TechnicianRepository
	complaint  repositories.ComplaintRepository
}

// NewPostgreSQLRepository creates the repository manager with all
// sub-repositories sharing one pooled GORM handle.
func NewPostgreSQLRepository(db *gorm.DB) repositories.Repository {
	return &PostgreSQLRepository{
		db:         db,
		student:    NewStudentPostgreSQL(db),
		technician: NewTechnicianPostgreSQL(db),
		complaint:  NewComplaintPostgreSQL(db),
	}
}

func (r *PostgreSQLRepository) Student() repositories.StudentRepository {
	return r.student
}

func (r *PostgreSQLRepository) Technician() repositories.TechnicianRepository {
	return r.technician
}

func (r *PostgreSQLRepository) Complaint() repositories.ComplaintRepository {
	return r.complaint
}

// Ping verifies the underlying connection pool is reachable.
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
