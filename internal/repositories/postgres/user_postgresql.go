package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
)

type StudentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db}
}

// GetByRegNo looks up a student by case-insensitive registration number.
// Returns gorm.ErrRecordNotFound when no account matches.
func (s *StudentPostgreSQL) GetByRegNo(ctx context.Context, regno string) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).
		Where("UPPER(regno) = ?", models.NormalizeRegNo(regno)).
		First(&student).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

type TechnicianPostgreSQL struct {
	db *gorm.DB
}

func NewTechnicianPostgreSQL(db *gorm.DB) repositories.TechnicianRepository {
	return &TechnicianPostgreSQL{db: db}
}

func (t *TechnicianPostgreSQL) GetByRegNo(ctx context.Context, regno string) (*models.Technician, error) {
	var technician models.Technician
	err := t.db.WithContext(ctx).
		Where("UPPER(regno) = ?", models.NormalizeRegNo(regno)).
		First(&technician).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}
	return &technician, nil
}
