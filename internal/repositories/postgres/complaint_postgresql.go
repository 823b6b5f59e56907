package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
)

type ComplaintPostgreSQL struct {
	db *gorm.DB
}

func NewComplaintPostgreSQL(db *gorm.DB) repositories.ComplaintRepository {
	return &ComplaintPostgreSQL{db: db}
}

// Create inserts a new complaint. Status and created_at defaults come from
// the model, not the caller.
func (c *ComplaintPostgreSQL) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusUnsolved
	}
	if err := c.db.WithContext(ctx).Create(complaint).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's complaints newest-first.
func (c *ComplaintPostgreSQL) ListByOwner(ctx context.Context, regno string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := c.db.WithContext(ctx).
		Where("UPPER(regno) = ?", models.NormalizeRegNo(regno)).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// ListAllWithStudents joins every complaint to its owning student record.
// Unsolved rows come first; within each status group the newest complaint
// leads.
func (c *ComplaintPostgreSQL) ListAllWithStudents(ctx context.Context) ([]repositories.ComplaintWithStudent, error) {
	var rows []repositories.ComplaintWithStudent
	err := c.db.WithContext(ctx).
		Table("complaintdata").
		Select("complaintdata.*, students.regno AS student_regno").
		Joins("JOIN students ON UPPER(complaintdata.regno) = UPPER(students.regno)").
		Order("CASE WHEN complaintdata.status = 'Unsolved' THEN 0 ELSE 1 END").
		Order("complaintdata.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints with students: %w", err)
	}
	return rows, nil
}

// MarkSolved sets status to Solved. With ownerRegNo set the update only
// touches that owner's rows; with it empty any row matches (technician path).
func (c *ComplaintPostgreSQL) MarkSolved(ctx context.Context, id uint, ownerRegNo string) (int64, error) {
	query := c.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id)
	if ownerRegNo != "" {
		query = query.Where("UPPER(regno) = ?", models.NormalizeRegNo(ownerRegNo))
	}

	result := query.Update("status", models.StatusSolved)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark complaint solved: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByOwner removes the complaint only when regno owns it.
func (c *ComplaintPostgreSQL) DeleteByOwner(ctx context.Context, id uint, regno string) (int64, error) {
	result := c.db.WithContext(ctx).
		Where("id = ? AND UPPER(regno) = ?", id, models.NormalizeRegNo(regno)).
		Delete(&models.Complaint{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (c *ComplaintPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := c.db.WithContext(ctx).First(&complaint, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return &complaint, nil
}
