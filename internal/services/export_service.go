package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/hosteldesk/complaint-service/internal/repositories"
)

const exportSheet = "Complaints"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportComplaints builds the technician report workbook: one row per
// complaint in the technician listing order.
func (s *exportService) ExportComplaints(ctx context.Context) (*excelize.File, error) {
	rows, err := s.repo.Complaint().ListAllWithStudents(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"ID", "RegNo", "Email", "Hostel", "Floor", "Room", "Phone", "Description", "Created At", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.ID,
			row.StudentRegNo,
			row.Email,
			row.Hostel,
			row.FloorNo,
			row.RoomNo,
			row.PhoneNo,
			row.Description,
			row.FormatCreatedAt(),
			string(row.Status),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	s.logger.Info("complaint export built", "rows", len(rows))
	return f, nil
}
