package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
	"github.com/hosteldesk/complaint-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

// Login authenticates against the role's account table. The registration
// number is uppercased before the case-insensitive lookup.
func (s *authService) Login(ctx context.Context, role models.UserRole, req *LoginRequest) (*Identity, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, ErrUserNotFound
	}

	regno := models.NormalizeRegNo(req.Username)

	var (
		id       uint
		stored   string
		regnoRow string
	)
	switch role {
	case models.RoleTechnician:
		technician, err := s.repo.Technician().GetByRegNo(ctx, regno)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("technician lookup failed: %w", err)
		}
		id, stored, regnoRow = technician.ID, technician.Password, technician.RegNo
	default:
		student, err := s.repo.Student().GetByRegNo(ctx, regno)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("student lookup failed: %w", err)
		}
		id, stored, regnoRow = student.ID, student.Password, student.RegNo
	}

	if !passwordMatches(stored, req.Password) {
		s.logger.Warn("login rejected", "regno", regno, "role", role)
		return nil, ErrIncorrectPassword
	}

	s.logger.Info("login accepted", "regno", regno, "role", role)
	return &Identity{UserID: id, RegNo: regnoRow, Role: role}, nil
}

// passwordMatches checks the stored credential. Rows migrated to bcrypt are
// compared with CompareHashAndPassword; legacy plaintext rows compare by
// direct equality, which is the documented as-is contract of this system.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}
