package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories"
	"github.com/hosteldesk/complaint-service/internal/repositories/postgres"
	"github.com/hosteldesk/complaint-service/internal/validator"
)

func newTestRepo(t *testing.T) (repositories.Repository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.Technician{}, &models.Complaint{}))
	return postgres.NewPostgreSQLRepository(db), db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestAuthService(t *testing.T) (AuthService, *gorm.DB) {
	repo, db := newTestRepo(t)
	return NewAuthService(repo, testLogger(), validator.New()), db
}

func TestAuthService_Login_Student(t *testing.T) {
	svc, db := newTestAuthService(t)
	require.NoError(t, db.Create(&models.Student{RegNo: "21bce1234", Password: "secret"}).Error)

	// Input is normalized to uppercase and matched case-insensitively
	// against storage.
	identity, err := svc.Login(context.Background(), models.RoleStudent, &LoginRequest{
		Username: "21bce1234",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "21bce1234", identity.RegNo)
	assert.Equal(t, models.RoleStudent, identity.Role)
	assert.NotZero(t, identity.UserID)

	identity, err = svc.Login(context.Background(), models.RoleStudent, &LoginRequest{
		Username: "21BCE1234",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "21bce1234", identity.RegNo)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.RoleStudent, &LoginRequest{
		Username: "NOBODY",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, db := newTestAuthService(t)
	require.NoError(t, db.Create(&models.Student{RegNo: "21BCE1234", Password: "secret"}).Error)

	_, err := svc.Login(context.Background(), models.RoleStudent, &LoginRequest{
		Username: "21BCE1234",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.RoleStudent, &LoginRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_Technician(t *testing.T) {
	svc, db := newTestAuthService(t)
	require.NoError(t, db.Create(&models.Technician{RegNo: "TECH01", Password: "toolbox"}).Error)
	require.NoError(t, db.Create(&models.Student{RegNo: "TECH01", Password: "different"}).Error)

	// Each role authenticates against its own table.
	identity, err := svc.Login(context.Background(), models.RoleTechnician, &LoginRequest{
		Username: "tech01",
		Password: "toolbox",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, identity.Role)

	_, err = svc.Login(context.Background(), models.RoleTechnician, &LoginRequest{
		Username: "tech01",
		Password: "different",
	})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestAuthService_Login_BcryptMigratedRow(t *testing.T) {
	svc, db := newTestAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Student{RegNo: "21BCE9999", Password: string(hash)}).Error)

	_, err = svc.Login(context.Background(), models.RoleStudent, &LoginRequest{
		Username: "21BCE9999",
		Password: "hunter2",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), models.RoleStudent, &LoginRequest{
		Username: "21BCE9999",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}
