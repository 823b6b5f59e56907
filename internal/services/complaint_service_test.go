package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hosteldesk/complaint-service/internal/events"
	"github.com/hosteldesk/complaint-service/internal/models"
)

func newTestComplaintService(t *testing.T) (ComplaintService, *gorm.DB, *events.MockEventPublisher) {
	repo, db := newTestRepo(t)
	publisher := events.NewMockEventPublisher(nil)
	return NewComplaintService(repo, publisher, testLogger()), db, publisher
}

func studentIdentity(regno string) Identity {
	return Identity{UserID: 1, RegNo: regno, Role: models.RoleStudent}
}

func technicianIdentity() Identity {
	return Identity{UserID: 9, RegNo: "TECH01", Role: models.RoleTechnician}
}

func TestComplaintService_Submit(t *testing.T) {
	svc, db, publisher := newTestComplaintService(t)

	complaint, err := svc.Submit(context.Background(), studentIdentity("21BCE1234"), &CreateComplaintRequest{
		Email:       "me@example.com",
		Hostel:      "A Block",
		FloorNo:     "2",
		RoomNo:      "214",
		PhoneNo:     "9813081155",
		Description: "leaking tap",
	})
	require.NoError(t, err)

	// Ownership comes from the session identity, status and timestamp from
	// the server.
	var stored models.Complaint
	require.NoError(t, db.First(&stored, complaint.ID).Error)
	assert.Equal(t, "21BCE1234", stored.RegNo)
	assert.Equal(t, models.StatusUnsolved, stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.ComplaintCreated, published[0].Type)
}

func TestComplaintService_MarkSolved_StudentOwnership(t *testing.T) {
	svc, db, publisher := newTestComplaintService(t)
	c := models.Complaint{RegNo: "21BCE1234", Status: models.StatusUnsolved, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&c).Error)

	// Someone else's complaint is a 404, and the row stays Unsolved.
	err := svc.MarkSolved(context.Background(), studentIdentity("INTRUDER"), c.ID)
	assert.ErrorIs(t, err, ErrComplaintNotFound)

	var stored models.Complaint
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, models.StatusUnsolved, stored.Status)
	assert.Empty(t, publisher.GetPublishedEvents())

	// The owner's transition lands.
	require.NoError(t, svc.MarkSolved(context.Background(), studentIdentity("21bce1234"), c.ID))
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, models.StatusSolved, stored.Status)

	// Re-solving is a no-op state-wise but still succeeds for the caller.
	require.NoError(t, svc.MarkSolved(context.Background(), studentIdentity("21BCE1234"), c.ID))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, events.ComplaintSolved, published[0].Type)
}

func TestComplaintService_MarkSolved_TechnicianAnyRow(t *testing.T) {
	svc, db, _ := newTestComplaintService(t)
	c := models.Complaint{RegNo: "21BCE1234", Status: models.StatusUnsolved, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&c).Error)

	require.NoError(t, svc.MarkSolved(context.Background(), technicianIdentity(), c.ID))

	var stored models.Complaint
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, models.StatusSolved, stored.Status)

	err := svc.MarkSolved(context.Background(), technicianIdentity(), 9999)
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}

func TestComplaintService_Delete(t *testing.T) {
	svc, db, publisher := newTestComplaintService(t)
	c := models.Complaint{RegNo: "21BCE1234", Status: models.StatusUnsolved, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&c).Error)

	// Non-owned delete is a 404 and leaves the row present.
	err := svc.Delete(context.Background(), studentIdentity("INTRUDER"), c.ID)
	assert.ErrorIs(t, err, ErrComplaintNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Complaint{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.Delete(context.Background(), studentIdentity("21BCE1234"), c.ID))
	require.NoError(t, db.Model(&models.Complaint{}).Count(&count).Error)
	assert.Zero(t, count)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.ComplaintDeleted, published[0].Type)
}

func TestComplaintService_Listings(t *testing.T) {
	svc, db, _ := newTestComplaintService(t)
	require.NoError(t, db.Create(&models.Student{RegNo: "21BCE1234", Password: "x"}).Error)
	now := time.Now()

	require.NoError(t, db.Create(&models.Complaint{RegNo: "21BCE1234", Status: models.StatusSolved, CreatedAt: now.Add(-3 * time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Complaint{RegNo: "21BCE1234", Status: models.StatusUnsolved, CreatedAt: now.Add(-2 * time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Complaint{RegNo: "21BCE1234", Status: models.StatusUnsolved, CreatedAt: now.Add(-1 * time.Hour)}).Error)

	own, err := svc.ListForStudent(context.Background(), "21BCE1234")
	require.NoError(t, err)
	require.Len(t, own, 3)
	assert.True(t, own[0].CreatedAt.After(own[1].CreatedAt))

	all, err := svc.ListForTechnician(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, models.StatusUnsolved, all[0].Status)
	assert.Equal(t, models.StatusUnsolved, all[1].Status)
	assert.Equal(t, models.StatusSolved, all[2].Status)
}
