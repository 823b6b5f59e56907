package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/complaint-service/internal/models"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, "test-secret", ttl), mr
}

func TestStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)
	ctx := context.Background()

	cookie, err := store.Create(ctx, Data{UserID: 7, RegNo: "21BCE1234", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Contains(t, cookie, ".")

	data, err := store.Get(ctx, cookie)
	require.NoError(t, err)
	assert.Equal(t, uint(7), data.UserID)
	assert.Equal(t, "21BCE1234", data.RegNo)
	assert.Equal(t, models.RoleStudent, data.Role)
}

func TestStore_TamperedCookieRejected(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)
	ctx := context.Background()

	cookie, err := store.Create(ctx, Data{UserID: 1, RegNo: "21BCE1234", Role: models.RoleStudent})
	require.NoError(t, err)

	token, _, _ := strings.Cut(cookie, ".")

	_, err = store.Get(ctx, token+".forged-signature")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStore_UnknownTokenIsNotFound(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)
	ctx := context.Background()

	cookie, err := store.Create(ctx, Data{UserID: 1, RegNo: "A", Role: models.RoleStudent})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, cookie))

	_, err = store.Get(ctx, cookie)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SlidingExpiry(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Minute)
	ctx := context.Background()

	cookie, err := store.Create(ctx, Data{UserID: 1, RegNo: "A", Role: models.RoleStudent})
	require.NoError(t, err)

	// 20 minutes of inactivity, then a request: the window restarts.
	mr.FastForward(20 * time.Minute)
	_, err = store.Get(ctx, cookie)
	require.NoError(t, err)

	// Another 20 minutes still lands inside the refreshed window.
	mr.FastForward(20 * time.Minute)
	_, err = store.Get(ctx, cookie)
	require.NoError(t, err)

	// 30 minutes of silence expires the session.
	mr.FastForward(31 * time.Minute)
	_, err = store.Get(ctx, cookie)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_DestroyUnknownCookieIsNoop(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Minute)

	assert.NoError(t, store.Destroy(context.Background(), "garbage"))
	assert.NoError(t, store.Destroy(context.Background(), ""))
}
