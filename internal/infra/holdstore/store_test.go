package holdstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, 5*time.Minute), mr
}

func testSlot() domain.Slot {
	return domain.Slot{
		HallID:      1,
		CourtNumber: 2,
		Date:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
	}
}

func TestStore_AcquireAndValidate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	hold, err := store.Acquire(ctx, testSlot())
	require.NoError(t, err)
	assert.NotEmpty(t, hold.Token)

	require.NoError(t, store.Validate(ctx, testSlot(), hold.Token))
	assert.ErrorIs(t, store.Validate(ctx, testSlot(), "чужой-токен"), ErrHoldNotFound)
}

func TestStore_AcquireHeldSlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Acquire(ctx, testSlot())
	require.NoError(t, err)

	_, err = store.Acquire(ctx, testSlot())
	assert.ErrorIs(t, err, ErrSlotHeld)

	// другой слот того же зала свободен
	other := testSlot()
	other.StartTime = "10:30"
	_, err = store.Acquire(ctx, other)
	assert.NoError(t, err)
}

func TestStore_HoldExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	hold, err := store.Acquire(ctx, testSlot())
	require.NoError(t, err)

	mr.FastForward(6 * time.Minute)

	assert.ErrorIs(t, store.Validate(ctx, testSlot(), hold.Token), ErrHoldNotFound)

	// истекший холд не мешает новому
	_, err = store.Acquire(ctx, testSlot())
	assert.NoError(t, err)
}

func TestStore_Release(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	hold, err := store.Acquire(ctx, testSlot())
	require.NoError(t, err)

	// чужой токен не снимает холд
	require.NoError(t, store.Release(ctx, testSlot(), "чужой-токен"))
	assert.ErrorIs(t, store.Validate(ctx, testSlot(), "чужой-токен"), ErrHoldNotFound)
	require.NoError(t, store.Validate(ctx, testSlot(), hold.Token))

	require.NoError(t, store.Release(ctx, testSlot(), hold.Token))
	_, err = store.Acquire(ctx, testSlot())
	assert.NoError(t, err)
}
