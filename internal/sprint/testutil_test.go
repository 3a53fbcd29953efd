package sprint

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/sprintplanner/internal/storage"
)

// testClock hands out strictly increasing instants so ids and timestamps
// stay distinct within a test.
type testClock struct {
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.now = t
}

func setupTestGateway(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestStore(t *testing.T, clock *testClock) (*Store, *storage.DB) {
	t.Helper()
	db := setupTestGateway(t)
	store := NewStore(context.Background(), db, WithClock(clock.Now))
	return store, db
}
