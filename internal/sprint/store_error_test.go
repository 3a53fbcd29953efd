package sprint

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/storage"
)

var errDiskFull = errors.New("disk full")

func newMockedStore(t *testing.T, ctrl *gomock.Controller) (*Store, *MockGateway) {
	t.Helper()
	gw := NewMockGateway(ctrl)
	// Empty store on load.
	gw.EXPECT().Get(gomock.Any(), storage.KeyActiveSprint).Return("", false, nil)
	gw.EXPECT().Get(gomock.Any(), storage.KeyCompletedSprints).Return("", false, nil)
	gw.EXPECT().Get(gomock.Any(), storage.KeyDailyCheckins).Return("", false, nil)
	store := NewStore(context.Background(), gw, WithClock(newTestClock(date(2024, time.January, 3)).Now))
	return store, gw
}

func TestCreateSprintReportsPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, gw := newMockedStore(t, ctrl)

	gw.EXPECT().Set(gomock.Any(), storage.KeyActiveSprint, gomock.Any()).Return(errDiskFull)

	_, err := store.CreateSprint(context.Background(), "Midterms", date(2024, time.January, 1), 7, sampleGoals())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped persistence error, got %v", err)
	}
	// In-memory state keeps the new sprint; it diverges from disk until the
	// next successful write.
	if store.Active() == nil {
		t.Fatalf("expected in-memory active sprint despite write failure")
	}
}

func TestGatewayReadFailureLoadsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := NewMockGateway(ctrl)
	gw.EXPECT().Get(gomock.Any(), storage.KeyActiveSprint).Return("", false, errDiskFull)
	gw.EXPECT().Get(gomock.Any(), storage.KeyCompletedSprints).Return("", false, errDiskFull)
	gw.EXPECT().Get(gomock.Any(), storage.KeyDailyCheckins).Return("", false, errDiskFull)

	store := NewStore(context.Background(), gw, WithClock(newTestClock(date(2024, time.January, 1)).Now))
	if store.Active() != nil || len(store.Completed()) != 0 {
		t.Fatalf("gateway read failure must load as empty state")
	}
}

func TestSaveDailyUpdateStopsAfterCheckinWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, gw := newMockedStore(t, ctrl)

	gw.EXPECT().Set(gomock.Any(), storage.KeyActiveSprint, gomock.Any()).Return(nil)
	if _, err := store.CreateSprint(context.Background(), "Midterms", date(2024, time.January, 1), 7, sampleGoals()); err != nil {
		t.Fatalf("CreateSprint failed: %v", err)
	}

	// The checkin write fails; the goal merge must not run, so no second
	// Set on the active-sprint key is expected.
	gw.EXPECT().Set(gomock.Any(), storage.KeyDailyCheckins, gomock.Any()).Return(errDiskFull)

	checkin := models.DailyCheckin{GoalUpdates: []models.GoalUpdate{{GoalID: "g1", Completed: true, HoursWorked: 2}}}
	err := store.SaveDailyUpdate(context.Background(), "2024-01-03", checkin)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped persistence error, got %v", err)
	}
	if store.Active().Goals[0].ActualHours != 0 {
		t.Fatalf("goal merge must not run after checkin write failure")
	}
}

func TestCompleteSprintReportsClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, gw := newMockedStore(t, ctrl)

	gw.EXPECT().Set(gomock.Any(), storage.KeyActiveSprint, gomock.Any()).Return(nil)
	if _, err := store.CreateSprint(context.Background(), "Midterms", date(2024, time.January, 1), 7, sampleGoals()); err != nil {
		t.Fatalf("CreateSprint failed: %v", err)
	}

	gw.EXPECT().Set(gomock.Any(), storage.KeyCompletedSprints, gomock.Any()).Return(nil)
	gw.EXPECT().Remove(gomock.Any(), storage.KeyActiveSprint).Return(errDiskFull)

	done, err := store.CompleteSprint(context.Background(), nil, models.Reflections{}, 0)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped persistence error, got %v", err)
	}
	// The finalized record made it into history even though the stale
	// active-sprint key lingers on disk.
	if len(store.Completed()) != 1 || store.Completed()[0].ID != done.ID {
		t.Fatalf("expected finalized sprint in history, got %+v", store.Completed())
	}
	if store.Active() != nil {
		t.Fatalf("active slot must be cleared in memory")
	}
}
