package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/testutil"
)

func TestReviewSeedsStatusFromCompletedFlag(t *testing.T) {
	store := setupTestStore(t)
	goals := []models.Goal{
		testutil.NewGoal("g1").Completed().Build(),
		testutil.NewGoal("g2").Build(),
	}
	startTestSprint(t, store, goals...)

	m := NewReviewModel(context.Background(), store, defaultTheme())
	if statusCycle[m.statusIdx[0]] != models.FinalCompleted {
		t.Fatalf("expected done goal seeded as completed")
	}
	if statusCycle[m.statusIdx[1]] != models.FinalNotDone {
		t.Fatalf("expected open goal seeded as not-done")
	}
}

func TestReviewCycleStatusAndRating(t *testing.T) {
	store := setupTestStore(t)
	startTestSprint(t, store)
	m := NewReviewModel(context.Background(), store, defaultTheme())

	m.row = 0
	before := m.statusIdx[0]
	m = m.cycle(true)
	if m.statusIdx[0] == before {
		t.Fatalf("expected status to advance")
	}
	m = m.cycle(false)
	if m.statusIdx[0] != before {
		t.Fatalf("expected status to cycle back")
	}

	m.row = m.rowCount() - 1
	for i := 0; i < 10; i++ {
		m = m.cycle(true)
	}
	if m.rating != 5 {
		t.Fatalf("expected rating capped at 5, got %d", m.rating)
	}
	for i := 0; i < 10; i++ {
		m = m.cycle(false)
	}
	if m.rating != 0 {
		t.Fatalf("expected rating floored at 0, got %d", m.rating)
	}
}

func TestReviewCompleteFinalizesSprint(t *testing.T) {
	store := setupTestStore(t)
	goals := []models.Goal{
		testutil.NewGoal("g1").Completed().Build(),
		testutil.NewGoal("g2").Build(),
	}
	startTestSprint(t, store, goals...)

	m := NewMainModel(context.Background(), store)
	m.state = StateReview
	m.review = NewReviewModel(context.Background(), store, defaultTheme())
	m.review.statusIdx[1] = 1 // partial
	m.review.rating = 4
	m.review.reflections[0].SetValue("Shipped the big feature")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	got := model.(MainModel)
	if got.state != StateHistory {
		t.Fatalf("expected history view after completion, got %v", got.state)
	}

	if store.Active() != nil {
		t.Fatalf("expected no active sprint after completion")
	}
	done := store.Completed()
	if len(done) != 1 {
		t.Fatalf("expected 1 completed sprint, got %d", len(done))
	}
	s := done[0]
	if s.Rating != 4 || s.Reflections.WentWell != "Shipped the big feature" {
		t.Fatalf("unexpected finalized sprint: %+v", s)
	}
	if s.Goals[0].FinalStatus != models.FinalCompleted || s.Goals[1].FinalStatus != models.FinalPartial {
		t.Fatalf("unexpected final statuses: %v / %v", s.Goals[0].FinalStatus, s.Goals[1].FinalStatus)
	}
	if s.FinalCompletionRate != 50 {
		t.Fatalf("expected 50%% completion rate, got %v", s.FinalCompletionRate)
	}
}

func TestReviewCompleteWithoutSprintReportsError(t *testing.T) {
	store := setupTestStore(t)
	m := NewReviewModel(context.Background(), store, defaultTheme())
	next, done := m.complete()
	if done {
		t.Fatalf("expected completion to fail")
	}
	if next.errMsg == "" {
		t.Fatalf("expected an error message")
	}
}
