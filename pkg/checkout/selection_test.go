package checkout

import (
	"errors"
	"testing"

	"enrollment-app/internal/domain/plans"
)

func TestSelectIsIdempotent(t *testing.T) {
	s := NewSelection(plans.Default())

	if err := s.Select(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Select(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok := s.SelectedPlan()
	if !ok || p.ID != 2 {
		t.Fatalf("expected plan 2 to remain selected, got %+v ok=%v", p, ok)
	}
}

func TestSelectUnknownPlan(t *testing.T) {
	s := NewSelection(plans.Default())

	if err := s.Select(99); !errors.Is(err, ErrUnknownPlan) {
		t.Fatalf("expected ErrUnknownPlan, got %v", err)
	}
	if _, ok := s.SelectedPlan(); ok {
		t.Fatal("failed select must not change state")
	}
}

func TestAdvanceToPaymentRequiresSelection(t *testing.T) {
	s := NewSelection(plans.Default())

	if _, err := s.AdvanceToPayment(); !errors.Is(err, ErrNoPlanSelected) {
		t.Fatalf("expected ErrNoPlanSelected, got %v", err)
	}

	if err := s.Select(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := s.AdvanceToPayment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected plan 1, got %d", p.ID)
	}
}

func TestToggleOptionsPreservesSelection(t *testing.T) {
	s := NewSelection(plans.Default())

	if err := s.Select(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.ToggleOptions()
	if !s.ShowingAllOptions() {
		t.Fatal("expected options expanded")
	}
	s.ToggleOptions()
	if s.ShowingAllOptions() {
		t.Fatal("expected options collapsed")
	}

	p, ok := s.SelectedPlan()
	if !ok || p.ID != 3 {
		t.Fatal("toggling options must not affect selection")
	}
}

func TestVisiblePlans(t *testing.T) {
	s := NewSelection(plans.Default())

	collapsed := s.VisiblePlans()
	if len(collapsed) != 2 {
		t.Fatalf("expected 2 visible plans collapsed, got %d", len(collapsed))
	}
	if collapsed[0].ID != 1 || collapsed[1].ID != 4 {
		t.Fatalf("expected first and last plan, got %d and %d", collapsed[0].ID, collapsed[1].ID)
	}

	s.ToggleOptions()
	if got := len(s.VisiblePlans()); got != 4 {
		t.Fatalf("expected all 4 plans expanded, got %d", got)
	}
}
