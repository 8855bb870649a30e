package checkout

import (
	"errors"

	"enrollment-app/internal/domain/plans"
)

var (
	// ErrNoPlanSelected is the user-visible validation condition for trying
	// to continue without a chosen plan.
	ErrNoPlanSelected = errors.New("please select a plan to continue")

	// ErrUnknownPlan means the id is not in this client's catalog copy.
	ErrUnknownPlan = errors.New("selected plan is not available")
)

// Selection tracks which plan is chosen and whether the full catalog is
// expanded. It is per-session state, driven by one event loop, and is never
// persisted.
type Selection struct {
	catalog *plans.Catalog
	planID  uint // 0 means nothing selected
	showAll bool
}

func NewSelection(catalog *plans.Catalog) *Selection {
	return &Selection{catalog: catalog}
}

// Select chooses a plan. Re-selecting the current plan keeps it selected;
// there is no toggle-off.
func (s *Selection) Select(planID uint) error {
	if _, ok := s.catalog.Get(planID); !ok {
		return ErrUnknownPlan
	}
	s.planID = planID
	return nil
}

func (s *Selection) SelectedPlan() (plans.Plan, bool) {
	if s.planID == 0 {
		return plans.Plan{}, false
	}
	return s.catalog.Get(s.planID)
}

// ToggleOptions expands or collapses the non-primary plans. It never touches
// the current selection, so a plan chosen from the expanded list stays chosen
// after collapsing.
func (s *Selection) ToggleOptions() {
	s.showAll = !s.showAll
}

func (s *Selection) ShowingAllOptions() bool {
	return s.showAll
}

// VisiblePlans is the display subset: the first and last plan when collapsed
// (pay-in-full and monthly), everything when expanded.
func (s *Selection) VisiblePlans() []plans.Plan {
	all := s.catalog.All()
	if s.showAll || len(all) <= 2 {
		return all
	}
	return []plans.Plan{all[0], all[len(all)-1]}
}

// AdvanceToPayment gates the step into the payment form. Returning from
// payment to selection later is non-destructive: the Selection keeps its
// plan.
func (s *Selection) AdvanceToPayment() (plans.Plan, error) {
	p, ok := s.SelectedPlan()
	if !ok {
		return plans.Plan{}, ErrNoPlanSelected
	}
	return p, nil
}
