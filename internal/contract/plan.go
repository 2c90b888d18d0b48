package contract

import (
	"github.com/ngimenez/opoplan/internal/domain"
)

// PlanRequest asks for a fresh plan from form inputs. TodayISO pins the
// planning start for deterministic runs; nil means the current local day.
type PlanRequest struct {
	Inputs   domain.FormInputs
	TodayISO *string
}

// PlanResponse carries the generated plan together with the derived state
// and capacity it was built from.
type PlanResponse struct {
	Plan     domain.Plan
	State    domain.StudentState
	Capacity domain.PlanCapacity
}

// ReplanRequest folds feedback events over the initial state before
// regenerating the plan.
type ReplanRequest struct {
	Inputs   domain.FormInputs
	Events   []domain.FeedbackEvent
	TodayISO *string
}

// ReplanResponse reports the regenerated plan plus how the fold moved the
// state.
type ReplanResponse struct {
	Plan        domain.Plan
	StateBefore domain.StudentState
	StateAfter  domain.StudentState

	RequiredDeltaMin int
	DoneDeltaMin     int
	SlackBefore      domain.SlackInfo
	SlackAfter       domain.SlackInfo
	EventsApplied    int
}

// CapacityRequest assesses planable capacity without generating a plan.
type CapacityRequest struct {
	Inputs   domain.FormInputs
	TodayISO *string
}

type CapacityResponse struct {
	Capacity domain.PlanCapacity
}

// StateRequest derives student state, optionally after a feedback fold.
type StateRequest struct {
	Inputs   domain.FormInputs
	Events   []domain.FeedbackEvent
	TodayISO *string
}

type StateResponse struct {
	State    domain.StudentState
	Capacity domain.PlanCapacity
}

type PlanErrorCode string

const (
	ErrInvalidInputs PlanErrorCode = "INVALID_INPUTS"
	ErrInvalidEvent  PlanErrorCode = "INVALID_EVENT"
	ErrInvalidDate   PlanErrorCode = "INVALID_DATE"
	ErrInternal      PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
