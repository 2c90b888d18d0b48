package service

import (
	"context"

	"github.com/ngimenez/opoplan/internal/contract"
	"github.com/ngimenez/opoplan/internal/scheduler"
	"github.com/ngimenez/opoplan/internal/student"
)

// statusService answers the read-only capacity and state questions.
type statusService struct {
	observer UseCaseObserver
}

func NewCapacityService(observers ...UseCaseObserver) CapacityService {
	return &statusService{observer: useCaseObserverOrNoop(observers)}
}

func NewStateService(observers ...UseCaseObserver) StateService {
	return &statusService{observer: useCaseObserverOrNoop(observers)}
}

func (s *statusService) Assess(ctx context.Context, req contract.CapacityRequest) (*contract.CapacityResponse, error) {
	run := startUseCase("plan.capacity")

	resp, err := s.assess(req)
	if resp != nil {
		run.field("buffer_status", string(resp.Capacity.BufferStatus))
		run.field("buffer_min", resp.Capacity.BufferMin)
	}
	run.finish(ctx, s.observer, err)

	return resp, err
}

func (s *statusService) assess(req contract.CapacityRequest) (*contract.CapacityResponse, error) {
	if err := validateInputs(req.Inputs); err != nil {
		return nil, err
	}
	today, err := resolveToday(req.TodayISO)
	if err != nil {
		return nil, err
	}
	return &contract.CapacityResponse{Capacity: scheduler.CalculateCapacity(req.Inputs, today)}, nil
}

func (s *statusService) Derive(ctx context.Context, req contract.StateRequest) (*contract.StateResponse, error) {
	run := startUseCase("plan.state")

	resp, err := s.derive(req)
	if resp != nil {
		run.field("events_applied", len(req.Events))
		run.field("slack_status", string(resp.State.Slack.Status))
	}
	run.finish(ctx, s.observer, err)

	return resp, err
}

func (s *statusService) derive(req contract.StateRequest) (*contract.StateResponse, error) {
	if err := validateInputs(req.Inputs); err != nil {
		return nil, err
	}
	if err := validateEvents(req.Events); err != nil {
		return nil, err
	}
	today, err := resolveToday(req.TodayISO)
	if err != nil {
		return nil, err
	}

	cap := scheduler.CalculateCapacity(req.Inputs, today)
	state := student.DeriveInitialState(req.Inputs, cap, today)
	if len(req.Events) > 0 {
		state = student.ApplyFeedbackEvents(state, req.Events)
	}

	return &contract.StateResponse{State: state, Capacity: cap}, nil
}
