package service

import (
	"context"

	"github.com/ngimenez/opoplan/internal/contract"
	"github.com/ngimenez/opoplan/internal/scheduler"
	"github.com/ngimenez/opoplan/internal/student"
)

type replanService struct {
	observer UseCaseObserver
}

func NewReplanService(observers ...UseCaseObserver) ReplanService {
	return &replanService{observer: useCaseObserverOrNoop(observers)}
}

func (s *replanService) Replan(ctx context.Context, req contract.ReplanRequest) (*contract.ReplanResponse, error) {
	run := startUseCase("plan.replan")

	resp, err := s.replan(req)
	if resp != nil {
		run.field("events_applied", resp.EventsApplied)
		run.field("required_delta_min", resp.RequiredDeltaMin)
		run.field("done_delta_min", resp.DoneDeltaMin)
		run.field("total_scheduled_min", resp.Plan.Debug.TotalScheduledMin)
	}
	run.finish(ctx, s.observer, err)

	return resp, err
}

func (s *replanService) replan(req contract.ReplanRequest) (*contract.ReplanResponse, error) {
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
	before := student.DeriveInitialState(req.Inputs, cap, today)
	after := student.ApplyFeedbackEvents(before, req.Events)
	plan := scheduler.GeneratePlanFromState(req.Inputs, &after, today)

	return &contract.ReplanResponse{
		Plan:             plan,
		StateBefore:      before,
		StateAfter:       after,
		RequiredDeltaMin: after.TotalRequired() - before.TotalRequired(),
		DoneDeltaMin:     after.TotalDone() - before.TotalDone(),
		SlackBefore:      before.Slack,
		SlackAfter:       after.Slack,
		EventsApplied:    len(req.Events),
	}, nil
}
