package service

import (
	"context"

	"github.com/ngimenez/opoplan/internal/contract"
	"github.com/ngimenez/opoplan/internal/scheduler"
	"github.com/ngimenez/opoplan/internal/student"
)

type planService struct {
	observer UseCaseObserver
}

func NewPlanService(observers ...UseCaseObserver) PlanService {
	return &planService{observer: useCaseObserverOrNoop(observers)}
}

func (s *planService) Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	run := startUseCase("plan.generate")

	resp, err := s.generate(req)
	if resp != nil {
		run.field("total_scheduled_min", resp.Plan.Debug.TotalScheduledMin)
		run.field("buffer_status", string(resp.Capacity.BufferStatus))
		run.field("planning_weeks", resp.Capacity.EffectivePlanningWeeks)
	}
	run.finish(ctx, s.observer, err)

	return resp, err
}

func (s *planService) generate(req contract.PlanRequest) (*contract.PlanResponse, error) {
	if err := validateInputs(req.Inputs); err != nil {
		return nil, err
	}
	today, err := resolveToday(req.TodayISO)
	if err != nil {
		return nil, err
	}

	cap := scheduler.CalculateCapacity(req.Inputs, today)
	state := student.DeriveInitialState(req.Inputs, cap, today)
	plan := scheduler.GeneratePlanFromState(req.Inputs, &state, today)

	return &contract.PlanResponse{Plan: plan, State: state, Capacity: cap}, nil
}
