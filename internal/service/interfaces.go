package service

import (
	"context"

	"github.com/ngimenez/opoplan/internal/contract"
)

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type ReplanService interface {
	Replan(ctx context.Context, req contract.ReplanRequest) (*contract.ReplanResponse, error)
}

type CapacityService interface {
	Assess(ctx context.Context, req contract.CapacityRequest) (*contract.CapacityResponse, error)
}

type StateService interface {
	Derive(ctx context.Context, req contract.StateRequest) (*contract.StateResponse, error)
}
