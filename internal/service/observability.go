package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// UseCaseEvent is the telemetry record for one service call: which use
// case ran under which run id, how long it took, and the domain fields
// the call site attached (buffer status, scheduled minutes, events
// applied, slack tier).
type UseCaseEvent struct {
	UseCase  string
	RunID    string
	Duration time.Duration
	Success  bool
	Err      error
	Fields   []any // alternating key/value pairs, slog-style
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// useCaseRun times one service call and accumulates telemetry fields at
// the sites that know them. Every run gets its own id so plan, replan and
// state calls belonging to one CLI invocation stay distinguishable in the
// log stream.
type useCaseRun struct {
	useCase string
	runID   string
	started time.Time
	fields  []any
}

func startUseCase(name string) *useCaseRun {
	return &useCaseRun{
		useCase: name,
		runID:   uuid.New().String(),
		started: time.Now(),
	}
}

func (r *useCaseRun) field(key string, value any) {
	r.fields = append(r.fields, key, value)
}

func (r *useCaseRun) finish(ctx context.Context, obs UseCaseObserver, err error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		UseCase:  r.useCase,
		RunID:    r.runID,
		Duration: time.Since(r.started),
		Success:  err == nil,
		Err:      err,
		Fields:   r.fields,
	})
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 10+len(event.Fields))
	attrs = append(attrs,
		"use_case", event.UseCase,
		"run_id", event.RunID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	attrs = append(attrs, event.Fields...)
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
