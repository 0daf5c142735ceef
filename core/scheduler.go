package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Action names a power transition requested by the scheduler
type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

// Report describes the outcome of one handler invocation
type Report struct {
	Action      Action
	ClientName  string
	InstanceIDs []string
	Message     string
}

// Count returns the number of instances the transition was requested for
func (r Report) Count() int {
	return len(r.InstanceIDs)
}

// Scheduler toggles the power state of the instances tagged for one client
type Scheduler struct {
	provider   Provider
	guard      GroupGuard
	tagKey     string
	clientName string
	logger     zerolog.Logger
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithTagKey overrides the tag key holding the client name
func WithTagKey(tagKey string) Option {
	return func(s *Scheduler) {
		if tagKey != "" {
			s.tagKey = tagKey
		}
	}
}

// WithGroupGuard suspends scaling group processes before stopping and resumes them after starting
func WithGroupGuard(guard GroupGuard) Option {
	return func(s *Scheduler) {
		s.guard = guard
	}
}

// WithLogger sets the logger the per-invocation report line is written to
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a scheduler for clientName backed by provider
func NewScheduler(provider Provider, clientName string, opts ...Option) *Scheduler {
	s := &Scheduler{
		provider:   provider,
		tagKey:     DefaultTagKey,
		clientName: clientName,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClientName returns the tag value the scheduler selects instances by
func (s *Scheduler) ClientName() string {
	return s.clientName
}

// StartStoppedInstances starts every stopped instance tagged for the client.
// No start request is sent when nothing matches.
func (s *Scheduler) StartStoppedInstances(ctx context.Context) (Report, error) {
	report := Report{Action: ActionStart, ClientName: s.clientName}

	ids, err := s.provider.ListInstances(ctx, NewInstanceFilter(s.tagKey, s.clientName, StateStopped))
	if err != nil {
		return report, fmt.Errorf("failed to list stopped %s instances: %w", s.clientName, err)
	}

	if len(ids) == 0 {
		report.Message = fmt.Sprintf("No %s instances are stopped", s.clientName)
		s.log(ctx, report)
		return report, nil
	}

	if err := s.provider.StartInstances(ctx, ids); err != nil {
		return report, fmt.Errorf("failed to start %s instances: %w", s.clientName, err)
	}
	report.InstanceIDs = ids
	report.Message = fmt.Sprintf("Starting %d %s instances with ID - %v", len(ids), s.clientName, ids)
	s.log(ctx, report)

	if s.guard != nil {
		if err := s.resumeGroups(ctx, ids); err != nil {
			return report, err
		}
	}
	return report, nil
}

// StopRunningInstances stops every running instance tagged for the client.
// No stop request is sent when nothing matches.
func (s *Scheduler) StopRunningInstances(ctx context.Context) (Report, error) {
	report := Report{Action: ActionStop, ClientName: s.clientName}

	ids, err := s.provider.ListInstances(ctx, NewInstanceFilter(s.tagKey, s.clientName, StateRunning))
	if err != nil {
		return report, fmt.Errorf("failed to list running %s instances: %w", s.clientName, err)
	}

	if len(ids) == 0 {
		report.Message = fmt.Sprintf("No %s instances are not running", s.clientName)
		s.log(ctx, report)
		return report, nil
	}

	// groups must stop health checking before the instances go down or they get replaced
	if s.guard != nil {
		groups, err := s.guard.SuspendGroups(ctx, s.tagKey, s.clientName)
		if err != nil {
			return report, fmt.Errorf("failed to suspend %s scaling groups: %w", s.clientName, err)
		}
		s.logGroups(ctx, "suspended scaling processes", groups)
	}

	if err := s.provider.StopInstances(ctx, ids); err != nil {
		if s.guard != nil {
			s.restoreGroups(ctx)
		}
		return report, fmt.Errorf("failed to stop %s instances: %w", s.clientName, err)
	}
	report.InstanceIDs = ids

	report.Message = fmt.Sprintf("Shutting down %d %s instances with ID - %v", len(ids), s.clientName, ids)
	s.log(ctx, report)
	return report, nil
}

// Run dispatches to the handler for action
func (s *Scheduler) Run(ctx context.Context, action Action) (Report, error) {
	switch action {
	case ActionStart:
		return s.StartStoppedInstances(ctx)
	case ActionStop:
		return s.StopRunningInstances(ctx)
	default:
		return Report{Action: action, ClientName: s.clientName}, fmt.Errorf("unknown action %q", action)
	}
}

// loggerFrom prefers a logger carried by ctx, e.g. one tagged with a request ID
func (s *Scheduler) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

// resumeGroups waits for the started instances to run before resuming health checks.
// A group replaces an instance that is still pending once HealthCheck is back.
func (s *Scheduler) resumeGroups(ctx context.Context, ids []string) error {
	if err := s.guard.AwaitRunning(ctx, ids); err != nil {
		return fmt.Errorf("%s instances did not reach running, scaling groups left suspended: %w", s.clientName, err)
	}

	groups, err := s.guard.ResumeGroups(ctx, s.tagKey, s.clientName)
	if err != nil {
		return fmt.Errorf("failed to resume %s scaling groups: %w", s.clientName, err)
	}
	s.logGroups(ctx, "resumed scaling processes", groups)
	return nil
}

// restoreGroups resumes the groups suspended for a stop that was rejected
func (s *Scheduler) restoreGroups(ctx context.Context) {
	groups, err := s.guard.ResumeGroups(ctx, s.tagKey, s.clientName)
	if err != nil {
		s.loggerFrom(ctx).Warn().Err(err).Str("client", s.clientName).
			Msg("stop failed and scaling processes could not be resumed, groups remain suspended")
		return
	}
	s.logGroups(ctx, "resumed scaling processes after failed stop", groups)
}

func (s *Scheduler) log(ctx context.Context, report Report) {
	s.loggerFrom(ctx).Info().
		Str("action", string(report.Action)).
		Str("client", report.ClientName).
		Int("count", report.Count()).
		Strs("instance_ids", report.InstanceIDs).
		Msg(report.Message)
}

func (s *Scheduler) logGroups(ctx context.Context, msg string, groups []string) {
	if len(groups) == 0 {
		return
	}
	s.loggerFrom(ctx).Debug().Str("client", s.clientName).Strs("groups", groups).Msg(msg)
}
