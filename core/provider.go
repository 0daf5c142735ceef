package core

import "context"

// Provider defines the interface for cloud provider implementations
type Provider interface {
	ListInstances(ctx context.Context, filter InstanceFilter) ([]string, error)
	StartInstances(ctx context.Context, instanceIDs []string) error
	StopInstances(ctx context.Context, instanceIDs []string) error
}

// GroupGuard is implemented by providers that can pause scaling group health
// replacement for a client's instances while they are stopped.
// SuspendGroups and ResumeGroups return the names of the groups they touched.
// AwaitRunning blocks until the given instances are running, so health checks
// are never resumed while a started instance is still pending.
type GroupGuard interface {
	SuspendGroups(ctx context.Context, tagKey, clientName string) ([]string, error)
	ResumeGroups(ctx context.Context, tagKey, clientName string) ([]string, error)
	AwaitRunning(ctx context.Context, instanceIDs []string) error
}
