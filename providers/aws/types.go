package aws

import "time"

// Options configures NewAWSClient
type Options struct {
	Region         string        // empty uses the SDK default resolution (AWS_REGION, profile, IMDS)
	DryRun         bool          // send state changes with DryRun set and leave scaling groups untouched
	RunningTimeout time.Duration // upper bound for AwaitRunning, DefaultRunningTimeout when zero
}

// AWSClient implements core.Provider and core.GroupGuard over the EC2 and Auto Scaling APIs
type AWSClient struct {
	ec2            EC2API
	autoscaling    AutoscalingAPI
	dryRun         bool
	runningTimeout time.Duration
}
