package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	astypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// DefaultRunningTimeout bounds how long AwaitRunning polls EC2 before giving up
const DefaultRunningTimeout = 5 * time.Minute

// A group that health checks a stopped instance replaces it, so these stay
// suspended while the client's fleet is down.
var guardedProcesses = []string{"HealthCheck", "ReplaceUnhealthy", "AZRebalance"}

// SuspendGroups suspends the guarded processes on every ASG tagged for clientName
func (c *AWSClient) SuspendGroups(ctx context.Context, tagKey, clientName string) ([]string, error) {
	groups, err := c.clientGroups(ctx, tagKey, clientName)
	if err != nil {
		return nil, err
	}
	if c.dryRun {
		return groups, nil
	}

	for _, name := range groups {
		_, err := c.autoscaling.SuspendProcesses(ctx, &autoscaling.SuspendProcessesInput{
			AutoScalingGroupName: aws.String(name),
			ScalingProcesses:     guardedProcesses,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to suspend processes on ASG %s: %w", name, err)
		}
	}
	return groups, nil
}

// ResumeGroups resumes the guarded processes on every ASG tagged for clientName
func (c *AWSClient) ResumeGroups(ctx context.Context, tagKey, clientName string) ([]string, error) {
	groups, err := c.clientGroups(ctx, tagKey, clientName)
	if err != nil {
		return nil, err
	}
	if c.dryRun {
		return groups, nil
	}

	for _, name := range groups {
		_, err := c.autoscaling.ResumeProcesses(ctx, &autoscaling.ResumeProcessesInput{
			AutoScalingGroupName: aws.String(name),
			ScalingProcesses:     guardedProcesses,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resume processes on ASG %s: %w", name, err)
		}
	}
	return groups, nil
}

// AwaitRunning polls EC2 until every instance in instanceIDs is running.
// Dry run returns at once since nothing was started.
func (c *AWSClient) AwaitRunning(ctx context.Context, instanceIDs []string) error {
	if c.dryRun || len(instanceIDs) == 0 {
		return nil
	}

	timeout := c.runningTimeout
	if timeout <= 0 {
		timeout = DefaultRunningTimeout
	}

	waiter := ec2.NewInstanceRunningWaiter(c.ec2)
	err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{InstanceIds: instanceIDs}, timeout)
	if err != nil {
		return fmt.Errorf("failed waiting for instances %v to run: %w", instanceIDs, err)
	}
	return nil
}

func (c *AWSClient) clientGroups(ctx context.Context, tagKey, clientName string) ([]string, error) {
	var names []string
	var nextToken *string

	for {
		result, err := c.autoscaling.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
			Filters: []astypes.Filter{
				{
					Name:   aws.String("tag:" + tagKey),
					Values: []string{clientName},
				},
			},
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe ASGs tagged %s=%s: %w", tagKey, clientName, err)
		}

		for _, group := range result.AutoScalingGroups {
			if group.AutoScalingGroupName != nil {
				names = append(names, aws.ToString(group.AutoScalingGroupName))
			}
		}

		if aws.ToString(result.NextToken) == "" {
			return names, nil
		}
		nextToken = result.NextToken
	}
}
