package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"

	"github.com/shuliakovsky/ec2-power-switch/core"
)

const (
	instanceStateFilter = "instance-state-name"
	dryRunErrorCode     = "DryRunOperation"
)

var (
	_ core.Provider   = (*AWSClient)(nil)
	_ core.GroupGuard = (*AWSClient)(nil)
)

// NewAWSClient loads the default AWS configuration and builds the EC2 and Auto Scaling clients
func NewAWSClient(ctx context.Context, opts Options) (*AWSClient, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &AWSClient{
		ec2:            ec2.NewFromConfig(cfg),
		autoscaling:    autoscaling.NewFromConfig(cfg),
		dryRun:         opts.DryRun,
		runningTimeout: opts.RunningTimeout,
	}, nil
}

// ListInstances returns the IDs of instances passing filter, in the order EC2 reports them
func (c *AWSClient) ListInstances(ctx context.Context, filter core.InstanceFilter) ([]string, error) {
	var ids []string
	var nextToken *string

	for {
		result, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
			Filters:   instanceFilters(filter),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances (%s=%s, state=%s): %w",
				filter.TagFilterName(), filter.ClientName, filter.State, err)
		}

		for _, reservation := range result.Reservations {
			for _, inst := range reservation.Instances {
				if inst.InstanceId == nil {
					continue
				}
				// EC2 already filtered, this only guards against a stale page
				if !filter.Matches(instanceTags(inst.Tags), instanceState(inst)) {
					continue
				}
				ids = append(ids, aws.ToString(inst.InstanceId))
			}
		}

		if aws.ToString(result.NextToken) == "" {
			return ids, nil
		}
		nextToken = result.NextToken
	}
}

// StartInstances sends one StartInstances request for all instanceIDs
func (c *AWSClient) StartInstances(ctx context.Context, instanceIDs []string) error {
	input := &ec2.StartInstancesInput{
		InstanceIds: instanceIDs,
	}
	if c.dryRun {
		input.DryRun = aws.Bool(true)
	}

	_, err := c.ec2.StartInstances(ctx, input)
	if err != nil && !(c.dryRun && isDryRunSuccess(err)) {
		return fmt.Errorf("failed to start instances %v: %w", instanceIDs, err)
	}
	return nil
}

// StopInstances sends one StopInstances request for all instanceIDs
func (c *AWSClient) StopInstances(ctx context.Context, instanceIDs []string) error {
	input := &ec2.StopInstancesInput{
		InstanceIds: instanceIDs,
	}
	if c.dryRun {
		input.DryRun = aws.Bool(true)
	}

	_, err := c.ec2.StopInstances(ctx, input)
	if err != nil && !(c.dryRun && isDryRunSuccess(err)) {
		return fmt.Errorf("failed to stop instances %v: %w", instanceIDs, err)
	}
	return nil
}

func instanceFilters(filter core.InstanceFilter) []ec2types.Filter {
	return []ec2types.Filter{
		{
			Name:   aws.String(filter.TagFilterName()),
			Values: []string{filter.ClientName},
		},
		{
			Name:   aws.String(instanceStateFilter),
			Values: []string{filter.State},
		},
	}
}

func instanceTags(tags []ec2types.Tag) map[string]string {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		out[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return out
}

func instanceState(inst ec2types.Instance) string {
	if inst.State == nil {
		return ""
	}
	return string(inst.State.Name)
}

// isDryRunSuccess reports whether err is EC2's answer to a permitted dry run request
func isDryRunSuccess(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == dryRunErrorCode
}
