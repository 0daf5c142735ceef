package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/shuliakovsky/ec2-power-switch/config"
	"github.com/shuliakovsky/ec2-power-switch/core"
	"github.com/shuliakovsky/ec2-power-switch/providers/aws"
	"github.com/shuliakovsky/ec2-power-switch/utils"
)

// Version and CommitHash will be set during the build process
var Version string = "0.1.0"
var CommitHash string = ""

// App holds everything an invocation needs. It is built once per process and
// shared by every invocation.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Scheduler *core.Scheduler
}

// Bootstrap validates cfg, builds the logger writing to out and the AWS client, and wires the scheduler
func Bootstrap(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := utils.NewLogger(out, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	client, err := aws.NewAWSClient(ctx, aws.Options{
		Region:         cfg.Region,
		DryRun:         cfg.DryRun,
		RunningTimeout: cfg.RunningTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize aws client: %w", err)
	}

	return NewApp(cfg, logger, client), nil
}

// NewApp wires a scheduler for cfg over provider
func NewApp(cfg *config.Config, logger zerolog.Logger, provider core.Provider) *App {
	opts := []core.Option{
		core.WithTagKey(cfg.TagKey),
		core.WithLogger(logger),
	}
	if cfg.SuspendASGProcesses {
		if guard, ok := provider.(core.GroupGuard); ok {
			opts = append(opts, core.WithGroupGuard(guard))
		} else {
			logger.Warn().Msg("provider cannot manage scaling groups, suspend-asg-processes ignored")
		}
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Scheduler: core.NewScheduler(provider, cfg.ClientName, opts...),
	}
}

// LambdaHandler returns the function body for the Lambda runtime. The event payload is not used;
// a returned error marks the invocation as failed.
func (a *App) LambdaHandler(action core.Action) func(context.Context, json.RawMessage) error {
	return func(ctx context.Context, _ json.RawMessage) error {
		logger := a.Logger
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			logger = logger.With().Str("aws_request_id", lc.AwsRequestID).Logger()
		}
		ctx = logger.WithContext(ctx)

		if _, err := a.Scheduler.Run(ctx, action); err != nil {
			logger.Error().Err(err).Str("action", string(action)).Msg("invocation failed")
			return err
		}
		return nil
	}
}
