// Command stop-running-instances is an AWS Lambda function that stops the running EC2 instances tagged for CLIENT_NAME.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/shuliakovsky/ec2-power-switch/cmd/internal"
	"github.com/shuliakovsky/ec2-power-switch/config"
	"github.com/shuliakovsky/ec2-power-switch/core"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	app, err := internal.Bootstrap(context.Background(), cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}
	config.PrintConfiguration(app.Logger, cfg, internal.Version, internal.CommitHash)

	lambda.Start(app.LambdaHandler(core.ActionStop))
}
