package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/fx"

	"tripmate/cmd/fx/completion_fx"
	"tripmate/cmd/fx/config_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/logger_fx"
	"tripmate/cmd/fx/suggestion_fx"
	"tripmate/internal/api/functions"
)

func main() {
	var fn *functions.SuggestionFunction

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		completion_fx.Module,
		suggestion_fx.Module,
		controllers_fx.Module,

		fx.Populate(&fn),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("failed to start function: %v", err)
	}

	// lambda.Start blocks for the lifetime of the execution environment.
	lambda.Start(fn.Handle)
}
