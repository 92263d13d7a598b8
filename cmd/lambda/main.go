package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mrled/addrbook/internal/lambdahandlers/mirror"
	"github.com/mrled/addrbook/internal/lambdahandlers/reminder"
	"github.com/mrled/addrbook/internal/logger"
)

func main() {
	// Initialize logger
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "lambda")
	logger.SetDefault(log)

	// Get the LAMBDA_HANDLER environment variable
	handlerType := os.Getenv("LAMBDA_HANDLER")
	if handlerType == "" {
		log.Error("LAMBDA_HANDLER environment variable is required")
		fmt.Fprintln(os.Stderr, "Error: LAMBDA_HANDLER environment variable is required")
		fmt.Fprintln(os.Stderr, "Valid values: reminder, mirror")
		os.Exit(1)
	}

	log.Info("Starting Lambda handler", slog.String("handler", handlerType))
	ctx := context.Background()

	// Route to the appropriate handler based on LAMBDA_HANDLER
	switch handlerType {
	case "reminder":
		handler, err := reminder.NewHandler(ctx)
		if err != nil {
			log.Error("Failed to initialize reminder handler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		lambda.Start(handler.Handle)

	case "mirror":
		handler, err := mirror.NewHandler(ctx)
		if err != nil {
			log.Error("Failed to initialize mirror handler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		lambda.Start(handler.Handle)

	default:
		log.Error("Invalid LAMBDA_HANDLER value", slog.String("handler", handlerType))
		fmt.Fprintf(os.Stderr, "Error: Invalid LAMBDA_HANDLER value: %s\n", handlerType)
		fmt.Fprintln(os.Stderr, "Valid values: reminder, mirror")
		os.Exit(1)
	}
}
