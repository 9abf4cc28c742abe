package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "embed"

	"go.uber.org/fx"

	"github.com/tigerroll/greeter/internal/app"
	"github.com/tigerroll/greeter/internal/support/util/exception"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

// embeddedConfig holds the application's YAML configuration file content.
//
//go:embed resources/application.yaml
var embeddedConfig []byte

// main is the application's entry point. The exit status is 0 when the run
// completes without error and 1 on any failure during construction or run.
func main() {
	os.Exit(run())
}

// run wires the Fx application, executes it, and maps the outcome to the
// process exit status.
func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				logger.Errorf("Application error: %s", exception.ExtractErrorMessage(err))
			} else {
				logger.Errorf("Unknown error occurred")
			}
			exitCode = 1
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handling (Ctrl+C etc.)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Warnf("Received signal '%v'. Attempting to stop the application...", sig)
		cancel()
	}()

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath == "" {
		envFilePath = ".env"
	}

	result := make(app.RunResult, 1)

	fxApp := fx.New(GetApplicationOptions(ctx, envFilePath, embeddedConfig, result)...)
	fxApp.Run()
	if err := fxApp.Err(); err != nil {
		logger.Errorf("Application error: %s", exception.ExtractErrorMessage(err))
		return 1
	}

	select {
	case err := <-result:
		if err != nil {
			if exception.IsUnknown(err) {
				logger.Errorf("Unknown error occurred")
			} else {
				logger.Errorf("Application error: %s", exception.ExtractErrorMessage(err))
			}
			return 1
		}
	default:
	}
	return 0
}
