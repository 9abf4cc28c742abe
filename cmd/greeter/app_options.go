package main

import (
	"context"

	"go.uber.org/fx"

	"github.com/tigerroll/greeter/internal/app"
	"github.com/tigerroll/greeter/internal/config"
	"github.com/tigerroll/greeter/internal/step"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

// GetApplicationOptions builds the uber-fx options and returns them as a
// slice. Configuration is loaded and the log level applied before the Fx
// graph is assembled so that every later notice honors the threshold.
func GetApplicationOptions(appCtx context.Context, envFilePath string, embeddedConfig config.EmbeddedConfig, result app.RunResult) []fx.Option {
	cfg, err := config.LoadConfig(envFilePath, embeddedConfig)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLogLevel(cfg.Greeter.System.Logging.Level)
	logger.Infof("Log level set to: %s", cfg.Greeter.System.Logging.Level)
	logger.Infof("=== Greeter Application ===")

	var options []fx.Option

	options = append(options, fx.Supply(
		embeddedConfig,
		cfg,
		result,
		fx.Annotate(envFilePath, fx.ResultTags(`name:"envFilePath"`)),
		fx.Annotate(appCtx, fx.As(new(context.Context)), fx.ResultTags(`name:"appCtx"`)),
	))
	options = append(options, logger.Module)
	options = append(options, config.Module)
	options = append(options, step.Module)
	options = append(options, app.Module)
	options = append(options, fx.Invoke(fx.Annotate(app.StartApplication, fx.ParamTags("", "", "", "", `name:"appCtx"`))))

	return options
}
