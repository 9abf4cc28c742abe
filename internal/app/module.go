package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/tigerroll/greeter/internal/support/util/exception"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

// RunResult is the buffered channel over which the run outcome is delivered
// to the entry point once the application has finished.
type RunResult chan error

// StartApplication is the Fx invoke hook that ties the Application to the Fx
// lifecycle: OnStart launches the run sequence and requests shutdown when it
// finishes; OnStop closes the application on every exit path.
func StartApplication(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	application *Application,
	result RunResult,
	appCtx context.Context,
) {
	lc.Append(fx.Hook{
		OnStart: onStartApplication(application, shutdowner, result, appCtx),
		OnStop:  onStopApplication(application),
	})
}

// onStartApplication is an Fx Hook helper function that starts the run
// sequence upon application startup.
func onStartApplication(
	application *Application,
	shutdowner fx.Shutdowner,
	result RunResult,
	appCtx context.Context,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("Panic recovered in application run: %v", r)
					if err, ok := r.(error); ok {
						result <- err
					} else {
						result <- exception.ErrUnknown
					}
				}
				logger.Infof("Requesting application shutdown after run completion.")

				if err := shutdowner.Shutdown(); err != nil {
					logger.Errorf("Failed to shutdown application: %v", err)
				}
			}()

			result <- application.Run(appCtx)
		}()
		return nil
	}
}

// onStopApplication is an Fx Hook helper function that closes the
// Application during shutdown.
func onStopApplication(application *Application) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return application.Close(ctx)
	}
}

// Module defines the Fx options for the Application.
var Module = fx.Options(
	fx.Provide(NewApplication),
)
