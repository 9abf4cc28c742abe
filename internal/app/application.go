// Package app implements the application lifecycle: initialize on
// construction, a strictly linear run sequence, and cleanup on close.
package app

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/tigerroll/greeter/internal/greet"
	"github.com/tigerroll/greeter/internal/model"
	"github.com/tigerroll/greeter/internal/step"
	"github.com/tigerroll/greeter/internal/support/util/exception"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

const moduleName = "app"

// Application owns the create/run/destroy lifecycle of the greeter program.
// Construction emits the initialization notice; Run executes the tasklet
// sequence; Close emits the cleanup notice and releases the tasklets.
type Application struct {
	greeter   *greet.Greeter
	tasklets  []step.Tasklet
	execution *model.Execution
}

// NewApplication creates an initialized Application and emits the
// "Initializing application..." notice before any other application notice.
func NewApplication(greeter *greet.Greeter, greeting *step.GreetingTasklet, processing *step.ProcessingTasklet) (*Application, error) {
	logger.Infof("Initializing application...")
	return &Application{
		greeter:  greeter,
		tasklets: []step.Tasklet{greeting, processing},
	}, nil
}

// Run performs the application's linear sequence: the startup notice, the
// greeting tasklet, the processing tasklet, and the completion notice. Any
// tasklet error aborts the sequence and propagates to the caller.
func (a *Application) Run(ctx context.Context) error {
	execution := model.NewExecution()
	a.execution = execution
	logger.Debugf("Application run started (Execution ID: %s)", execution.ID)

	logger.Infof("Starting application")
	execution.MarkAsStarted()

	for _, tasklet := range a.tasklets {
		if err := tasklet.Execute(ctx); err != nil {
			execution.MarkAsFailed(err)
			return err
		}
	}

	logger.Infof("Application completed successfully")
	execution.MarkAsCompleted()
	return nil
}

// Greet greets a single name through the Greeter.
func (a *Application) Greet(name string) error {
	return a.greeter.Greet(name)
}

// LastExecution returns the record of the most recent Run, or nil if the
// application has not run yet.
func (a *Application) LastExecution() *model.Execution {
	return a.execution
}

// Close emits the "Cleaning up application..." notice and closes the
// tasklets, aggregating any close errors.
func (a *Application) Close(ctx context.Context) error {
	logger.Infof("Cleaning up application...")

	var multiErr error
	for _, tasklet := range a.tasklets {
		if err := tasklet.Close(ctx); err != nil {
			multiErr = multierror.Append(multiErr, exception.NewAppError(
				moduleName,
				"Failed to close tasklet",
				err,
			))
		}
	}
	return multiErr
}
