// Package step provides the tasklets the application runs in sequence:
// a greeting tasklet followed by a processing tasklet.
package step

import (
	"context"

	"github.com/tigerroll/greeter/internal/greet"
	"github.com/tigerroll/greeter/internal/support/util/configbinder"
	"github.com/tigerroll/greeter/internal/support/util/exception"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

// Tasklet is a single unit of work executed by the application run sequence.
type Tasklet interface {
	// Execute runs the tasklet's business logic.
	Execute(ctx context.Context) error
	// Close releases any resources held by the tasklet.
	Close(ctx context.Context) error
}

// GreetingConfig is the typed configuration bound from the greeting tasklet's
// property map.
type GreetingConfig struct {
	Names []string `yaml:"names"`
}

// GreetingTasklet greets a fixed list of names through the Greeter.
type GreetingTasklet struct {
	greeter *greet.Greeter
	config  *GreetingConfig
}

// NewGreetingTasklet creates a new GreetingTasklet.
// It binds the provided properties to the tasklet's configuration.
func NewGreetingTasklet(greeter *greet.Greeter, properties map[string]interface{}) (*GreetingTasklet, error) {
	taskletCfg := &GreetingConfig{}
	if err := configbinder.BindProperties(properties, taskletCfg); err != nil {
		return nil, exception.NewAppError("greeting_tasklet", "Failed to bind properties", err)
	}
	if len(taskletCfg.Names) == 0 {
		return nil, exception.NewAppErrorf("greeting_tasklet", "names property is required for GreetingTasklet")
	}
	return &GreetingTasklet{greeter: greeter, config: taskletCfg}, nil
}

// Execute greets each configured name in order.
func (t *GreetingTasklet) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	for _, name := range t.config.Names {
		if err := t.greeter.Greet(name); err != nil {
			return err
		}
	}
	return nil
}

// Close releases any resources held by the tasklet.
// For GreetingTasklet, there are no specific resources to close.
func (t *GreetingTasklet) Close(ctx context.Context) error {
	logger.Debugf("GreetingTasklet: Close called.")
	return nil
}

var _ Tasklet = (*GreetingTasklet)(nil)
