package step

import (
	"go.uber.org/fx"

	"github.com/tigerroll/greeter/internal/greet"
)

// defaultGreetingProperties carries the fixed demo names the application
// greets on every run.
var defaultGreetingProperties = map[string]interface{}{
	"names": []string{"Docker World", "Conan Package Manager"},
}

// defaultProcessingProperties carries the fixed number of demo items the
// application processes on every run.
var defaultProcessingProperties = map[string]interface{}{
	"count": 5,
}

// NewDefaultGreetingTasklet builds the greeting tasklet with the fixed demo
// names.
func NewDefaultGreetingTasklet(greeter *greet.Greeter) (*GreetingTasklet, error) {
	return NewGreetingTasklet(greeter, defaultGreetingProperties)
}

// NewDefaultProcessingTasklet builds the processing tasklet with the fixed
// demo item count.
func NewDefaultProcessingTasklet() (*ProcessingTasklet, error) {
	return NewProcessingTasklet(defaultProcessingProperties)
}

// Module defines the Fx options for the tasklets the application runs.
var Module = fx.Options(
	fx.Provide(greet.NewGreeter),
	fx.Provide(NewDefaultGreetingTasklet),
	fx.Provide(NewDefaultProcessingTasklet),
)
