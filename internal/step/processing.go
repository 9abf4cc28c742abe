package step

import (
	"context"

	"github.com/tigerroll/greeter/internal/support/util/configbinder"
	"github.com/tigerroll/greeter/internal/support/util/exception"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

// ProcessingConfig is the typed configuration bound from the processing
// tasklet's property map.
type ProcessingConfig struct {
	Count int `yaml:"count"`
}

// ProcessingTasklet emits a progress notice for each item index from 1 to the
// configured count, strictly increasing.
type ProcessingTasklet struct {
	config *ProcessingConfig
}

// NewProcessingTasklet creates a new ProcessingTasklet.
// It binds the provided properties to the tasklet's configuration.
func NewProcessingTasklet(properties map[string]interface{}) (*ProcessingTasklet, error) {
	taskletCfg := &ProcessingConfig{}
	if err := configbinder.BindProperties(properties, taskletCfg); err != nil {
		return nil, exception.NewAppError("processing_tasklet", "Failed to bind properties", err)
	}
	if taskletCfg.Count <= 0 {
		return nil, exception.NewAppErrorf("processing_tasklet", "count property must be positive, got %d", taskletCfg.Count)
	}
	return &ProcessingTasklet{config: taskletCfg}, nil
}

// Execute emits the progress notices.
func (t *ProcessingTasklet) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	for i := 1; i <= t.config.Count; i++ {
		logger.Infof("Processing item #%d", i)
	}
	return nil
}

// Close releases any resources held by the tasklet.
// For ProcessingTasklet, there are no specific resources to close.
func (t *ProcessingTasklet) Close(ctx context.Context) error {
	logger.Debugf("ProcessingTasklet: Close called.")
	return nil
}

var _ Tasklet = (*ProcessingTasklet)(nil)
