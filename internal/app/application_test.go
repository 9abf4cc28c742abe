package app_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/tigerroll/greeter/internal/app"
	"github.com/tigerroll/greeter/internal/greet"
	"github.com/tigerroll/greeter/internal/model"
	"github.com/tigerroll/greeter/internal/step"
	"github.com/tigerroll/greeter/internal/support/util/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter simulates a broken output stream so that the greeting
// tasklet fails mid-run.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldFlags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(oldFlags)
	}()
	fn()
	return buf.String()
}

// infoLines extracts the INFO-level entries from captured log output.
func infoLines(logged string) []string {
	var lines []string
	for _, line := range strings.Split(logged, "\n") {
		if strings.HasPrefix(line, "[INFO] ") {
			lines = append(lines, strings.TrimPrefix(line, "[INFO] "))
		}
	}
	return lines
}

func newTestApplication(t *testing.T, out *bytes.Buffer) *app.Application {
	t.Helper()
	greeter := greet.NewGreeterWithWriter(out)

	greeting, err := step.NewGreetingTasklet(greeter, map[string]interface{}{
		"names": []string{"Docker World", "Conan Package Manager"},
	})
	require.NoError(t, err)

	processing, err := step.NewProcessingTasklet(map[string]interface{}{"count": 5})
	require.NoError(t, err)

	application, err := app.NewApplication(greeter, greeting, processing)
	require.NoError(t, err)
	return application
}

func TestNewApplicationEmitsInitializationNotice(t *testing.T) {
	logger.SetLogLevel("INFO")
	var out bytes.Buffer

	logged := captureLog(t, func() {
		newTestApplication(t, &out)
	})

	assert.Equal(t, []string{"Initializing application..."}, infoLines(logged))
}

func TestRunEmitsFixedNoticeSequence(t *testing.T) {
	logger.SetLogLevel("INFO")
	var out bytes.Buffer
	application := newTestApplication(t, &out)

	logged := captureLog(t, func() {
		require.NoError(t, application.Run(context.Background()))
	})

	expected := []string{
		"Starting application",
		"Hello, Docker World!",
		"Hello, Conan Package Manager!",
		"Processing item #1",
		"Processing item #2",
		"Processing item #3",
		"Processing item #4",
		"Processing item #5",
		"Application completed successfully",
	}
	assert.Equal(t, expected, infoLines(logged))

	assert.Equal(t, "Hello, Docker World!\nHello, Conan Package Manager!\n", out.String())

	execution := application.LastExecution()
	require.NotNil(t, execution)
	assert.Equal(t, model.StatusCompleted, execution.Status)
	assert.True(t, execution.Status.IsFinished())
}

func TestRunFailureAbortsSequence(t *testing.T) {
	logger.SetLogLevel("INFO")
	greeter := greet.NewGreeterWithWriter(failingWriter{})

	greeting, err := step.NewGreetingTasklet(greeter, map[string]interface{}{
		"names": []string{"Docker World", "Conan Package Manager"},
	})
	require.NoError(t, err)

	processing, err := step.NewProcessingTasklet(map[string]interface{}{"count": 5})
	require.NoError(t, err)

	application, err := app.NewApplication(greeter, greeting, processing)
	require.NoError(t, err)

	var runErr error
	logged := captureLog(t, func() {
		runErr = application.Run(context.Background())
	})
	require.Error(t, runErr)

	assert.NotContains(t, logged, "Processing item")
	assert.NotContains(t, logged, "Application completed successfully")

	execution := application.LastExecution()
	require.NotNil(t, execution)
	assert.Equal(t, model.StatusFailed, execution.Status)
	assert.Equal(t, runErr, execution.Failure)
}

func TestGreetDelegatesToGreeter(t *testing.T) {
	logger.SetLogLevel("INFO")
	var out bytes.Buffer
	application := newTestApplication(t, &out)

	logged := captureLog(t, func() {
		require.NoError(t, application.Greet("World"))
	})

	assert.Equal(t, "Hello, World!\n", out.String())
	assert.Contains(t, logged, "[INFO] Hello, World!")
}

func TestCloseEmitsCleanupNotice(t *testing.T) {
	logger.SetLogLevel("INFO")
	var out bytes.Buffer
	application := newTestApplication(t, &out)

	require.NoError(t, application.Run(context.Background()))

	logged := captureLog(t, func() {
		assert.NoError(t, application.Close(context.Background()))
	})

	assert.Equal(t, []string{"Cleaning up application..."}, infoLines(logged))
}

func TestCloseRunsAfterFailedRun(t *testing.T) {
	logger.SetLogLevel("INFO")
	greeter := greet.NewGreeterWithWriter(failingWriter{})

	greeting, err := step.NewGreetingTasklet(greeter, map[string]interface{}{
		"names": []string{"Docker World"},
	})
	require.NoError(t, err)

	processing, err := step.NewProcessingTasklet(map[string]interface{}{"count": 5})
	require.NoError(t, err)

	application, err := app.NewApplication(greeter, greeting, processing)
	require.NoError(t, err)

	require.Error(t, application.Run(context.Background()))

	logged := captureLog(t, func() {
		assert.NoError(t, application.Close(context.Background()))
	})
	assert.Contains(t, logged, "[INFO] Cleaning up application...")
}
