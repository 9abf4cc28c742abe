// Package greet implements the greeting writer. A greeting goes to two sinks:
// the application log at info level and standard output.
package greet

import (
	"fmt"
	"io"
	"os"

	"github.com/tigerroll/greeter/internal/support/util/exception"
	"github.com/tigerroll/greeter/internal/support/util/logger"
)

const moduleName = "greeter"

// Greeter writes greetings to the log sink and to an output stream.
type Greeter struct {
	out io.Writer
}

// NewGreeter creates a Greeter writing to standard output.
func NewGreeter() *Greeter {
	return &Greeter{out: os.Stdout}
}

// NewGreeterWithWriter creates a Greeter writing to the given stream.
// Tests use this to capture output.
func NewGreeterWithWriter(out io.Writer) *Greeter {
	return &Greeter{out: out}
}

// Greet builds the greeting "Hello, {name}!", emits it as an informational
// notice and writes the same line to the output stream. The name is not
// validated; an empty name produces "Hello, !".
func (g *Greeter) Greet(name string) error {
	greeting := fmt.Sprintf("Hello, %s!", name)
	logger.Infof("%s", greeting)
	if _, err := fmt.Fprintln(g.out, greeting); err != nil {
		return exception.NewAppErrorf(moduleName, "failed to write greeting for '%s'", name, err)
	}
	return nil
}
