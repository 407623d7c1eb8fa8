// Package cli implements the targetgraph command-line interface.
//
// # Commands
//
// The main commands are:
//   - export: Export the target graph of a model file (json, dot, svg, pdf, png)
//   - settings: Show the effective export settings
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/targetgraph/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.Execute(context.Background(), os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exported demo (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports export events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnSettingsLoaded(path string, err error) {
	switch {
	case err != nil:
		h.logger.Debug("settings hook", "path", path, "error", err)
	case path == "":
		h.logger.Debug("settings hook", "path", "(defaults)")
	default:
		h.logger.Debug("settings hook", "path", path)
	}
}

func (h logHooks) OnTraversalComplete(project string, nodes, edges int, d time.Duration) {
	h.logger.Debug("traversal hook", "project", project, "nodes", nodes, "edges", edges, "duration", d)
}

func (h logHooks) OnFinalize(path, format string, size int, err error) {
	if path == "" {
		path = "stdout"
	}
	if err != nil {
		h.logger.Debug("finalize hook", "path", path, "format", format, "error", err)
		return
	}
	h.logger.Debug("finalize hook", "path", path, "format", format, "bytes", size)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
