package export

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/filter"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/observability"
	"github.com/matzehuels/targetgraph/pkg/settings"
	"github.com/matzehuels/targetgraph/pkg/traverse"
)

// Option configures an [Exporter].
type Option func(*Exporter)

// WithFormat selects the output format. The default is JSON.
func WithFormat(format string) Option {
	return func(e *Exporter) { e.format = format }
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHooks overrides the globally registered observability hooks.
func WithHooks(h observability.ExportHooks) Option {
	return func(e *Exporter) {
		if h != nil {
			e.hooks = h
		}
	}
}

// WithPNGScale sets the PNG resolution multiplier.
func WithPNGScale(scale float64) Option {
	return func(e *Exporter) {
		if scale > 0 {
			e.scale = scale
		}
	}
}

// Exporter writes the target graph of one project to one destination.
// It is not safe for concurrent use.
type Exporter struct {
	path    string
	project *model.Project
	format  string
	scale   float64
	logger  *log.Logger
	hooks   observability.ExportHooks

	emitter Emitter
	written bool
	closed  bool
	size    int
}

// New prepares an export of p to path. An empty path writes to standard
// output. Invalid ignore patterns are logged and skipped; an unknown format
// is an error.
func New(path string, p *model.Project, s settings.Settings, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		path:    path,
		project: p,
		format:  FormatJSON,
		scale:   DefaultPNGScale,
		logger:  log.Default(),
		hooks:   observability.Export(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := ValidateFormat(e.format); err != nil {
		return nil, err
	}

	f, err := filter.New(s)
	if err != nil {
		e.logger.Warn("skipping ignore pattern", "error", errors.UserMessage(err))
	}
	e.emitter = newEmitter(e.format, p, f, s, e.scale)
	return e, nil
}

// Format returns the output format.
func (e *Exporter) Format() string { return e.format }

// Path returns the destination path ("" for standard output).
func (e *Exporter) Path() string { return e.path }

// Counts returns the number of exported nodes and edges so far.
func (e *Exporter) Counts() (nodes, edges int) { return e.emitter.Counts() }

// Size returns the number of bytes written by Close.
func (e *Exporter) Size() int { return e.size }

// Write traverses the project and collects the graph. It may be called once.
func (e *Exporter) Write() error {
	if e.written {
		return errors.New(errors.ErrCodeAlreadyWritten, "graph of %s already written", e.project.Name)
	}
	e.written = true

	start := time.Now()
	traverse.Run(e.project, e.emitter)
	elapsed := time.Since(start)

	nodes, edges := e.emitter.Counts()
	e.hooks.OnTraversalComplete(e.project.Name, nodes, edges, elapsed)
	e.logger.Debug("traversed targets",
		"project", e.project.Name,
		"nodes", nodes,
		"edges", edges,
		"duration", elapsed)
	return nil
}

// Close encodes the graph and writes it to the destination. Only the first
// call does anything; later calls return nil.
func (e *Exporter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	err := e.finalize()
	e.hooks.OnFinalize(e.path, e.format, e.size, err)
	if err != nil {
		return err
	}
	e.logger.Debug("wrote graph", "path", e.destination(), "format", e.format, "bytes", e.size)
	return nil
}

func (e *Exporter) finalize() error {
	var buf bytes.Buffer
	if err := e.emitter.Encode(&buf); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", e.format)
	}

	out, err := openOutput(e.path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "cannot create %s", e.path)
	}
	n, err := out.Write(buf.Bytes())
	e.size = n
	if err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", e.destination())
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "close %s", e.destination())
	}
	return nil
}

func (e *Exporter) destination() string {
	if e.path == "" {
		return "stdout"
	}
	return e.path
}

// nopCloser keeps os.Stdout open after the export.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
