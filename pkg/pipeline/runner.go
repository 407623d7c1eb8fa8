package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/export"
	"github.com/matzehuels/targetgraph/pkg/filter"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

// Runner executes exports. It holds no per-export state, so one Runner can
// serve several exports.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs load → configure → export. Cancellation is honored between
// stages; a running traversal is never interrupted.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	// Stage 1: Load
	loadStart := time.Now()
	p, err := model.LoadFile(opts.ModelPath)
	if err != nil {
		return nil, err
	}
	result := &Result{Project: p.Name, Format: opts.Format, Output: opts.Destination()}
	result.Stats.LoadTime = time.Since(loadStart)
	logger.Debug("loaded target model",
		"project", p.Name,
		"generators", len(p.Generators),
		"targets", p.Index().Len(),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Configure
	s, used, warnings := r.Configure(opts)
	result.Settings = s
	result.SettingsPath = used
	result.Warnings = append(result.Warnings, warnings...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Export
	exportStart := time.Now()
	e, err := export.New(result.Output, p, s,
		export.WithFormat(opts.Format),
		export.WithLogger(logger),
		export.WithPNGScale(opts.PNGScale))
	if err != nil {
		return nil, err
	}
	if err := e.Write(); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	result.Stats.ExportTime = time.Since(exportStart)
	result.Stats.NodeCount, result.Stats.EdgeCount = e.Counts()
	result.Stats.Bytes = e.Size()

	logger.Info("exported target graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"format", result.Format,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Configure builds the effective settings: defaults, then the settings
// file, then the command-line overrides. Problems are returned as warnings
// and never stop the export: a settings error keeps the values applied up
// to that point, and an invalid ignore pattern is skipped by the filter.
func (r *Runner) Configure(opts Options) (settings.Settings, string, []error) {
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	s := settings.Default()
	primary, fallback := opts.SettingsPath, opts.FallbackSettings
	if primary == "" && opts.ModelPath != "" {
		primary = filepath.Join(filepath.Dir(opts.ModelPath), DefaultSettingsFile)
	}

	var warnings []error
	used, err := settings.Load(&s, primary, fallback)
	if err != nil {
		if !errors.IsRecoverable(err) {
			err = errors.Wrap(errors.ErrCodeInvalidSettings, err, "settings")
		}
		logger.Warn("settings not fully applied", "error", err)
		warnings = append(warnings, err)
	} else if used != "" {
		logger.Debug("applied settings", "path", used)
	}

	opts.ApplyOverrides(&s)

	// The exporter logs this one itself when it builds its filter.
	if _, err := filter.New(s); err != nil {
		warnings = append(warnings, err)
	}
	return s, used, warnings
}
