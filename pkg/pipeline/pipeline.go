// Package pipeline runs a complete export for the CLI: load the target
// model, apply settings, traverse and write the output.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the target model file
//  2. Configure: apply the settings file and command-line overrides
//  3. Export: traverse the targets and write the chosen format
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ModelPath: "build/targets.yaml",
//	    Format:    "json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output, result.Stats.NodeCount)
//
// Settings problems (unreadable file, bad value, bad ignore pattern) are
// logged as warnings and the export continues with whatever was applied.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/export"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSettingsFile is looked up next to the model file when no
	// settings path is given.
	DefaultSettingsFile = "targetgraph.toml"

	// DefaultFormat is the default output format.
	DefaultFormat = export.FormatJSON

	// StdoutPath selects standard output as the destination.
	StdoutPath = "-"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one export.
type Options struct {
	// Input
	ModelPath string `json:"model_path"`

	// Settings lookup: SettingsPath first, then FallbackSettings.
	SettingsPath     string `json:"settings_path,omitempty"`
	FallbackSettings string `json:"fallback_settings,omitempty"`

	// Overrides applied after the settings file; nil keeps the loaded value.
	External *bool `json:"external,omitempty"`
	Indirect *bool `json:"indirect,omitempty"`

	// Output
	Output   string  `json:"output,omitempty"`
	Format   string  `json:"format,omitempty"`
	PNGScale float64 `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result describes a finished export.
type Result struct {
	// Project is the exported project's name.
	Project string

	// Output is the written path ("" for standard output).
	Output string

	// Format is the output format.
	Format string

	// SettingsPath is the settings file that was applied, if any.
	SettingsPath string

	// Settings is the effective configuration.
	Settings settings.Settings

	// Warnings holds recoverable problems that were reported along the way.
	Warnings []error

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains export statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Bytes      int
	LoadTime   time.Duration
	ExportTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and fills in the format
// and output path. Calling it twice has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.ModelPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "model file is required")
	}
	if o.Format == "" {
		if o.Output != "" && o.Output != StdoutPath {
			o.Format = export.FormatFromPath(o.Output)
		} else {
			o.Format = DefaultFormat
		}
	}
	if err := export.ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Output == "" {
		o.Output = export.OutputPath(o.ModelPath, o.Format)
	}
	if o.PNGScale <= 0 {
		o.PNGScale = export.DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// Destination maps Output to the exporter path ("" for standard output).
func (o *Options) Destination() string {
	if o.Output == StdoutPath {
		return ""
	}
	return o.Output
}

// ApplyOverrides sets the command-line toggles on s.
func (o *Options) ApplyOverrides(s *settings.Settings) {
	if o.External != nil {
		s.ExternalTargets = *o.External
	}
	if o.Indirect != nil {
		s.IndirectLinks = *o.Indirect
	}
}
