// Package observability lets a program watch exports without the library
// packages knowing how events are recorded.
//
// Three events are reported:
//
//   - settings.Load calls OnSettingsLoaded after every load, with the file
//     that was applied and the error, if any.
//   - export.Exporter.Write calls OnTraversalComplete with the node and
//     edge counts of the collected graph.
//   - export.Exporter.Close calls OnFinalize once, after the destination
//     has been written or the write has failed.
//
// The default hooks do nothing. A program registers its own once, before
// the first export:
//
//	observability.SetExportHooks(logHooks{logger: logger})
//
// An exporter can also be given hooks directly with export.WithHooks,
// which takes precedence over the registered ones.
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from a graph export.
type ExportHooks interface {
	// OnSettingsLoaded reports the settings file that was applied ("" when
	// none was found) and any error raised while applying it.
	OnSettingsLoaded(path string, err error)

	// OnTraversalComplete reports the size of the built graph.
	OnTraversalComplete(project string, nodes, edges int, duration time.Duration)

	// OnFinalize reports the outcome of writing the output file.
	OnFinalize(path, format string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnSettingsLoaded(string, error)                      {}
func (NoopExportHooks) OnTraversalComplete(string, int, int, time.Duration) {}
func (NoopExportHooks) OnFinalize(string, string, int, error)               {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	exportHooks ExportHooks = NoopExportHooks{}
	hooksMu     sync.RWMutex
)

// SetExportHooks registers custom export hooks. A nil value is ignored.
// This should be called once at application startup before any export.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
}
