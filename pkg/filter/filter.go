// Package filter decides which targets and links appear in an exported graph.
//
// The rules are applied in a fixed order and the first match wins:
//
//  1. The name matches a user-supplied ignore pattern: excluded.
//  2. The name is a reserved generator target (see model.IsReservedTarget):
//     excluded.
//  3. The item has no backing target: excluded unless external targets are
//     visible.
//  4. The item is a utility target named after a CI dashboard helper
//     (Nightly*, Continuous*, Experimental*): excluded.
//  5. The item is imported and external targets are hidden: excluded.
//  6. Otherwise the per-kind table decides.
//
// A [Filter] has no mutable state once built; calling it repeatedly with the
// same item always yields the same answer.
package filter

import (
	"regexp"
	"strings"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

// dashboardPrefixes name the utility targets CTest adds for dashboard runs.
var dashboardPrefixes = []string{"Nightly", "Continuous", "Experimental"}

// Filter is the inclusion policy for one export.
type Filter struct {
	ignore   []*regexp.Regexp
	external bool
	kinds    settings.KindTable
}

// New compiles the ignore patterns of s. An invalid pattern yields an
// INVALID_PATTERN error and a Filter that skips that pattern, so callers
// may report the error and keep going.
func New(s settings.Settings) (*Filter, error) {
	f := &Filter{external: s.ExternalTargets, kinds: s.Kinds}

	var firstErr error
	for _, p := range s.IgnoreTargets {
		re, err := regexp.Compile(p)
		if err != nil {
			if firstErr == nil {
				firstErr = errors.Wrap(errors.ErrCodeInvalidPattern, err, "ignore pattern %q", p)
			}
			continue
		}
		f.ignore = append(f.ignore, re)
	}
	return f, firstErr
}

// IsExcluded reports whether item is left out of the graph.
func (f *Filter) IsExcluded(item model.Item) bool {
	name := item.Name

	for _, re := range f.ignore {
		if re.MatchString(name) {
			return true
		}
	}

	if model.IsReservedTarget(name) {
		return true
	}

	if item.IsExternal() {
		return !f.external
	}

	if item.Kind() == model.KindUtility && hasDashboardPrefix(name) {
		return true
	}

	if item.Imported() && !f.external {
		return true
	}

	return !f.kinds.Enabled(item.Kind())
}

// IsLinkVisible reports whether an edge between depender and dependee may
// be exported: both ends must be visible.
func (f *Filter) IsLinkVisible(depender, dependee model.Item) bool {
	return !(f.IsExcluded(depender) || f.IsExcluded(dependee))
}

func hasDashboardPrefix(name string) bool {
	for _, p := range dashboardPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
