package model

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrUnknownKind is returned when a target kind cannot be parsed.
	ErrUnknownKind = errors.New("unknown target kind")

	// ErrUnknownDependencyKind is returned when a link kind cannot be parsed.
	ErrUnknownDependencyKind = errors.New("unknown dependency kind")

	// ErrUnsupportedFormat is returned by [LoadFile] for extensions it
	// cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported model format")
)

// ListSeparator separates the elements of a multi-valued property or
// definition.
const ListSeparator = ";"

// Project is the complete target model handed to an export.
type Project struct {
	Name        string            `json:"name" yaml:"name" toml:"name"`
	Definitions map[string]string `json:"definitions,omitempty" yaml:"definitions,omitempty" toml:"definitions,omitempty"`
	Generators  []Generator       `json:"generators" yaml:"generators" toml:"generators"`
}

// Generator owns the targets configured in one directory.
type Generator struct {
	Directory string            `json:"directory,omitempty" yaml:"directory,omitempty" toml:"directory,omitempty"`
	Aliases   map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty" toml:"aliases,omitempty"` // alias -> target name
	Targets   []Target          `json:"targets" yaml:"targets" toml:"targets"`
}

// Target is a single build target.
type Target struct {
	Name       string            `json:"name" yaml:"name" toml:"name"`
	Kind       Kind              `json:"kind" yaml:"kind" toml:"kind"`
	Imported   bool              `json:"imported,omitempty" yaml:"imported,omitempty" toml:"imported,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	Links      []Link            `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`
}

// Link is a dependency declared directly on a target. Name may refer to
// another target, to an alias, or to something outside the project.
type Link struct {
	Name string         `json:"name" yaml:"name" toml:"name"`
	Kind DependencyKind `json:"kind" yaml:"kind" toml:"kind"`
}

// PropertyKeys returns the target's property keys in sorted order.
func (t *Target) PropertyKeys() []string {
	return slices.Sorted(maps.Keys(t.Properties))
}

// Property returns the value of key and whether it is set.
func (t *Target) Property(key string) (string, bool) {
	v, ok := t.Properties[key]
	return v, ok
}

// Item is a node candidate: a target of the project, or a link name with no
// backing target.
type Item struct {
	Name   string
	Target *Target // nil for external references
}

// ItemOf wraps t.
func ItemOf(t *Target) Item { return Item{Name: t.Name, Target: t} }

// ExternalItem returns an item for a link name no target defines.
func ExternalItem(name string) Item { return Item{Name: name} }

// IsExternal reports whether the item has no backing target.
func (i Item) IsExternal() bool { return i.Target == nil }

// Kind returns the target kind, or KindUnknownLibrary for external items.
func (i Item) Kind() Kind {
	if i.Target == nil {
		return KindUnknownLibrary
	}
	return i.Target.Kind
}

// Imported reports whether the backing target was defined outside the project.
func (i Item) Imported() bool { return i.Target != nil && i.Target.Imported }

// reservedTargets are synthesized by generators; their spelling varies by
// platform.
var reservedTargets = map[string]bool{
	"all":           true,
	"ALL_BUILD":     true,
	"help":          true,
	"install":       true,
	"INSTALL":       true,
	"preinstall":    true,
	"clean":         true,
	"edit_cache":    true,
	"rebuild_cache": true,
	"ZERO_CHECK":    true,
}

// IsReservedTarget reports whether name belongs to a generator-internal
// target.
func IsReservedTarget(name string) bool { return reservedTargets[name] }

// Index resolves names to targets. Build it once with [Project.Index];
// the project must not change while the index is in use.
type Index struct {
	targets map[string]*Target
	aliases map[string]string
}

// Index builds a name index over all generators. When two generators define
// the same name, or the same alias, the first one wins.
func (p *Project) Index() *Index {
	idx := &Index{targets: make(map[string]*Target), aliases: make(map[string]string)}
	for gi := range p.Generators {
		g := &p.Generators[gi]
		for ti := range g.Targets {
			t := &g.Targets[ti]
			if _, dup := idx.targets[t.Name]; !dup {
				idx.targets[t.Name] = t
			}
		}
		for alias, real := range g.Aliases {
			if _, dup := idx.aliases[alias]; !dup {
				idx.aliases[alias] = real
			}
		}
	}
	return idx
}

// Lookup finds the target called name, resolving aliases.
func (idx *Index) Lookup(name string) (*Target, bool) {
	if t, ok := idx.targets[name]; ok {
		return t, true
	}
	if real, ok := idx.aliases[name]; ok {
		t, ok := idx.targets[real]
		return t, ok
	}
	return nil, false
}

// Resolve returns the item a link name refers to.
func (idx *Index) Resolve(name string) Item {
	if t, ok := idx.Lookup(name); ok {
		return ItemOf(t)
	}
	return ExternalItem(name)
}

// Len returns the number of distinct target names.
func (idx *Index) Len() int { return len(idx.targets) }

// AliasesOf returns the sorted alias names pointing at target.
func (p *Project) AliasesOf(target string) []string {
	var out []string
	for _, g := range p.Generators {
		for alias, real := range g.Aliases {
			if real == target {
				out = append(out, alias)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// DefinitionKeys returns the project definition keys in sorted order.
func (p *Project) DefinitionKeys() []string {
	return slices.Sorted(maps.Keys(p.Definitions))
}

// Definition returns the value of a project definition, or "" when unset.
func (p *Project) Definition(key string) string { return p.Definitions[key] }

// PathSafe keeps only characters that are valid in file names on every
// platform: ASCII letters, digits, '.', '-' and '_'.
func PathSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
