// Package settings holds the options that shape an exported graph.
//
// Settings start from [Default] and may be overridden by a settings file
// through [Load]. The file is looked up via a fallback chain: if the primary
// path does not exist the fallback path is tried, and if neither exists the
// defaults stay untouched. A missing file is not an error.
//
// Files are read with viper, so TOML, YAML and JSON work out of the box.
// CMake list files (".cmake", lines of the form "set(KEY value)") are
// accepted too:
//
//	set(DEPENDENCIES_INDENT_LENGTH 4)
//	set(DEPENDENCIES_EXTERNAL_LIBS ON)
//	set(DEPENDENCIES_IGNORE_TARGETS "^test_;_bench$")
//
// Only the keys listed in [Keys] are read; anything else in the file is
// ignored.
package settings

import (
	"strings"

	"github.com/matzehuels/targetgraph/pkg/model"
)

// Recognized settings keys.
const (
	KeyIndentLength    = "DEPENDENCIES_INDENT_LENGTH"
	KeyIndentUseSpaces = "DEPENDENCIES_INDENT_USE_SPACES"
	KeyIgnoreTargets   = "DEPENDENCIES_IGNORE_TARGETS"
	KeyExternalLibs    = "DEPENDENCIES_EXTERNAL_LIBS"
	KeyIndirectLinks   = "DEPENDENCIES_INDIRECT_LINKS"
	KeyExecutables     = "DEPENDENCIES_EXECUTABLES"
	KeyStaticLibs      = "DEPENDENCIES_STATIC_LIBS"
	KeySharedLibs      = "DEPENDENCIES_SHARED_LIBS"
	KeyModuleLibs      = "DEPENDENCIES_MODULE_LIBS"
	KeyInterfaceLibs   = "DEPENDENCIES_INTERFACE_LIBS"
	KeyObjectLibs      = "DEPENDENCIES_OBJECT_LIBS"
	KeyUnknownLibs     = "DEPENDENCIES_UNKNOWN_LIBS"
	KeyCustomTargets   = "DEPENDENCIES_CUSTOM_TARGETS"
	KeyGlobalTargets   = "DEPENDENCIES_GLOBAL_TARGETS"
)

// Keys lists every recognized key in the order [Load] applies them.
var Keys = []string{
	KeyIndentLength,
	KeyIndentUseSpaces,
	KeyIgnoreTargets,
	KeyExternalLibs,
	KeyIndirectLinks,
	KeyExecutables,
	KeyStaticLibs,
	KeySharedLibs,
	KeyModuleLibs,
	KeyInterfaceLibs,
	KeyObjectLibs,
	KeyUnknownLibs,
	KeyCustomTargets,
	KeyGlobalTargets,
}

// Settings configures filtering and formatting of an export.
type Settings struct {
	IndentLength    int  // indentation width, >= 0
	IndentUseSpaces bool // spaces when true, tabs otherwise

	// IgnoreTargets holds regular expressions; a target whose name matches
	// any of them is left out of the graph.
	IgnoreTargets []string

	// ExternalTargets shows imported targets and link names that no target
	// defines.
	ExternalTargets bool

	// IndirectLinks adds edges for transitively reachable dependencies.
	IndirectLinks bool

	Kinds KindTable
}

// KindTable enables or disables whole target kinds.
type KindTable struct {
	Executables   bool
	StaticLibs    bool
	SharedLibs    bool
	ModuleLibs    bool
	InterfaceLibs bool
	ObjectLibs    bool
	UnknownLibs   bool
	CustomTargets bool // utility targets
	GlobalTargets bool // generator-provided targets such as edit_cache
}

// Enabled reports whether targets of kind k are exported.
func (t KindTable) Enabled(k model.Kind) bool {
	switch k {
	case model.KindExecutable:
		return t.Executables
	case model.KindStaticLibrary:
		return t.StaticLibs
	case model.KindSharedLibrary:
		return t.SharedLibs
	case model.KindModuleLibrary:
		return t.ModuleLibs
	case model.KindInterfaceLibrary:
		return t.InterfaceLibs
	case model.KindObjectLibrary:
		return t.ObjectLibs
	case model.KindUnknownLibrary:
		return t.UnknownLibs
	case model.KindUtility:
		return t.CustomTargets
	case model.KindGlobal:
		return t.GlobalTargets
	}
	return false
}

// Default returns the settings used when no settings file is found.
func Default() Settings {
	return Settings{
		IndentLength:    2,
		IndentUseSpaces: true,
		Kinds: KindTable{
			Executables:   true,
			StaticLibs:    true,
			SharedLibs:    true,
			ModuleLibs:    true,
			InterfaceLibs: true,
			ObjectLibs:    true,
			UnknownLibs:   true,
		},
	}
}

// Indent returns the indentation unit for serialized output.
func (s Settings) Indent() string {
	if s.IndentLength <= 0 {
		return ""
	}
	unit := " "
	if !s.IndentUseSpaces {
		unit = "\t"
	}
	return strings.Repeat(unit, s.IndentLength)
}
