package model

import (
	"fmt"
	"strings"
)

// Kind classifies a build target.
type Kind int

const (
	KindUnknownLibrary Kind = iota
	KindExecutable
	KindStaticLibrary
	KindSharedLibrary
	KindModuleLibrary
	KindObjectLibrary
	KindInterfaceLibrary
	KindUtility
	KindGlobal
)

var kindNames = map[Kind]string{
	KindUnknownLibrary:   "UNKNOWN_LIBRARY",
	KindExecutable:       "EXECUTABLE",
	KindStaticLibrary:    "STATIC_LIBRARY",
	KindSharedLibrary:    "SHARED_LIBRARY",
	KindModuleLibrary:    "MODULE_LIBRARY",
	KindObjectLibrary:    "OBJECT_LIBRARY",
	KindInterfaceLibrary: "INTERFACE_LIBRARY",
	KindUtility:          "UTILITY",
	KindGlobal:           "GLOBAL_TARGET",
}

// String returns the build-system spelling of the kind, e.g. "STATIC_LIBRARY".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknownLibrary]
}

// ParseKind converts s into a Kind. It accepts the build-system spelling
// ("STATIC_LIBRARY"), the kebab form ("static-library") and a few short
// aliases, ignoring case. An empty string yields KindUnknownLibrary.
func ParseKind(s string) (Kind, error) {
	norm := normalizeName(s)
	switch norm {
	case "", "unknown_library", "unknown":
		return KindUnknownLibrary, nil
	case "executable", "exe":
		return KindExecutable, nil
	case "static_library", "static":
		return KindStaticLibrary, nil
	case "shared_library", "shared":
		return KindSharedLibrary, nil
	case "module_library", "module":
		return KindModuleLibrary, nil
	case "object_library", "object":
		return KindObjectLibrary, nil
	case "interface_library", "interface":
		return KindInterfaceLibrary, nil
	case "utility", "custom":
		return KindUtility, nil
	case "global_target", "global", "internal":
		return KindGlobal, nil
	}
	return KindUnknownLibrary, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// DependencyKind classifies a link between two targets.
type DependencyKind int

const (
	LinkPrivate DependencyKind = iota
	LinkPublic
	LinkInterface
	LinkObject
	LinkUtility
)

var dependencyNames = map[DependencyKind]string{
	LinkPrivate:   "private-link",
	LinkPublic:    "public-link",
	LinkInterface: "interface-link",
	LinkObject:    "object-link",
	LinkUtility:   "utility-order-only",
}

// String returns the stable symbolic name used in exported documents.
func (d DependencyKind) String() string {
	if s, ok := dependencyNames[d]; ok {
		return s
	}
	return dependencyNames[LinkPrivate]
}

// ParseDependencyKind converts s into a DependencyKind. Besides the symbolic
// names it accepts "private", "public", "interface", "object", "utility" and
// "order-only". An empty string yields LinkPrivate, the default for links
// declared without a visibility keyword.
func ParseDependencyKind(s string) (DependencyKind, error) {
	switch normalizeName(s) {
	case "", "private_link", "private":
		return LinkPrivate, nil
	case "public_link", "public":
		return LinkPublic, nil
	case "interface_link", "interface":
		return LinkInterface, nil
	case "object_link", "object":
		return LinkObject, nil
	case "utility_order_only", "utility", "order_only":
		return LinkUtility, nil
	}
	return LinkPrivate, fmt.Errorf("%w: %q", ErrUnknownDependencyKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DependencyKind) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DependencyKind) UnmarshalText(b []byte) error {
	v, err := ParseDependencyKind(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}
