package settings

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/observability"
)

// Load applies the settings file found at primary, or at fallback when
// primary does not exist, on top of s. It returns the path that was read,
// or "" when neither file exists.
//
// Errors are meant to be reported, not to stop the caller:
//   - SETTINGS_UNREADABLE: the file exists but cannot be read or parsed;
//     s is left as it was.
//   - INVALID_SETTINGS: a recognized key holds a value of the wrong type;
//     keys applied before it stay applied, the remaining keys are skipped.
func Load(s *Settings, primary, fallback string) (string, error) {
	path, err := load(s, primary, fallback)
	observability.Export().OnSettingsLoaded(path, err)
	return path, err
}

func load(s *Settings, primary, fallback string) (string, error) {
	path := primary
	if !exists(path) {
		path = fallback
		if !exists(path) {
			return "", nil
		}
	}

	v, err := read(path)
	if err != nil {
		return path, errors.Wrap(errors.ErrCodeSettingsUnreadable, err, "problem opening settings file %s", path)
	}
	if err := apply(s, v); err != nil {
		return path, fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// read loads path into a fresh viper instance. CMake list files are parsed
// here and merged in as a plain map so every format shares the same lookup.
func read(path string) (*viper.Viper, error) {
	v := viper.New()
	if strings.EqualFold(filepath.Ext(path), ".cmake") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		values, err := parseListFile(f)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, err
		}
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

// apply copies every recognized key present in v into s, in [Keys] order.
func apply(s *Settings, v *viper.Viper) error {
	bools := map[string]*bool{
		KeyIndentUseSpaces: &s.IndentUseSpaces,
		KeyExternalLibs:    &s.ExternalTargets,
		KeyIndirectLinks:   &s.IndirectLinks,
		KeyExecutables:     &s.Kinds.Executables,
		KeyStaticLibs:      &s.Kinds.StaticLibs,
		KeySharedLibs:      &s.Kinds.SharedLibs,
		KeyModuleLibs:      &s.Kinds.ModuleLibs,
		KeyInterfaceLibs:   &s.Kinds.InterfaceLibs,
		KeyObjectLibs:      &s.Kinds.ObjectLibs,
		KeyUnknownLibs:     &s.Kinds.UnknownLibs,
		KeyCustomTargets:   &s.Kinds.CustomTargets,
		KeyGlobalTargets:   &s.Kinds.GlobalTargets,
	}

	for _, key := range Keys {
		if !v.IsSet(key) {
			continue
		}
		raw := v.Get(key)

		switch key {
		case KeyIndentLength:
			n, err := toInt(raw)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidSettings, err, "%s", key)
			}
			if err := errors.ValidateIndentLength(n); err != nil {
				return err
			}
			s.IndentLength = n
		case KeyIgnoreTargets:
			s.IgnoreTargets = toList(raw)
		default:
			b, err := toBool(raw)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidSettings, err, "%s", key)
			}
			*bools[key] = b
		}
	}
	return nil
}

// toInt reads strings as base 10, so "010" is 10 as in CMake.
func toInt(raw any) (int, error) {
	if s, ok := raw.(string); ok {
		raw = decimal(strings.TrimSpace(s))
	}
	if f, ok := raw.(float64); ok && f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	return cast.ToIntE(raw)
}

// decimal strips leading zeros so cast does not read the value as octal.
func decimal(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if trimmed := strings.TrimLeft(s, "0"); trimmed != s {
		if trimmed == "" {
			trimmed = "0"
		}
		s = trimmed
	}
	return sign + s
}

// toBool follows CMake truthiness for strings: ON, YES, TRUE, Y and
// non-zero numbers are true; OFF, NO, FALSE, N, 0, IGNORE, NOTFOUND,
// *-NOTFOUND and the empty string are false.
func toBool(raw any) (bool, error) {
	s, ok := raw.(string)
	if !ok {
		if f, isFloat := raw.(float64); isFloat {
			return f != 0, nil
		}
		return cast.ToBoolE(raw)
	}
	u := strings.ToUpper(strings.TrimSpace(s))
	switch u {
	case "ON", "YES", "TRUE", "Y", "1":
		return true, nil
	case "OFF", "NO", "FALSE", "N", "0", "", "IGNORE", "NOTFOUND":
		return false, nil
	}
	if strings.HasSuffix(u, "-NOTFOUND") {
		return false, nil
	}
	if f, err := strconv.ParseFloat(u, 64); err == nil {
		return f != 0, nil
	}
	return false, fmt.Errorf("cannot interpret %q as a boolean", s)
}

// toList accepts a sequence or a ';'-separated string. Empty elements are
// dropped.
func toList(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, model.ListSeparator)
	case []string:
		parts = v
	case []any:
		for _, e := range v {
			parts = append(parts, cast.ToString(e))
		}
	default:
		parts = []string{cast.ToString(v)}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
