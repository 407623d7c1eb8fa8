package settings

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/matzehuels/targetgraph/pkg/model"
)

// Only single-line set() calls are understood; other commands are skipped.
var (
	setPrefixRe  = regexp.MustCompile(`(?i)^set\s*\(`)
	setCommandRe = regexp.MustCompile(`(?i)^set\s*\((.*)\)$`)
)

// parseListFile reads "set(NAME value...)" lines from a CMake list file.
// Several unquoted values form a ';'-joined list, as in CMake, and a
// set() without a value unsets the variable. Comments start with '#'
// outside quotes.
func parseListFile(r io.Reader) (map[string]any, error) {
	values := make(map[string]any)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}
		if !setPrefixRe.MatchString(line) {
			continue
		}
		m := setCommandRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed set() command", lineNo)
		}
		args, err := splitArguments(m[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("line %d: set() without a variable name", lineNo)
		}
		if len(args) == 1 {
			// set(NAME) unsets NAME
			delete(values, args[0])
			continue
		}
		values[args[0]] = strings.Join(args[1:], model.ListSeparator)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func stripComment(line string) string {
	inQuote, escape := false, false
	for i, r := range line {
		switch {
		case escape:
			escape = false
		case inQuote && r == '\\':
			escape = true
		case r == '"':
			inQuote = !inQuote
		case r == '#' && !inQuote:
			return line[:i]
		}
	}
	return line
}

// splitArguments splits a CMake argument list on whitespace, keeping quoted
// arguments intact. Only \" and \\ are unescaped inside quotes.
func splitArguments(s string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		quoted  bool
		escape  bool
	)
	flush := func() {
		if cur.Len() > 0 || quoted {
			args = append(args, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for _, r := range s {
		switch {
		case escape:
			cur.WriteRune(r)
			escape = false
		case inQuote && r == '\\':
			escape = true
		case r == '"':
			inQuote = !inQuote
			quoted = true
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quoted argument")
	}
	flush()
	return args, nil
}
