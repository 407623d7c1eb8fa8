package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette, in 256-color codes.
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	// StyleTitle renders section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// StyleHighlight renders project names and other emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleText  = lipgloss.NewStyle().Foreground(colorText)
	styleLabel = lipgloss.NewStyle().Foreground(colorLabel)
	styleOK    = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
)

const (
	markOK   = "✓"
	markWarn = "!"
	markFile = "→"
	sepStats = " · "
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleOK.Render(markOK), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleWarn.Render(markWarn), styleWarn.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an indented output path.
func printFile(w io.Writer, path string) {
	fmt.Fprintf(w, "  %s %s\n", styleMuted.Render(markFile), styleText.Render(path))
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printKeyValue prints one settings row with the key padded to width.
func printKeyValue(w io.Writer, key, value string, width int) {
	fmt.Fprintf(w, "%s %s\n", styleLabel.Width(width).Render(key), styleText.Render(value))
}

// printToggle prints a boolean settings row as on/off.
func printToggle(w io.Writer, key string, on bool, width int) {
	value := styleMuted.Render("off")
	if on {
		value = styleOK.Render("on")
	}
	fmt.Fprintf(w, "%s %s\n", styleLabel.Width(width).Render(key), value)
}

// printStats prints the node and edge counts of an export, e.g.
// "4 nodes · 3 edges · json".
func printStats(w io.Writer, nodes, edges int, format string) {
	parts := []string{
		plural(nodes, "node"),
		plural(edges, "edge"),
		format,
	}
	fmt.Fprintln(w, "  "+styleMuted.Render(strings.Join(parts, sepStats)))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
