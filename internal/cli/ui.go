package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphlight/pkg/pipeline"
	"github.com/matzehuels/graphlight/pkg/style"
)

// Terminal colors. The amber and blue match the default figure colors, so
// the inspect tables and the picker read like the rendered image.
var (
	colorAccent  = lipgloss.Color("36")  // teal
	colorOK      = lipgloss.Color("35")  // green
	colorFail    = lipgloss.Color("167") // soft red
	colorCommand = lipgloss.Color("75")  // light blue
	colorBright  = lipgloss.Color("255")
	colorMuted   = lipgloss.Color("245")
	colorFaint   = lipgloss.Color("240")

	colorAmber = lipgloss.Color(style.DefaultHighlightedColor)
)

// Styles shared by the commands.
var (
	// StyleTitle renders headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue renders paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorBright)

	// StyleHighlighted marks highlighted nodes and edges.
	StyleHighlighted = lipgloss.NewStyle().Foreground(colorAmber).Bold(true)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand     = lipgloss.NewStyle().Foreground(colorCommand)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// statusLine prints one status message behind a colored icon.
func statusLine(color lipgloss.Color, icon, format string, args ...any) {
	fmt.Println(lipgloss.NewStyle().Foreground(color).Render(icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { statusLine(colorOK, iconSuccess, format, args...) }
func printError(format string, args ...any)   { statusLine(colorFail, iconError, format, args...) }
func printInfo(format string, args ...any)    { statusLine(colorMuted, iconInfo, format, args...) }

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats summarises a render: graph size, how many highlighted nodes the
// graph actually contains, and whether the figure came from the cache.
func printStats(res *pipeline.Result) {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d nodes", res.Stats.NodeCount)),
		StyleDim.Render(fmt.Sprintf("%d edges", res.Stats.EdgeCount)),
	}
	if n := highlightedCount(res); n > 0 {
		parts = append(parts, StyleHighlighted.Render(fmt.Sprintf("%d highlighted", n)))
	}
	if res.CacheHit {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorOK).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorMuted).Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

func highlightedCount(res *pipeline.Result) int {
	if res.Graph == nil {
		return 0
	}
	n := 0
	for id := range res.Selection.Nodes {
		if res.Graph.HasNode(id) {
			n++
		}
	}
	return n
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
