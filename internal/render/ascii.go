// Package render draws solution profiles and reports for the bvpsolve
// CLI: braille-free line plots via asciigraph, styled summaries via
// lipgloss, and SVG curve export.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Title styles a section heading.
func Title(s string) string { return titleStyle.Render(s) }

// OK styles a success marker.
func OK(s string) string { return okStyle.Render(s) }

// Fail styles a failure marker.
func Fail(s string) string { return failStyle.Render(s) }

// Note styles secondary detail.
func Note(s string) string { return dimStyle.Render(s) }

// Profile plots ys against an implicit uniform x axis and labels the
// true x range underneath.
func Profile(caption string, xs, ys []float64, width, height int) string {
	plot := asciigraph.Plot(ys,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
	var sb strings.Builder
	sb.WriteString(plot)
	if len(xs) > 1 {
		sb.WriteString("\n")
		sb.WriteString(Note(fmt.Sprintf("x in [%g, %g], %d samples", xs[0], xs[len(xs)-1], len(xs))))
	}
	return sb.String()
}

// Growth plots a series of workspace sizes against mesh size.
func Growth(caption string, sizes []float64, width, height int) string {
	return asciigraph.Plot(sizes,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}
