// Package report renders a simulation result envelope for the terminal.
// Rendering is pure string building, so it is testable without a TTY.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/preflight/internal/engine"
	"github.com/abhisek/preflight/internal/feedback"
)

// Color palette — consistent with a terminal-first diagnostic tool.
var (
	colorHigh   = lipgloss.Color("#F43F5E") // Rose
	colorMedium = lipgloss.Color("#F97316") // Orange
	colorLow    = lipgloss.Color("#14B8A6") // Teal
	colorText   = lipgloss.Color("#F8FAFC") // White
	colorDim    = lipgloss.Color("#94A3B8") // Slate
	colorAccent = lipgloss.Color("#8B5CF6") // Purple
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// Render builds the full terminal report for one simulation run.
func Render(out engine.Output) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Preflight — assessment dry run"))
	b.WriteString("\n\n")
	b.WriteString(renderSummary(out.Metadata))
	b.WriteString("\n")

	if len(out.RankedFeedback) == 0 {
		b.WriteString(dimStyle.Render("No structural weaknesses detected."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Recommendations (%d)", len(out.RankedFeedback))))
	b.WriteString("\n")
	for i, item := range out.RankedFeedback {
		b.WriteString(renderItem(i+1, item))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSummary(md engine.Metadata) string {
	delta := fmt.Sprintf("%+.1f min vs target", md.TimeTargetDeltaMinutes)
	lines := []string{
		fmt.Sprintf("Predicted time   %.1f min (%s)", md.PredictedTotalMinutes, delta),
		fmt.Sprintf("Overall risk     %s", riskBadge(md.OverallRisk)),
		fmt.Sprintf("Clusters found   %d", md.ClusterCount),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderItem(n int, item feedback.Item) string {
	head := fmt.Sprintf("%d. %s  %s  (severity %.2f)",
		n, priorityBadge(item.Priority), item.Category, item.Severity)

	var b strings.Builder
	b.WriteString(headerStyle.Render(head))
	b.WriteString("\n   ")
	b.WriteString(item.Recommendation)
	if item.Evidence != "" {
		b.WriteString("\n   ")
		b.WriteString(dimStyle.Render("Evidence: " + item.Evidence))
	}
	if len(item.ProblemIndices) > 0 {
		b.WriteString("\n   ")
		b.WriteString(dimStyle.Render("Problems: " + formatIndices(item.ProblemIndices)))
	}
	for _, a := range item.Actions {
		b.WriteString("\n   - ")
		b.WriteString(a)
	}
	b.WriteString("\n")
	return b.String()
}

func priorityBadge(p feedback.Priority) string {
	style := lipgloss.NewStyle().Bold(true)
	switch p {
	case feedback.PriorityHigh:
		return style.Foreground(colorHigh).Render("[HIGH]")
	case feedback.PriorityMedium:
		return style.Foreground(colorMedium).Render("[MEDIUM]")
	default:
		return style.Foreground(colorLow).Render("[LOW]")
	}
}

func riskBadge(r engine.RiskLevel) string {
	style := lipgloss.NewStyle().Bold(true)
	switch r {
	case engine.RiskHigh:
		return style.Foreground(colorHigh).Render("HIGH")
	case engine.RiskMedium:
		return style.Foreground(colorMedium).Render("MEDIUM")
	default:
		return style.Foreground(colorLow).Render("LOW")
	}
}

// formatIndices renders zero-based problem indices as a compact
// one-based list, e.g. "4-7" or "2, 5, 9".
func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return ""
	}

	contiguous := true
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(indices) > 1 {
		return fmt.Sprintf("%d-%d", indices[0]+1, indices[len(indices)-1]+1)
	}

	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx+1)
	}
	return strings.Join(parts, ", ")
}
