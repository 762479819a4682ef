package visuals

import (
	"fmt"
	"math"
	"strings"

	"agendas-mcp/internal/stats"
)

// GenerateSeriesChart creates a Mermaid xychart-beta with one bar per slot category and bucket.
// Mermaid draws bars of the same bucket on top of each other, so the largest category goes first.
func GenerateSeriesChart(series stats.Series) string {
	if len(series.Points) == 0 {
		return ""
	}

	var labels []string
	var totals, completed, pending, free, blocked []string
	maxVal := 0

	for _, p := range series.Points {
		labels = append(labels, quote(p.Label))
		totals = append(totals, fmt.Sprintf("%d", p.Total))
		completed = append(completed, fmt.Sprintf("%d", p.Completed))
		pending = append(pending, fmt.Sprintf("%d", p.Pending))
		free = append(free, fmt.Sprintf("%d", p.Free))
		blocked = append(blocked, fmt.Sprintf("%d", p.Blocked))
		if p.Total > maxVal {
			maxVal = p.Total
		}
	}

	title := "Slots per Week"
	if series.Mode == stats.ModeDaily {
		title = "Slots per Day"
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s\"\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Slots\" 0 --> %d\n", headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(totals, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(free, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(completed, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(pending, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(blocked, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateOccupancyChart creates a Mermaid line chart of the occupancy rate per bucket.
func GenerateOccupancyChart(series stats.Series) string {
	if len(series.Points) == 0 {
		return ""
	}

	var labels []string
	var values []string
	for _, p := range series.Points {
		labels = append(labels, quote(p.Label))
		values = append(values, fmt.Sprintf("%.1f", p.OccupancyRate))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Occupancy Rate (%)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Occupancy (%)\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateProfessionalChart creates a Mermaid bar chart of completed appointments per professional.
func GenerateProfessionalChart(ranking []stats.ProfessionalBreakdown) string {
	if len(ranking) == 0 {
		return ""
	}

	var labels []string
	var completed []string
	var scheduled []string
	maxVal := 0

	for _, p := range ranking {
		labels = append(labels, quote(p.ShortName))
		completed = append(completed, fmt.Sprintf("%d", p.Completed))
		scheduled = append(scheduled, fmt.Sprintf("%d", p.Scheduled))
		if p.Scheduled > maxVal {
			maxVal = p.Scheduled
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Top %d Professionals (Completed)\"\n", len(ranking)))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Appointments\" 0 --> %d\n", headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(scheduled, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(completed, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateBlockedChart creates a Mermaid bar chart of blocked slots per professional.
func GenerateBlockedChart(entries []stats.BlockedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0
	for _, e := range entries {
		labels = append(labels, quote(stats.ShortName(e.Professional)))
		values = append(values, fmt.Sprintf("%d", e.Count))
		if e.Count > maxVal {
			maxVal = e.Count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Blocked Slots by Professional\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Blocked Slots\" 0 --> %d\n", headroom(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateDashboardCharts concatenates every chart of a dashboard, skipping empty ones.
func GenerateDashboardCharts(d stats.Dashboard) string {
	var charts []string
	for _, c := range []string{
		GenerateSeriesChart(d.Series),
		GenerateOccupancyChart(d.Series),
		GenerateProfessionalChart(d.Professionals),
		GenerateBlockedChart(d.Blocked),
	} {
		if c != "" {
			charts = append(charts, c)
		}
	}
	return strings.Join(charts, "\n\n")
}

// headroom leaves 20% above the tallest bar, at least one unit.
func headroom(maxVal int) int {
	return maxVal + int(math.Max(1, math.Ceil(float64(maxVal)*0.2)))
}

func quote(label string) string {
	return `"` + strings.ReplaceAll(label, `"`, "'") + `"`
}
