package visuals

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"agendas-mcp/internal/stats"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

var kpiLabels = map[string]string{
	"total":           "Total slots",
	"occupancyRate":   "Occupancy rate",
	"absenteeismRate": "Absenteeism rate",
	"completed":       "Completed",
	"scheduled":       "Scheduled",
	"free":            "Free",
	"absent":          "Absent",
	"blocked":         "Blocked",
}

// WriteReport prints a dashboard as a terminal report.
func WriteReport(w io.Writer, d stats.Dashboard) error {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Schedule Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render(describeSelection(d.Selection)))
	sb.WriteString("\n\n")

	writeKPIs(&sb, d.KPIs, d.Comparison)
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Specialties (by %s %s)", d.Sort.Key, d.Sort.Direction)))
	sb.WriteString("\n")
	writeSpecialties(&sb, d.Specialties)
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render("Top Professionals"))
	sb.WriteString("\n")
	writeProfessionals(&sb, d.Professionals)
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render("Most Blocked Schedules"))
	sb.WriteString("\n")
	writeBlocked(&sb, d.Blocked)
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render("Series"))
	sb.WriteString("\n")
	writeSeries(&sb, d.Series)

	_, err := io.WriteString(w, sb.String())
	return err
}

func describeSelection(sel stats.FilterSelection) string {
	parts := []string{
		"facility: " + orAll(sel.Facility),
		"category: " + orAll(sel.SpecialtyCategory),
		"specialty: " + orAll(sel.Specialty),
	}
	weeks := make([]string, len(sel.Weeks))
	for i, w := range sel.Weeks {
		weeks[i] = string(w)
	}
	parts = append(parts, "weeks: "+strings.Join(weeks, ","))
	return strings.Join(parts, " | ")
}

func orAll(v string) string {
	if v == "" {
		return string(stats.WeekAll)
	}
	return v
}

func writeKPIs(sb *strings.Builder, k stats.KPISummary, cmp *stats.Comparison) {
	changes := map[string]stats.KPIChange{}
	if cmp != nil {
		for _, c := range cmp.Changes {
			changes[c.Metric] = c
		}
	}

	values := []struct {
		metric string
		value  string
	}{
		{"total", fmt.Sprintf("%d", k.Total)},
		{"occupancyRate", fmt.Sprintf("%.1f%%", k.OccupancyRate)},
		{"absenteeismRate", fmt.Sprintf("%.1f%%", k.AbsenteeismRate)},
		{"scheduled", fmt.Sprintf("%d", k.Scheduled)},
		{"completed", fmt.Sprintf("%d", k.Completed)},
		{"absent", fmt.Sprintf("%d", k.Absent)},
		{"free", fmt.Sprintf("%d", k.Free)},
		{"blocked", fmt.Sprintf("%d", k.Blocked)},
	}

	// Fixed widths instead of tabwriter: the coloured trend would skew its cell widths.
	for _, v := range values {
		line := fmt.Sprintf("%-18s%10s", kpiLabels[v.metric], v.value)
		if c, ok := changes[v.metric]; ok {
			line += "  " + FormatTrend(c)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("%-18s%10d\n", "Pending", k.Pending))

	if cmp != nil {
		sb.WriteString(subtitleStyle.Render(fmt.Sprintf("compared with week %d", cmp.Week)))
		sb.WriteString("\n")
	}
}

// FormatTrend renders a change as an arrow with its signed delta, coloured by whether the
// change is good news.
func FormatTrend(c stats.KPIChange) string {
	arrow := "="
	switch c.Direction {
	case stats.TrendUp:
		arrow = "▲"
	case stats.TrendDown:
		arrow = "▼"
	}

	var delta string
	if c.IsPercent {
		delta = fmt.Sprintf("%+.1f pp", c.Delta)
	} else {
		delta = fmt.Sprintf("%+.0f", c.Delta)
	}
	text := arrow + " " + delta

	if c.Favorable == nil {
		return subtitleStyle.Render(text)
	}
	if *c.Favorable {
		return goodStyle.Render(text)
	}
	return badStyle.Render(text)
}

func writeSpecialties(sb *strings.Builder, groups []stats.GroupBreakdown) {
	if len(groups) == 0 {
		sb.WriteString(subtitleStyle.Render("No slots in this selection."))
		sb.WriteString("\n")
		return
	}
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SPECIALTY\tTOTAL\tSCHEDULED\tCOMPLETED\tABSENT\tPENDING\tFREE\tBLOCKED\tOCCUPANCY\tABSENTEEISM")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f%%\t%.1f%%\n",
			g.Name, g.Total, g.Scheduled, g.Completed, g.Absent, g.Pending, g.Free, g.Blocked,
			g.OccupancyRate, g.AbsenteeismRate)
	}
	tw.Flush()
}

func writeProfessionals(sb *strings.Builder, ranking []stats.ProfessionalBreakdown) {
	if len(ranking) == 0 {
		sb.WriteString(subtitleStyle.Render("No scheduled appointments in this selection."))
		sb.WriteString("\n")
		return
	}
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPROFESSIONAL\tSCHEDULED\tCOMPLETED\tABSENT\tPENDING\tABSENTEEISM")
	for i, p := range ranking {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%.1f%%\n",
			i+1, p.ShortName, p.Scheduled, p.Completed, p.Absent, p.Pending, p.AbsenteeismRate)
	}
	tw.Flush()
}

func writeBlocked(sb *strings.Builder, entries []stats.BlockedEntry) {
	if len(entries) == 0 {
		sb.WriteString(subtitleStyle.Render("No blocked slots in this selection."))
		sb.WriteString("\n")
		return
	}
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFESSIONAL\tBLOCKED\tDAYS\tDATES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", e.Professional, e.Count, e.DistinctDays, e.DaysLabel)
	}
	tw.Flush()
}

func writeSeries(sb *strings.Builder, series stats.Series) {
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BUCKET\tTOTAL\tCOMPLETED\tPENDING\tABSENT\tFREE\tBLOCKED\tOCCUPANCY")
	for _, p := range series.Points {
		if series.Mode == stats.ModeDaily && p.Total == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f%%\n",
			p.Label, p.Total, p.Completed, p.Pending, p.Absent, p.Free, p.Blocked, p.OccupancyRate)
	}
	tw.Flush()
}
