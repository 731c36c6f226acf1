package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

const assignmentsPerLine = 4

// formatClock renders d as H:MM:SS, prefixed by the day count past 24h.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	days := total / 86400
	total %= 86400

	clock := fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)

	switch days {
	case 0:
		return clock
	case 1:
		return "1 day, " + clock
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}

// formatProgress renders one status line.
func formatProgress(p m.Progress) string {
	return fmt.Sprintf("%d of %d :: %.2f/s :: %s :: ETA %s :: %d%%",
		p.Done, p.Total, p.Rate(), formatClock(p.Elapsed), formatClock(p.ETA()), p.Percent())
}

// formatAssignments lays out per-site assignments, four per line.
func formatAssignments(assignments []m.Assignment) string {
	var b strings.Builder

	for i, a := range assignments {
		b.WriteString(a.String())

		if (i+1)%assignmentsPerLine == 0 || i == len(assignments)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("\t")
		}
	}

	return b.String()
}

func formatState(state m.State) string {
	parts := make([]string, len(state))
	for i, v := range state {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func printableByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(b)
	}

	return fmt.Sprintf("\\x%02x", b)
}

func renderEstimationTable(estimation m.Estimation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Site", "Offset", "Current", "Candidates"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	for _, row := range estimation.Rows {
		table.Append([]string{
			fmt.Sprintf("%d:%d", row.Site.Line, row.Site.Column),
			fmt.Sprintf("%d", row.Offset),
			printableByte(row.Current),
			fmt.Sprintf("%d", len(row.Site.Alphabet)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sites %d", len(estimation.Rows)),
		"",
		"",
		fmt.Sprintf("%d", estimation.Total),
	})

	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Trial", "Name", "Assignments", "Container"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rec := range summary.Records {
		parts := make([]string, len(rec.Assignments))
		for i, a := range rec.Assignments {
			parts[i] = a.String()
		}

		table.Append([]string{
			fmt.Sprintf("%d", rec.Index),
			fmt.Sprintf("%d", rec.Trial),
			rec.Name,
			strings.Join(parts, ", "),
			string(rec.ContainerPath),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func summaryHeadline(summary m.RunSummary) string {
	status := "completed"
	if summary.Interrupted {
		status = "interrupted"
	}

	return fmt.Sprintf("Search %s: %d of %d combinations tried in %s, %d success(es)",
		status, summary.Done, summary.Total, formatClock(summary.Elapsed), summary.Successes)
}
