package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
)

// barWidth is the number of columns the timeline window is drawn across.
const barWidth = 48

var overlayMarks = map[calendar.OverlayKind]string{
	calendar.OverlayHoliday:    "H",
	calendar.OverlayLeave:      "L",
	calendar.OverlayAttendance: "A",
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", colWidths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
}

func renderMonth(w io.Writer, m calendar.MonthResponse) error {
	fmt.Fprintf(w, "%s %d\n\n", m.MonthName, m.Year)

	var rows [][]string
	for _, week := range m.Weeks() {
		row := make([]string, len(week))
		for i, cell := range week {
			row[i] = monthCell(cell)
		}
		rows = append(rows, row)
	}
	printTable(w, m.Weekdays, rows)

	var legend [][]string
	for _, cell := range m.Cells {
		if cell.IsPadding || cell.Overlay.Kind == calendar.OverlayNone || cell.Overlay.Kind == "" {
			continue
		}
		detail := cell.Overlay.Label
		if cell.Overlay.Hours != "" {
			detail = strings.TrimSpace(detail + " " + cell.Overlay.Hours)
		}
		if cell.Overlay.Badge != "" {
			detail += " [" + cell.Overlay.Badge + "]"
		}
		legend = append(legend, []string{cell.Date.String(), string(cell.Overlay.Kind), detail})
	}
	if len(legend) > 0 {
		fmt.Fprintln(w)
		printTable(w, []string{"Date", "Kind", "Detail"}, legend)
	}
	if m.Truncated {
		fmt.Fprintln(w, "\nThe month did not fit in six weeks; trailing days were dropped.")
	}
	return nil
}

func monthCell(cell calendar.DayCell) string {
	if cell.IsPadding {
		return ""
	}
	text := fmt.Sprintf("%2d%s", cell.DayNumber, overlayMarks[cell.Overlay.Kind])
	if cell.IsToday {
		text = "[" + text + "]"
	}
	return text
}

func renderHolidays(w io.Writer, holidays []calendar.Holiday) error {
	if len(holidays) == 0 {
		fmt.Fprintln(w, "No upcoming holidays.")
		return nil
	}
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, []string{h.Date.String(), h.Date.Weekday().String()[:3], h.Label()})
	}
	printTable(w, []string{"Date", "Day", "Name"}, rows)
	return nil
}

func renderWeek(w io.Writer, week timeline.WeekResponse) error {
	fmt.Fprintf(w, "%s  (%02d:00-%02d:00)\n\n", week.RangeLabel, week.Window.StartHour, week.Window.EndHour)

	rows := make([][]string, 0, len(week.Days))
	for _, day := range week.Days {
		label := day.DayOfWeek + " " + day.DayLabel
		if day.IsToday {
			label += " *"
		}
		rows = append(rows, []string{label, sessionBars(day.Sessions), day.TotalLabel, day.Status})
	}
	printTable(w, []string{"Day", "Sessions", "Total", "Status"}, rows)

	fmt.Fprintf(w, "\nTotal %s, present %d, absent %d\n",
		week.Summary.TotalLabel, week.Summary.PresentDays, week.Summary.AbsentDays)
	return nil
}

// sessionBars draws every visible session of a day onto one line. Open
// sessions are drawn with '>' so they stand apart from closed ones.
func sessionBars(sessions []timeline.SessionBar) string {
	line := []byte(strings.Repeat(".", barWidth))
	for _, s := range sessions {
		if !s.Bar.Visible {
			continue
		}
		start := int(math.Round(s.Bar.OffsetPercent / 100 * barWidth))
		width := int(math.Round(s.Bar.WidthPercent / 100 * barWidth))
		if width < 1 {
			width = 1
		}
		mark := byte('#')
		if s.Open {
			mark = '>'
		}
		for i := start; i < start+width && i < barWidth; i++ {
			if i >= 0 {
				line[i] = mark
			}
		}
	}
	return "|" + string(line) + "|"
}

func renderLeaveResult(w io.Writer, result leave.ValidationResult) {
	if result.Accepted {
		fmt.Fprintf(w, "ACCEPTED: %s (%s days)\n", result.Message, result.RequiredDays.String())
		return
	}
	fmt.Fprintf(w, "REJECTED %s: %s\n", result.ReasonCode, result.Message)
}

func renderRegularizationResult(w io.Writer, resp regularization.ValidationResponse) {
	if resp.Accepted {
		fmt.Fprintf(w, "ACCEPTED: %s\n", resp.Message)
	} else {
		fmt.Fprintf(w, "REJECTED %s: %s\n", resp.ReasonCode, resp.Message)
	}
	fmt.Fprintf(w, "regularized=%s required=%s logged=%s\n",
		resp.RegularizedHours.String(), resp.RequiredHours.String(), resp.LoggedHours.String())
}
