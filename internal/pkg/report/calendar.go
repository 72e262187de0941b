// Package report renders printable documents.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 10.0
	headerH    = 8.0
	cellH      = 26.0
)

type rgb struct{ r, g, b int }

var badgeColors = map[string]rgb{
	"status-holiday":  {255, 236, 179},
	"status-leave":    {209, 232, 255},
	"status-absent":   {255, 214, 214},
	"status-half-day": {255, 243, 205},
	"status-present":  {214, 245, 214},
}

// MonthPDF writes a one page landscape calendar for m. The returned string is
// the document reference printed in the footer.
func MonthPDF(w io.Writer, title string, m calendar.MonthResponse, generatedAt time.Time) (string, error) {
	ref := uuid.NewString()

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetTitle(title, true)
	pdf.SetSubject(fmt.Sprintf("%s %d", m.MonthName, m.Year), true)
	pdf.SetCreator("hris-portal", true)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	colW := (pageW - 2*pageMargin) / 7

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s %d", title, m.MonthName, m.Year), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, label := range m.Weekdays {
		pdf.CellFormat(colW, headerH, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(headerH)

	for _, week := range m.Weeks() {
		y := pdf.GetY()
		for i, cell := range week {
			drawCell(pdf, pageMargin+float64(i)*colW, y, colW, cell)
		}
		pdf.SetXY(pageMargin, y+cellH)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Ln(3)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s  Ref %s", generatedAt.Format(time.RFC1123), ref), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return "", fmt.Errorf("failed to write calendar pdf: %w", err)
	}
	return ref, nil
}

func drawCell(pdf *gofpdf.Fpdf, x, y, w float64, cell calendar.DayCell) {
	fill := false
	if c, ok := badgeColors[cell.Overlay.Badge]; ok && !cell.IsPadding {
		pdf.SetFillColor(c.r, c.g, c.b)
		fill = true
	}
	style := "D"
	if fill {
		style = "FD"
	}
	pdf.SetDrawColor(180, 180, 180)
	pdf.Rect(x, y, w, cellH, style)

	switch {
	case cell.IsPadding:
		pdf.SetTextColor(170, 170, 170)
	case cell.IsWeekend:
		pdf.SetTextColor(200, 40, 40)
	default:
		pdf.SetTextColor(30, 30, 30)
	}
	font := ""
	if cell.IsToday {
		font = "B"
	}
	pdf.SetFont("Helvetica", font, 11)
	pdf.SetXY(x+1, y+1)
	pdf.CellFormat(w-2, 5, fmt.Sprintf("%d", cell.DayNumber), "", 2, "L", false, 0, "")

	if cell.IsPadding || cell.Overlay.Kind == calendar.OverlayNone {
		return
	}
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetX(x + 1)
	pdf.MultiCell(w-2, 4, cell.Overlay.Label, "", "L", false)
	if cell.Overlay.Hours != "" {
		pdf.SetX(x + 1)
		pdf.CellFormat(w-2, 4, cell.Overlay.Hours, "", 2, "L", false, 0, "")
	}
}
