// README: PDF exporter; renders a normalized itinerary into a printable document.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"travelbot/internal/planner"
)

// replacement substitutes characters the core fonts cannot encode.
const replacement = '?'

// PDF renders the itinerary into a paginated A4 document and returns the raw
// bytes. A nil itinerary yields a near-empty document rather than an error;
// the boundary layer owns any temp-file lifecycle around the buffer.
func PDF(itinerary *planner.Itinerary) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	title := "Trip Plan"
	if itinerary != nil && itinerary.Destination != "" {
		title = "Trip Plan: " + itinerary.Destination
	}
	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 9, latin1(title), "", "L", false)
	doc.Ln(2)

	if itinerary != nil {
		if itinerary.Summary != "" {
			doc.SetFont("Helvetica", "I", 11)
			doc.MultiCell(0, 6, latin1(itinerary.Summary), "", "L", false)
			doc.Ln(3)
		}

		for _, day := range itinerary.Days {
			doc.SetFont("Helvetica", "B", 13)
			doc.MultiCell(0, 7, latin1(fmt.Sprintf("Day %d: %s", day.Day, day.Theme)), "", "L", false)
			doc.SetFont("Helvetica", "", 11)
			for _, activity := range day.Activities {
				doc.MultiCell(0, 6, latin1("- "+activity), "", "L", false)
			}
			doc.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

// latin1 downgrades text to the single-byte encoding the PDF core fonts
// expect, substituting a replacement glyph for anything outside latin-1.
func latin1(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			out = append(out, byte(r))
		case r >= 0x20 && r <= 0x7E:
			out = append(out, byte(r))
		case r >= 0xA0 && r <= 0xFF:
			out = append(out, byte(r))
		default:
			out = append(out, replacement)
		}
	}
	return string(out)
}
