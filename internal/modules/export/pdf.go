// README: Printable PDF quote sheet for a comparison view model.
package export

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/phpdave11/gofpdf"

	"busquote/internal/modules/comparison"
)

const (
	lineHeight = 6.0
	colHours   = 40.0
	colPrice   = 40.0
)

// QuoteSheet renders the shortlist with each vehicle's price rows, followed by
// the backup buckets in display order. It returns the PDF bytes and a filename.
func QuoteSheet(trip comparison.TripSummary, vm comparison.ViewModel) ([]byte, string, error) {
	pdf, tr := newDocument()
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Vehicle Quote Comparison")
	pdf.Ln(12)

	writeTrip(pdf, tr, trip)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, vm.Headline)
	pdf.Ln(10)
	for _, card := range vm.Main {
		writeCard(pdf, tr, card, true)
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "More Options")
	pdf.Ln(10)
	for _, b := range vm.Buckets {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, b.Label)
		pdf.Ln(8)
		if b.Empty {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.Cell(0, lineHeight, b.EmptyMessage)
			pdf.Ln(lineHeight + 2)
			continue
		}
		for _, card := range b.Options {
			writeCard(pdf, tr, card, false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render quote sheet: %w", err)
	}
	name := Filename(trip)
	log.Printf("[EXPORT] action=quote_sheet file=%s bytes=%d", name, buf.Len())
	return buf.Bytes(), name, nil
}

func writeTrip(pdf *gofpdf.Fpdf, tr func(string) string, trip comparison.TripSummary) {
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Pickup ZIP : %s", safe(trip.ZipCode, "-")),
		fmt.Sprintf("Date       : %s", safe(trip.Date, "-")),
		fmt.Sprintf("Passengers : %s", safe(trip.PassengersLabel, "-")),
		fmt.Sprintf("Duration   : %s", safe(trip.HoursLabel, "-")),
		fmt.Sprintf("Event      : %s", safe(trip.EventType, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, lineHeight, tr(s))
		pdf.Ln(lineHeight)
	}
	pdf.Ln(4)
}

func writeCard(pdf *gofpdf.Fpdf, tr func(string) string, card comparison.Card, withBadge bool) {
	pdf.SetFont("Helvetica", "B", 11)
	title := fmt.Sprintf("%d. %s", card.Rank, card.Name)
	if withBadge {
		title += " [" + card.CategoryLabel + "]"
	}
	pdf.Cell(0, lineHeight, tr(title))
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, lineHeight, card.CapacityLabel)
	pdf.Ln(lineHeight)

	for _, row := range card.Prices {
		style := ""
		if row.Highlight {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(colHours, lineHeight, row.Label, "1", 0, "L", row.Highlight, 0, "")
		pdf.CellFormat(colPrice, lineHeight, row.Display, "1", 1, "R", row.Highlight, 0, "")
	}
	pdf.Ln(3)
}

// newDocument returns a Letter page setup and a translator from UTF-8 to the
// cp1252 encoding the core Helvetica font expects.
func newDocument() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Vehicle Quote Comparison", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFillColor(225, 236, 252)
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// Filename builds "quote-<zip>-<date>.pdf" from filename-safe characters only.
func Filename(trip comparison.TripSummary) string {
	parts := []string{"quote"}
	for _, p := range []string{trip.ZipCode, trip.Date} {
		if s := safeFilenamePart(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-") + ".pdf"
}

func safe(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func safeFilenamePart(v string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(v) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
