// Package report renders the downloadable PDF summary of a completed
// assessment.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
)

// Branding is passed explicitly to every render. No package-level
// defaults leak into the document.
type Branding struct {
	Product string
	Tagline string
	Website string
	Accent  [3]int
}

// DefaultBranding returns the stock product branding.
func DefaultBranding() Branding {
	return Branding{
		Product: "Mindmaker for Leaders",
		Tagline: "AI Leadership Assessment",
		Website: "mindmaker.example.com",
		Accent:  [3]int{31, 61, 122},
	}
}

// Data is everything that appears in the PDF.
type Data struct {
	Name        string
	Company     string
	Score       scoring.Result
	Tier        scoring.Tier
	Dimensions  []dimensions.Dimension
	Insight     insight.Insight
	GeneratedAt time.Time
}

// Render writes the PDF to w.
func Render(w io.Writer, data Data, brand Branding) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(brand.Product+" Report", false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	r, g, b := brand.Accent[0], brand.Accent[1], brand.Accent[2]

	// Header.
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, brand.Product, "", 1, "L", false, 0, "")
	pdf.SetTextColor(90, 90, 90)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, brand.Tagline, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Executive summary.
	pdf.SetTextColor(0, 0, 0)
	sectionTitle(pdf, r, g, b, "Executive Summary")

	who := data.Name
	if data.Company != "" {
		who = fmt.Sprintf("%s, %s", data.Name, data.Company)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, who, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Overall score: %d / 100", data.Score.Normalized), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, data.Tier.Label, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, data.Tier.Description, "", "L", false)
	pdf.Ln(2)
	if data.Insight.GrowthReadiness != "" {
		pdf.MultiCell(0, 5, data.Insight.GrowthReadiness, "", "L", false)
	}
	pdf.Ln(4)

	// Dimension table.
	sectionTitle(pdf, r, g, b, "Leadership Dimensions")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 245)
	pdf.CellFormat(70, 7, "Dimension", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Level", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, d := range data.Dimensions {
		pdf.CellFormat(70, 7, d.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", d.Score), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, string(d.Level), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Roadmap.
	if len(data.Insight.Roadmap) > 0 {
		sectionTitle(pdf, r, g, b, "Your 90-Day Roadmap")
		for _, item := range data.Insight.Roadmap {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", item.Horizon, item.Title), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, item.Description, "", "L", false)
			pdf.Ln(2)
		}
	}

	// Footer.
	pdf.SetY(-25)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetFont("Helvetica", "", 8)
	footer := fmt.Sprintf("Generated %s", data.GeneratedAt.Format("January 2, 2006"))
	if brand.Website != "" {
		footer += " - " + brand.Website
	}
	pdf.CellFormat(0, 5, footer, "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func sectionTitle(pdf *fpdf.Fpdf, r, g, b int, title string) {
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}
