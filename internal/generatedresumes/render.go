package generatedresumes

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"careerhub/internal/resume"
)

const (
	pageMargin = 18.0
	lineHeight = 5.5
)

// RenderPDF lays the document out as a single-column A4 resume.
func RenderPDF(doc *resume.Document) ([]byte, error) {
	if doc == nil {
		doc = resume.New()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(titleFor(doc), true)
	pdf.SetCreator("careerhub", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	p := doc.Personal
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(orDefault(p.Name, "Resume")), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if contact := joinNonEmpty(" | ", p.Email, p.Phone, p.Location); contact != "" {
		pdf.CellFormat(0, lineHeight, tr(contact), "", 1, "L", false, 0, "")
	}
	if links := joinNonEmpty(" | ", p.LinkedIn, p.Website); links != "" {
		pdf.CellFormat(0, lineHeight, tr(links), "", 1, "L", false, 0, "")
	}

	if s := strings.TrimSpace(doc.Summary); s != "" {
		heading(pdf, "Professional Summary")
		pdf.MultiCell(0, lineHeight, tr(s), "", "L", false)
	}

	if len(doc.Experience) > 0 {
		heading(pdf, "Work Experience")
		for _, exp := range doc.Experience {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, lineHeight+0.5, tr(joinNonEmpty(" - ", exp.Title, exp.Company)), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "I", 9)
			if period := joinNonEmpty(" - ", exp.StartDate, exp.EndDate); period != "" {
				pdf.CellFormat(0, lineHeight, tr(period), "", 1, "L", false, 0, "")
			}
			pdf.SetFont("Helvetica", "", 10)
			if d := strings.TrimSpace(exp.Description); d != "" {
				pdf.MultiCell(0, lineHeight, tr(d), "", "L", false)
			}
			pdf.Ln(1.5)
		}
	}

	if len(doc.Education) > 0 {
		heading(pdf, "Education")
		for _, edu := range doc.Education {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, lineHeight+0.5, tr(joinNonEmpty(" - ", edu.Degree, edu.School)), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "I", 9)
			if period := joinNonEmpty(" - ", edu.StartDate, edu.EndDate); period != "" {
				pdf.CellFormat(0, lineHeight, tr(period), "", 1, "L", false, 0, "")
			}
		}
	}

	if len(doc.Skills) > 0 {
		heading(pdf, "Skills")
		pdf.MultiCell(0, lineHeight, tr(strings.Join(doc.Skills, ", ")), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, text, "B", 1, "L", false, 0, "")
	pdf.Ln(1.5)
	pdf.SetFont("Helvetica", "", 10)
}

func titleFor(doc *resume.Document) string {
	if name := strings.TrimSpace(doc.Personal.Name); name != "" {
		return name + " - Resume"
	}
	return "Resume"
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
