package report

import (
	"bytes"
	"fmt"
	"io"

	"attendance/console/internal/entity"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
)

// HistoryPDF writes an employee's attendance sheet: header with badge,
// totals, then one row per record.
func HistoryPDF(w io.Writer, h entity.EmployeeHistory) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Attendance history %s", h.Employee.EmployeeID), true)
	pdf.AddPage()

	if h.Employee.EmployeeID != "" {
		png, err := BadgePNG(h.Employee.EmployeeID)
		if err != nil {
			return err
		}
		pdf.RegisterImageOptionsReader("badge", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
		pdf.ImageOptions("badge", 165, 10, 30, 30, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, pdf.UnicodeTranslatorFromDescriptor("")(h.Employee.FullName))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s  |  %s  |  %s", h.Employee.EmployeeID, h.Employee.Department, h.Employee.Email))
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "B", 11)
	for _, total := range []struct {
		label string
		value int
	}{
		{"Total days", h.Stats.TotalDays},
		{"Present", h.Stats.PresentDays},
		{"Absent", h.Stats.AbsentDays},
	} {
		pdf.CellFormat(60, 8, fmt.Sprintf("%s: %d", total.label, total.value), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(14)

	pdf.SetFillColor(237, 233, 254)
	pdf.CellFormat(90, 8, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 8, "Status", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if len(h.Records) == 0 {
		pdf.CellFormat(180, 8, "No attendance records.", "1", 1, "C", false, 0, "")
	}
	for _, record := range h.Records {
		pdf.CellFormat(90, 7, record.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, string(record.Status), "1", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}
