package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/c51838777-max/santakrit/internal/utils"
)

// BuildSlipPDF renders a salary slip as a downloadable PDF. Labels stay in
// English: the built-in fonts cannot render Thai script.
func BuildSlipPDF(slip SlipView) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Slip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SALARY SLIP")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Driver          : %s", safe(slip.DriverName, "-")),
		fmt.Sprintf("Pay period      : %s", safe(slip.Period, "-")),
		fmt.Sprintf("Trips logged    : %d", slip.TripCount),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	earnings := []string{
		fmt.Sprintf("Trip wages      : %s", utils.FormatBaht(slip.TotalWage)),
		fmt.Sprintf("Basket share    : %s", utils.FormatBaht(slip.TotalBasketShare)),
		fmt.Sprintf("Housing         : %s", utils.FormatBaht(slip.HousingAllowance)),
		fmt.Sprintf("Gross total     : %s", utils.FormatBaht(slip.GrossTotal)),
	}
	for _, line := range earnings {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Deductions")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	deductions := []string{
		fmt.Sprintf("Advances drawn  : -%s", utils.FormatBaht(slip.TotalAdvance)),
	}
	if slip.OtherDeductions > 0 {
		deductions = append(deductions, fmt.Sprintf("Other (CN)      : -%s", utils.FormatBaht(slip.OtherDeductions)))
	}
	for _, line := range deductions {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, "NET PAYABLE : "+utils.FormatBaht(slip.NetPayable))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Figures are derived from trips logged in the system for the stated pay period.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SLIP_%s_%s.pdf", utils.SafeFilenamePart(slip.DriverName), utils.SafeFilenamePart(slip.Period))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
