package report

import (
	"context"
	"fmt"

	"github.com/edupay/edupay-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var excelHeaders = []string{
	"Employee ID", "Teacher", "Salary Scale", "Basic Salary",
	"Housing", "Transport", "Medical", "Other Allowance", "Gross",
	"Tax", "NSSF", "Loan", "Other Deduction", "Total Deductions",
	"Net Salary", "Payment Status",
}

// ExportBatchExcel renders one batch as a spreadsheet: a title row, a
// status/totals row, a styled header and one row per line item.
func (s *ReportServiceImpl) ExportBatchExcel(ctx context.Context, batchID string) (report.Export, error) {
	batch, err := s.payrollRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		return report.Export{}, err
	}
	items, err := s.payrollRepo.ListItems(ctx, batchID)
	if err != nil {
		return report.Export{}, err
	}

	org := s.org(ctx)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to create header style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(excelHeaders))

	title := fmt.Sprintf("%s - Payroll %s", org.SchoolName, periodLabel(batch.Month, batch.Year))
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", lastCol+"1")
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)

	f.SetCellValue(sheet, "A2", fmt.Sprintf("Status: %s | Total Net: %s %s",
		batch.Status, org.Currency, batch.TotalNet.StringFixed(2)))
	f.MergeCell(sheet, "A2", lastCol+"2")

	for i, header := range excelHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"3", header)
	}
	f.SetCellStyle(sheet, "A3", lastCol+"3", headerStyle)

	for i, it := range items {
		row := i + 4
		values := []interface{}{
			deref(it.EmployeeID), deref(it.TeacherName), deref(it.SalaryScale),
			it.BasicSalary.InexactFloat64(), it.HousingAllowance.InexactFloat64(),
			it.TransportAllowance.InexactFloat64(), it.MedicalAllowance.InexactFloat64(),
			it.OtherAllowance.InexactFloat64(), it.GrossSalary.InexactFloat64(),
			it.TaxAmount.InexactFloat64(), it.NSSFAmount.InexactFloat64(),
			it.LoanDeduction.InexactFloat64(), it.OtherDeduction.InexactFloat64(),
			it.TotalDeductions.InexactFloat64(), it.NetSalary.InexactFloat64(),
			string(it.PaymentStatus),
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	f.SetColWidth(sheet, "A", "C", 18)
	f.SetColWidth(sheet, "D", lastCol, 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return report.Export{
		Filename:    fmt.Sprintf("payroll_%d_%02d.xlsx", batch.Year, batch.Month),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
