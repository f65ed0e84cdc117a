package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

// ExportBatchPDF renders one batch as a landscape A4 table.
func (s *ReportServiceImpl) ExportBatchPDF(ctx context.Context, batchID string) (report.Export, error) {
	batch, err := s.payrollRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		return report.Export{}, err
	}
	items, err := s.payrollRepo.ListItems(ctx, batchID)
	if err != nil {
		return report.Export{}, err
	}

	org := s.org(ctx)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - Payroll %s", org.SchoolName, periodLabel(batch.Month, batch.Year)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s   Items: %d   Total Net: %s %s",
		batch.Status, batch.ItemCount, org.Currency, batch.TotalNet.StringFixed(2)))
	pdf.Ln(10)

	headers := []string{"Employee ID", "Teacher", "Scale", "Basic", "Gross", "Tax", "NSSF", "Deductions", "Net", "Status"}
	widths := []float64{26, 52, 22, 28, 28, 24, 24, 28, 28, 20}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, it := range items {
		cells := []string{
			deref(it.EmployeeID), deref(it.TeacherName), deref(it.SalaryScale),
			it.BasicSalary.StringFixed(2), it.GrossSalary.StringFixed(2),
			it.TaxAmount.StringFixed(2), it.NSSFAmount.StringFixed(2),
			it.TotalDeductions.StringFixed(2), it.NetSalary.StringFixed(2),
			string(it.PaymentStatus),
		}
		for i, cell := range cells {
			align := "R"
			if i < 3 || i == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.Export{}, fmt.Errorf("failed to render batch pdf: %w", err)
	}

	return report.Export{
		Filename:    fmt.Sprintf("payroll_%d_%02d.pdf", batch.Year, batch.Month),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) PayslipPDF(ctx context.Context, itemID string) (report.Export, error) {
	item, err := s.payrollRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return report.Export{}, err
	}
	return s.renderPayslip(ctx, item)
}

func (s *ReportServiceImpl) PayslipPDFForTeacher(ctx context.Context, itemID string) (report.Export, error) {
	t, err := s.callerTeacher(ctx)
	if err != nil {
		return report.Export{}, err
	}

	// Scoped lookup: an item outside the caller's own payroll reads as missing
	item, err := s.payrollRepo.GetItemForTeacher(ctx, itemID, t.ID)
	if err != nil {
		return report.Export{}, err
	}
	return s.renderPayslip(ctx, item)
}

func (s *ReportServiceImpl) renderPayslip(ctx context.Context, item payroll.Item) (report.Export, error) {
	batch, err := s.payrollRepo.GetBatchByID(ctx, item.PayrollID)
	if err != nil {
		return report.Export{}, err
	}

	org := s.org(ctx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, org.SchoolName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Payslip - %s", periodLabel(batch.Month, batch.Year)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Teacher: %s", deref(item.TeacherName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee ID: %s", deref(item.EmployeeID)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Salary Scale: %s", deref(item.SalaryScale)))
	pdf.Ln(10)

	line := func(label, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(120, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, amount, "", 1, "R", false, 0, "")
	}
	money := func(d interface{ StringFixed(int32) string }) string {
		return fmt.Sprintf("%s %s", org.Currency, d.StringFixed(2))
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	line("Basic Salary", money(item.BasicSalary), false)
	line("Housing Allowance", money(item.HousingAllowance), false)
	line("Transport Allowance", money(item.TransportAllowance), false)
	line("Medical Allowance", money(item.MedicalAllowance), false)
	line("Other Allowance", money(item.OtherAllowance), false)
	line("Gross Salary", money(item.GrossSalary), true)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	line("Tax (PAYE)", money(item.TaxAmount), false)
	line("NSSF", money(item.NSSFAmount), false)
	line("Loan Deduction", money(item.LoanDeduction), false)
	line("Other Deduction", money(item.OtherDeduction), false)
	line("Total Deductions", money(item.TotalDeductions), true)
	pdf.Ln(6)

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 10, "Net Salary", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 10, money(item.NetSalary), "1", 1, "R", true, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Payment Status: %s", item.PaymentStatus))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.Export{}, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return report.Export{
		Filename:    fmt.Sprintf("payslip_%s_%d_%02d.pdf", deref(item.EmployeeID), batch.Year, batch.Month),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
