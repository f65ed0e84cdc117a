package report

import (
	"context"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
)

// Export is a rendered document ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	ExportBatchExcel(ctx context.Context, batchID string) (Export, error)
	ExportBatchPDF(ctx context.Context, batchID string) (Export, error)
	// PayslipPDF renders one line item's payslip (accountant access).
	PayslipPDF(ctx context.Context, itemID string) (Export, error)
	// PayslipPDFForTeacher renders a payslip only if the item belongs to the
	// calling teacher.
	PayslipPDFForTeacher(ctx context.Context, itemID string) (Export, error)
	// TeacherPayslips lists the caller's items in approved or paid batches.
	TeacherPayslips(ctx context.Context) ([]payroll.TeacherItemResponse, error)
	// SalaryHistory lists all of the caller's items regardless of batch status.
	SalaryHistory(ctx context.Context) ([]payroll.TeacherItemResponse, error)
}
