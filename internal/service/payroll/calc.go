package payroll

import (
	"strings"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeItem freezes one teacher's pay from their salary scale components.
// Tax and NSSF are percentages of basic salary only, not gross. Net is not
// clamped; deductions larger than gross produce a negative net.
func ComputeItem(c teacher.Compensation) payroll.Item {
	gross := c.BasicSalary.
		Add(c.HousingAllowance).
		Add(c.TransportAllowance).
		Add(c.MedicalAllowance).
		Add(c.OtherAllowance)

	tax := c.BasicSalary.Mul(c.TaxPercentage).Div(hundred)
	nssf := c.BasicSalary.Mul(c.NSSFPercentage).Div(hundred)
	totalDeductions := tax.Add(nssf).Add(c.LoanDeduction).Add(c.OtherDeduction)

	return payroll.Item{
		TeacherID:          c.TeacherID,
		BasicSalary:        c.BasicSalary,
		HousingAllowance:   c.HousingAllowance,
		TransportAllowance: c.TransportAllowance,
		MedicalAllowance:   c.MedicalAllowance,
		OtherAllowance:     c.OtherAllowance,
		GrossSalary:        gross,
		TaxAmount:          tax,
		NSSFAmount:         nssf,
		LoanDeduction:      c.LoanDeduction,
		OtherDeduction:     c.OtherDeduction,
		TotalDeductions:    totalDeductions,
		NetSalary:          gross.Sub(totalDeductions),
		PaymentStatus:      payroll.PaymentPending,
	}
}

// FormatAmount renders a money value with thousands separators, e.g.
// 860000 -> "860,000". A fractional part is kept only when present.
func FormatAmount(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)

	return b.String()
}
