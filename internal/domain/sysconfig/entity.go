package sysconfig

// Well-known configuration keys.
const (
	KeySchoolName     = "school_name"
	KeyCurrency       = "currency"
	KeyPayrollPeriod  = "payroll_period"
	KeyTaxEnabled     = "tax_enabled"
	KeyNSSFPercentage = "nssf_percentage"
)

type Setting struct {
	Key   string
	Value string
}
