package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const batchColumns = `p.id, p.month, p.year, p.status, p.total_gross, p.total_deductions, p.total_net, p.processed_by, p.approved_by, p.created_at, p.updated_at`

// batchSelect joins item counts and the processor/approver display names.
const batchSelect = `
	SELECT ` + batchColumns + `,
		   (SELECT COUNT(*) FROM payroll_items i WHERE i.payroll_id = p.id),
		   pu.full_name, au.full_name
	FROM payroll p
	LEFT JOIN users pu ON pu.id = p.processed_by
	LEFT JOIN users au ON au.id = p.approved_by
`

func scanBatch(row pgx.Row) (payroll.Batch, error) {
	var b payroll.Batch
	var status string
	err := row.Scan(
		&b.ID, &b.Month, &b.Year, &status,
		&b.TotalGross, &b.TotalDeductions, &b.TotalNet,
		&b.ProcessedBy, &b.ApprovedBy, &b.CreatedAt, &b.UpdatedAt,
		&b.ItemCount, &b.ProcessedByName, &b.ApprovedByName,
	)
	if err != nil {
		return payroll.Batch{}, err
	}
	b.Status = payroll.Status(status)
	return b, nil
}

func (r *payrollRepository) GetBatchByPeriod(ctx context.Context, month, year int) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := batchSelect + ` WHERE p.month = $1 AND p.year = $2`

	b, err := scanBatch(q.QueryRow(ctx, query, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Batch{}, payroll.ErrPayrollNotFound
		}
		return payroll.Batch{}, fmt.Errorf("failed to get payroll batch by period: %w", err)
	}

	return b, nil
}

func (r *payrollRepository) GetBatchByID(ctx context.Context, id string) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := batchSelect + ` WHERE p.id = $1`

	b, err := scanBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Batch{}, payroll.ErrPayrollNotFound
		}
		return payroll.Batch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return b, nil
}

func (r *payrollRepository) CreateBatch(ctx context.Context, b payroll.Batch) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll (id, month, year, status, total_gross, total_deductions, total_net, processed_by, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.ID, b.Month, b.Year, string(b.Status),
		b.TotalGross, b.TotalDeductions, b.TotalNet,
		b.ProcessedBy, b.ApprovedBy,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_period") {
			return payroll.Batch{}, payroll.ErrPeriodConflict
		}
		return payroll.Batch{}, fmt.Errorf("failed to create payroll batch: %w", err)
	}

	return b, nil
}

func (r *payrollRepository) DeleteBatch(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE payroll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payroll items: %w", err)
	}

	result, err := q.Exec(ctx, `DELETE FROM payroll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll batch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) CreateItems(ctx context.Context, items []payroll.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	// Build batch insert query
	valueStrings := make([]string, 0, len(items))
	valueArgs := make([]interface{}, 0, len(items)*16)

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}

		base := i * 16
		placeholders := make([]string, 16)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")

		it := items[i]
		valueArgs = append(valueArgs,
			it.ID, it.PayrollID, it.TeacherID,
			it.BasicSalary, it.HousingAllowance, it.TransportAllowance,
			it.MedicalAllowance, it.OtherAllowance, it.GrossSalary,
			it.TaxAmount, it.NSSFAmount, it.LoanDeduction, it.OtherDeduction,
			it.TotalDeductions, it.NetSalary, string(it.PaymentStatus),
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO payroll_items (id, payroll_id, teacher_id, basic_salary, housing_allowance,
			transport_allowance, medical_allowance, other_allowance, gross_salary, tax_amount,
			nssf_amount, loan_deduction, other_deduction, total_deductions, net_salary, payment_status)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to batch create payroll items: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListBatches(ctx context.Context) ([]payroll.Batch, error) {
	return r.ListBatchesForPeriod(ctx, nil, nil)
}

func (r *payrollRepository) ListBatchesForPeriod(ctx context.Context, month, year *int) ([]payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := batchSelect
	var conds []string
	var args []interface{}
	if month != nil {
		args = append(args, *month)
		conds = append(conds, fmt.Sprintf("p.month = $%d", len(args)))
	}
	if year != nil {
		args = append(args, *year)
		conds = append(conds, fmt.Sprintf("p.year = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.year DESC, p.month DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		batches = append(batches, b)
	}

	return batches, nil
}

const itemColumns = `i.id, i.payroll_id, i.teacher_id, i.basic_salary, i.housing_allowance, i.transport_allowance, i.medical_allowance, i.other_allowance, i.gross_salary, i.tax_amount, i.nssf_amount, i.loan_deduction, i.other_deduction, i.total_deductions, i.net_salary, i.payment_status, i.created_at`

func scanItem(row pgx.Row, joined bool) (payroll.Item, error) {
	var it payroll.Item
	var status string
	dest := []interface{}{
		&it.ID, &it.PayrollID, &it.TeacherID,
		&it.BasicSalary, &it.HousingAllowance, &it.TransportAllowance,
		&it.MedicalAllowance, &it.OtherAllowance, &it.GrossSalary,
		&it.TaxAmount, &it.NSSFAmount, &it.LoanDeduction, &it.OtherDeduction,
		&it.TotalDeductions, &it.NetSalary, &status, &it.CreatedAt,
	}
	if joined {
		dest = append(dest, &it.TeacherName, &it.EmployeeID, &it.SalaryScale)
	}
	if err := row.Scan(dest...); err != nil {
		return payroll.Item{}, err
	}
	it.PaymentStatus = payroll.PaymentStatus(status)
	return it, nil
}

func (r *payrollRepository) ListItems(ctx context.Context, batchID string) ([]payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, t.full_name, t.employee_id, t.salary_scale
		FROM payroll_items i
		JOIN teachers t ON t.id = i.teacher_id
		WHERE i.payroll_id = $1
		ORDER BY t.full_name
	`, itemColumns)

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.Item
	for rows.Next() {
		it, err := scanItem(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, it)
	}

	return items, nil
}

func (r *payrollRepository) GetItemByID(ctx context.Context, id string) (payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, t.full_name, t.employee_id, t.salary_scale
		FROM payroll_items i
		JOIN teachers t ON t.id = i.teacher_id
		WHERE i.id = $1
	`, itemColumns)

	it, err := scanItem(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Item{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.Item{}, fmt.Errorf("failed to get payroll item: %w", err)
	}

	return it, nil
}

func (r *payrollRepository) SetBatchApproved(ctx context.Context, id, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET status = 'approved', approved_by = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, id, approvedBy)
	if err != nil {
		return fmt.Errorf("failed to approve payroll batch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) SetBatchStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := q.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to set payroll batch status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) SetItemPaymentStatus(ctx context.Context, id string, status payroll.PaymentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_items SET payment_status = $2 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to set payment status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayrollItemNotFound
	}

	return nil
}

func (r *payrollRepository) CountItemsByPaymentStatus(ctx context.Context, batchID string, status payroll.PaymentStatus) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM payroll_items WHERE payroll_id = $1 AND payment_status = $2`,
		batchID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payroll items: %w", err)
	}

	return count, nil
}

func (r *payrollRepository) ListRecipients(ctx context.Context, batchID string) ([]payroll.Recipient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.teacher_id, t.user_id, t.full_name, i.net_salary
		FROM payroll_items i
		JOIN teachers t ON t.id = i.teacher_id
		WHERE i.payroll_id = $1
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll recipients: %w", err)
	}
	defer rows.Close()

	var recipients []payroll.Recipient
	for rows.Next() {
		var rec payroll.Recipient
		if err := rows.Scan(&rec.ItemID, &rec.TeacherID, &rec.UserID, &rec.TeacherName, &rec.NetSalary); err != nil {
			return nil, fmt.Errorf("failed to scan payroll recipient: %w", err)
		}
		recipients = append(recipients, rec)
	}

	return recipients, nil
}

func (r *payrollRepository) ListItemsForTeacher(ctx context.Context, teacherID string, approvedOnly bool) ([]payroll.TeacherItem, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, p.month, p.year, p.status
		FROM payroll_items i
		JOIN payroll p ON p.id = i.payroll_id
		WHERE i.teacher_id = $1
	`, itemColumns)
	if approvedOnly {
		query += ` AND p.status IN ('approved', 'paid')`
	}
	query += ` ORDER BY p.year DESC, p.month DESC`

	rows, err := q.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.TeacherItem
	for rows.Next() {
		var ti payroll.TeacherItem
		var paymentStatus, batchStatus string
		if err := rows.Scan(
			&ti.ID, &ti.PayrollID, &ti.TeacherID,
			&ti.BasicSalary, &ti.HousingAllowance, &ti.TransportAllowance,
			&ti.MedicalAllowance, &ti.OtherAllowance, &ti.GrossSalary,
			&ti.TaxAmount, &ti.NSSFAmount, &ti.LoanDeduction, &ti.OtherDeduction,
			&ti.TotalDeductions, &ti.NetSalary, &paymentStatus, &ti.CreatedAt,
			&ti.Month, &ti.Year, &batchStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan teacher payroll item: %w", err)
		}
		ti.PaymentStatus = payroll.PaymentStatus(paymentStatus)
		ti.BatchStatus = payroll.Status(batchStatus)
		items = append(items, ti)
	}

	return items, nil
}

func (r *payrollRepository) GetItemForTeacher(ctx context.Context, itemID, teacherID string) (payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, t.full_name, t.employee_id, t.salary_scale
		FROM payroll_items i
		JOIN teachers t ON t.id = i.teacher_id
		WHERE i.id = $1 AND i.teacher_id = $2
	`, itemColumns)

	it, err := scanItem(q.QueryRow(ctx, query, itemID, teacherID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Item{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.Item{}, fmt.Errorf("failed to get teacher payroll item: %w", err)
	}

	return it, nil
}
