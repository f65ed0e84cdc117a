package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	batches map[string]payroll.Batch
	items   map[string]payroll.Item

	lastApprovedOnly bool
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		batches: make(map[string]payroll.Batch),
		items:   make(map[string]payroll.Item),
	}
}

func (r *fakePayrollRepo) GetBatchByPeriod(_ context.Context, month, year int) (payroll.Batch, error) {
	for _, b := range r.batches {
		if b.Month == month && b.Year == year {
			return b, nil
		}
	}
	return payroll.Batch{}, payroll.ErrPayrollNotFound
}

func (r *fakePayrollRepo) GetBatchByID(_ context.Context, id string) (payroll.Batch, error) {
	b, ok := r.batches[id]
	if !ok {
		return payroll.Batch{}, payroll.ErrPayrollNotFound
	}
	return b, nil
}

func (r *fakePayrollRepo) CreateBatch(_ context.Context, b payroll.Batch) (payroll.Batch, error) {
	r.batches[b.ID] = b
	return b, nil
}

func (r *fakePayrollRepo) DeleteBatch(_ context.Context, id string) error {
	delete(r.batches, id)
	return nil
}

func (r *fakePayrollRepo) CreateItems(_ context.Context, items []payroll.Item) error {
	for _, it := range items {
		r.items[it.ID] = it
	}
	return nil
}

func (r *fakePayrollRepo) ListBatches(_ context.Context) ([]payroll.Batch, error) { return nil, nil }

func (r *fakePayrollRepo) ListBatchesForPeriod(_ context.Context, _, _ *int) ([]payroll.Batch, error) {
	return nil, nil
}

func (r *fakePayrollRepo) ListItems(_ context.Context, batchID string) ([]payroll.Item, error) {
	var out []payroll.Item
	for _, it := range r.items {
		if it.PayrollID == batchID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) GetItemByID(_ context.Context, id string) (payroll.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return payroll.Item{}, payroll.ErrPayrollItemNotFound
	}
	return it, nil
}

func (r *fakePayrollRepo) SetBatchApproved(_ context.Context, _, _ string) error { return nil }

func (r *fakePayrollRepo) SetBatchStatus(_ context.Context, _ string, _ payroll.Status) error {
	return nil
}

func (r *fakePayrollRepo) SetItemPaymentStatus(_ context.Context, _ string, _ payroll.PaymentStatus) error {
	return nil
}

func (r *fakePayrollRepo) CountItemsByPaymentStatus(_ context.Context, _ string, _ payroll.PaymentStatus) (int, error) {
	return 0, nil
}

func (r *fakePayrollRepo) ListRecipients(_ context.Context, _ string) ([]payroll.Recipient, error) {
	return nil, nil
}

func (r *fakePayrollRepo) ListItemsForTeacher(_ context.Context, teacherID string, approvedOnly bool) ([]payroll.TeacherItem, error) {
	r.lastApprovedOnly = approvedOnly
	var out []payroll.TeacherItem
	for _, it := range r.items {
		if it.TeacherID != teacherID {
			continue
		}
		b := r.batches[it.PayrollID]
		if approvedOnly && !b.Status.Terminal() {
			continue
		}
		out = append(out, payroll.TeacherItem{Item: it, Month: b.Month, Year: b.Year, BatchStatus: b.Status})
	}
	return out, nil
}

func (r *fakePayrollRepo) GetItemForTeacher(_ context.Context, itemID, teacherID string) (payroll.Item, error) {
	it, ok := r.items[itemID]
	if !ok || it.TeacherID != teacherID {
		return payroll.Item{}, payroll.ErrPayrollItemNotFound
	}
	return it, nil
}

type fakeTeacherRepo struct {
	teachers map[string]teacher.Teacher
}

func (r *fakeTeacherRepo) List(_ context.Context) ([]teacher.Teacher, error) { return nil, nil }

func (r *fakeTeacherRepo) GetByID(_ context.Context, id string) (teacher.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return teacher.Teacher{}, teacher.ErrTeacherNotFound
	}
	return t, nil
}

func (r *fakeTeacherRepo) GetByUserID(_ context.Context, userID string) (teacher.Teacher, error) {
	for _, t := range r.teachers {
		if t.UserID != nil && *t.UserID == userID {
			return t, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrTeacherNotFound
}

func (r *fakeTeacherRepo) Create(_ context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	return t, nil
}

func (r *fakeTeacherRepo) Update(_ context.Context, _ teacher.Teacher) error { return nil }
func (r *fakeTeacherRepo) Delete(_ context.Context, _ string) error          { return nil }
func (r *fakeTeacherRepo) Count(_ context.Context) (int, error)              { return 0, nil }
func (r *fakeTeacherRepo) CountActive(_ context.Context) (int, error)        { return 0, nil }

func (r *fakeTeacherRepo) ListActiveCompensation(_ context.Context) ([]teacher.Compensation, error) {
	return nil, nil
}

type fakeConfigRepo struct {
	values map[string]string
	err    error
}

func (r *fakeConfigRepo) GetAll(_ context.Context) (map[string]string, error) {
	return r.values, r.err
}

func (r *fakeConfigRepo) Get(_ context.Context, key string) (string, error) {
	return r.values[key], r.err
}

func (r *fakeConfigRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func strPtr(s string) *string { return &s }

// seedBatch stores an approved batch with one item per teacher ID.
func seedBatch(repo *fakePayrollRepo, batchID string, month, year int, status payroll.Status, teacherIDs ...string) {
	repo.batches[batchID] = payroll.Batch{
		ID: batchID, Month: month, Year: year, Status: status,
		TotalNet: decimal.NewFromInt(860000), ItemCount: len(teacherIDs),
	}
	for i, tid := range teacherIDs {
		id := batchID + "-item-" + tid
		repo.items[id] = payroll.Item{
			ID:                 id,
			PayrollID:          batchID,
			TeacherID:          tid,
			BasicSalary:        decimal.NewFromInt(800000),
			HousingAllowance:   decimal.NewFromInt(100000),
			TransportAllowance: decimal.NewFromInt(50000),
			MedicalAllowance:   decimal.NewFromInt(30000),
			GrossSalary:        decimal.NewFromInt(980000),
			TaxAmount:          decimal.NewFromInt(80000),
			NSSFAmount:         decimal.NewFromInt(40000),
			TotalDeductions:    decimal.NewFromInt(120000),
			NetSalary:          decimal.NewFromInt(860000),
			PaymentStatus:      payroll.PaymentPending,
			TeacherName:        strPtr("Teacher " + tid),
			EmployeeID:         strPtr("TCH000" + string(rune('1'+i))),
			SalaryScale:        strPtr("Scale_1"),
		}
	}
}

func claimsContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService() (*fakePayrollRepo, *fakeTeacherRepo, *fakeConfigRepo, *ReportServiceImpl) {
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{teachers: map[string]teacher.Teacher{
		"t1": {ID: "t1", UserID: strPtr("user-1"), EmployeeID: "TCH0001", FullName: "Teacher t1"},
		"t2": {ID: "t2", UserID: strPtr("user-2"), EmployeeID: "TCH0002", FullName: "Teacher t2"},
	}}
	configRepo := &fakeConfigRepo{values: map[string]string{}}
	svc := NewReportService(payrollRepo, teacherRepo, configRepo).(*ReportServiceImpl)
	return payrollRepo, teacherRepo, configRepo, svc
}

func TestExportBatchExcel(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1", "t2")

	export, err := svc.ExportBatchExcel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "payroll_2025_03.xlsx", export.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.ContentType)
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(export.Data, []byte("PK")))
}

func TestExportBatchPDF(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1")

	export, err := svc.ExportBatchPDF(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "payroll_2025_03.pdf", export.Filename)
	assert.Equal(t, "application/pdf", export.ContentType)
	assert.True(t, bytes.HasPrefix(export.Data, []byte("%PDF")))
}

func TestExport_UnknownBatch(t *testing.T) {
	_, _, _, svc := newTestService()

	_, err := svc.ExportBatchExcel(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)

	_, err = svc.ExportBatchPDF(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestPayslipPDF(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1")

	export, err := svc.PayslipPDF(context.Background(), "b1-item-t1")

	require.NoError(t, err)
	assert.Equal(t, "payslip_TCH0001_2025_03.pdf", export.Filename)
	assert.True(t, bytes.HasPrefix(export.Data, []byte("%PDF")))
}

func TestPayslipPDFForTeacher_ScopedToOwnItems(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1", "t2")

	// Another teacher's item reads as missing.
	_, err := svc.PayslipPDFForTeacher(claimsContext(t, "user-1"), "b1-item-t2")
	assert.ErrorIs(t, err, payroll.ErrPayrollItemNotFound)

	export, err := svc.PayslipPDFForTeacher(claimsContext(t, "user-1"), "b1-item-t1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(export.Data, []byte("%PDF")))
}

func TestPayslipPDFForTeacher_NoTeacherRecord(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1")

	_, err := svc.PayslipPDFForTeacher(claimsContext(t, "user-without-teacher"), "b1-item-t1")

	assert.ErrorIs(t, err, teacher.ErrTeacherNotFound)
}

func TestTeacherPayslips_ApprovedBatchesOnly(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1")
	seedBatch(payrollRepo, "b2", 4, 2025, payroll.StatusDraft, "t1")

	payslips, err := svc.TeacherPayslips(claimsContext(t, "user-1"))

	require.NoError(t, err)
	require.Len(t, payslips, 1)
	assert.Equal(t, 3, payslips[0].Month)
	assert.True(t, payrollRepo.lastApprovedOnly)
}

func TestSalaryHistory_IncludesUnapprovedBatches(t *testing.T) {
	payrollRepo, _, _, svc := newTestService()
	seedBatch(payrollRepo, "b1", 3, 2025, payroll.StatusApproved, "t1")
	seedBatch(payrollRepo, "b2", 4, 2025, payroll.StatusDraft, "t1")

	history, err := svc.SalaryHistory(claimsContext(t, "user-1"))

	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.False(t, payrollRepo.lastApprovedOnly)
}

func TestOrg_FallsBackOnConfigError(t *testing.T) {
	_, _, configRepo, svc := newTestService()
	configRepo.err = errors.New("db down")

	org := svc.org(context.Background())

	assert.Equal(t, "EduPay School", org.SchoolName)
	assert.Equal(t, "UGX", org.Currency)
}

func TestOrg_ReadsConfiguredValues(t *testing.T) {
	_, _, configRepo, svc := newTestService()
	configRepo.values["school_name"] = "Hillside Academy"
	configRepo.values["currency"] = "KES"

	org := svc.org(context.Background())

	assert.Equal(t, "Hillside Academy", org.SchoolName)
	assert.Equal(t, "KES", org.Currency)
}
