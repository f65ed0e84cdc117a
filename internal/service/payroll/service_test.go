package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/edupay/edupay-backend-go/internal/domain/notification"
	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTxRunner runs the function directly; the fakes below have no real
// transactions to join.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePayrollRepo struct {
	batches map[string]*payroll.Batch
	items   map[string]*payroll.Item
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		batches: make(map[string]*payroll.Batch),
		items:   make(map[string]*payroll.Item),
	}
}

func (r *fakePayrollRepo) id(prefix string) string {
	r.nextID++
	return fmt.Sprintf("%s-%d", prefix, r.nextID)
}

func (r *fakePayrollRepo) GetBatchByPeriod(_ context.Context, month, year int) (payroll.Batch, error) {
	for _, b := range r.batches {
		if b.Month == month && b.Year == year {
			return *b, nil
		}
	}
	return payroll.Batch{}, payroll.ErrPayrollNotFound
}

func (r *fakePayrollRepo) GetBatchByID(_ context.Context, id string) (payroll.Batch, error) {
	b, ok := r.batches[id]
	if !ok {
		return payroll.Batch{}, payroll.ErrPayrollNotFound
	}
	out := *b
	out.ItemCount = 0
	for _, it := range r.items {
		if it.PayrollID == id {
			out.ItemCount++
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) CreateBatch(_ context.Context, b payroll.Batch) (payroll.Batch, error) {
	for _, existing := range r.batches {
		if existing.Month == b.Month && existing.Year == b.Year {
			return payroll.Batch{}, payroll.ErrPeriodConflict
		}
	}
	b.ID = r.id("batch")
	r.batches[b.ID] = &b
	return b, nil
}

func (r *fakePayrollRepo) DeleteBatch(_ context.Context, id string) error {
	if _, ok := r.batches[id]; !ok {
		return payroll.ErrPayrollNotFound
	}
	delete(r.batches, id)
	for itemID, it := range r.items {
		if it.PayrollID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

func (r *fakePayrollRepo) CreateItems(_ context.Context, items []payroll.Item) error {
	for _, it := range items {
		it.ID = r.id("item")
		stored := it
		r.items[it.ID] = &stored
	}
	return nil
}

func (r *fakePayrollRepo) ListBatches(_ context.Context) ([]payroll.Batch, error) {
	out := make([]payroll.Batch, 0, len(r.batches))
	for _, b := range r.batches {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakePayrollRepo) ListBatchesForPeriod(_ context.Context, month, year *int) ([]payroll.Batch, error) {
	out := make([]payroll.Batch, 0)
	for _, b := range r.batches {
		if month != nil && b.Month != *month {
			continue
		}
		if year != nil && b.Year != *year {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakePayrollRepo) ListItems(_ context.Context, batchID string) ([]payroll.Item, error) {
	out := make([]payroll.Item, 0)
	for _, it := range r.items {
		if it.PayrollID == batchID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) GetItemByID(_ context.Context, id string) (payroll.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return payroll.Item{}, payroll.ErrPayrollItemNotFound
	}
	return *it, nil
}

func (r *fakePayrollRepo) SetBatchApproved(_ context.Context, id, approvedBy string) error {
	b, ok := r.batches[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	b.Status = payroll.StatusApproved
	b.ApprovedBy = &approvedBy
	return nil
}

func (r *fakePayrollRepo) SetBatchStatus(_ context.Context, id string, status payroll.Status) error {
	b, ok := r.batches[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	b.Status = status
	return nil
}

func (r *fakePayrollRepo) SetItemPaymentStatus(_ context.Context, id string, status payroll.PaymentStatus) error {
	it, ok := r.items[id]
	if !ok {
		return payroll.ErrPayrollItemNotFound
	}
	it.PaymentStatus = status
	return nil
}

func (r *fakePayrollRepo) CountItemsByPaymentStatus(_ context.Context, batchID string, status payroll.PaymentStatus) (int, error) {
	count := 0
	for _, it := range r.items {
		if it.PayrollID == batchID && it.PaymentStatus == status {
			count++
		}
	}
	return count, nil
}

func (r *fakePayrollRepo) ListRecipients(_ context.Context, batchID string) ([]payroll.Recipient, error) {
	return nil, nil
}

func (r *fakePayrollRepo) ListItemsForTeacher(_ context.Context, teacherID string, approvedOnly bool) ([]payroll.TeacherItem, error) {
	return nil, nil
}

func (r *fakePayrollRepo) GetItemForTeacher(_ context.Context, itemID, teacherID string) (payroll.Item, error) {
	it, ok := r.items[itemID]
	if !ok || it.TeacherID != teacherID {
		return payroll.Item{}, payroll.ErrPayrollItemNotFound
	}
	return *it, nil
}

type fakeTeacherRepo struct {
	comps    []teacher.Compensation
	teachers map[string]teacher.Teacher
}

func (r *fakeTeacherRepo) List(_ context.Context) ([]teacher.Teacher, error)    { return nil, nil }
func (r *fakeTeacherRepo) Update(_ context.Context, _ teacher.Teacher) error    { return nil }
func (r *fakeTeacherRepo) Delete(_ context.Context, _ string) error             { return nil }
func (r *fakeTeacherRepo) Count(_ context.Context) (int, error)                 { return len(r.teachers), nil }
func (r *fakeTeacherRepo) CountActive(_ context.Context) (int, error)           { return len(r.teachers), nil }

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
	if r.teachers == nil {
		r.teachers = make(map[string]teacher.Teacher)
	}
	r.teachers[t.ID] = t
	return t, nil
}

func (r *fakeTeacherRepo) ListActiveCompensation(_ context.Context) ([]teacher.Compensation, error) {
	return r.comps, nil
}

type fakeNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (n *fakeNotifier) QueueNotification(_ context.Context, req notification.CreateNotificationRequest) {
	n.queued = append(n.queued, req)
}

func (n *fakeNotifier) QueueBulkNotification(_ context.Context, reqs []notification.CreateNotificationRequest) {
	n.queued = append(n.queued, reqs...)
}

func (n *fakeNotifier) ListMine(_ context.Context) ([]notification.NotificationResponse, error) {
	return nil, nil
}
func (n *fakeNotifier) MarkRead(_ context.Context, _ string) error { return nil }
func (n *fakeNotifier) MarkAllRead(_ context.Context) error        { return nil }
func (n *fakeNotifier) Stop()                                      {}

func testContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "accountant",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func scale1Comp(teacherID string) teacher.Compensation {
	return teacher.Compensation{
		TeacherID:          teacherID,
		EmployeeID:         "TCH0001",
		FullName:           "Jane Doe",
		SalaryScale:        "Scale_1",
		BasicSalary:        d(800000),
		HousingAllowance:   d(100000),
		TransportAllowance: d(50000),
		MedicalAllowance:   d(30000),
		TaxPercentage:      d(10),
		NSSFPercentage:     d(5),
	}
}

func TestProcess_CreatesBatchWithTotals(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{
		scale1Comp("teacher-1"),
		scale1Comp("teacher-2"),
	}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusProcessed), batch.Status)
	assert.Equal(t, 2, batch.ItemCount)
	assert.True(t, batch.TotalGross.Equal(d(1960000)), "gross = %s", batch.TotalGross)
	assert.True(t, batch.TotalDeductions.Equal(d(240000)), "deductions = %s", batch.TotalDeductions)
	assert.True(t, batch.TotalNet.Equal(d(1720000)), "net = %s", batch.TotalNet)
}

func TestProcess_NoActiveTeachers(t *testing.T) {
	ctx := testContext(t, "user-1")
	svc := NewPayrollService(fakeTxRunner{}, newFakePayrollRepo(), &fakeTeacherRepo{}, &fakeNotifier{})

	_, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})

	assert.ErrorIs(t, err, payroll.ErrNoActiveTeachers)
}

func TestProcess_RebuildReplacesExistingBatch(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	first, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	// Second run for the same period with a bigger roster replaces the batch.
	teacherRepo.comps = append(teacherRepo.comps, scale1Comp("teacher-2"))
	second, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, second.ItemCount)
	assert.Len(t, payrollRepo.batches, 1)
}

func TestProcess_LockedPeriod(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)
	require.NoError(t, payrollRepo.SetBatchApproved(ctx, batch.ID, "user-1"))

	_, err = svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})

	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestProcess_LockedPeriodWithEmptyRoster(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)
	require.NoError(t, payrollRepo.SetBatchApproved(ctx, batch.ID, "user-1"))

	// The lock wins over the roster check when everyone has left.
	teacherRepo.comps = nil
	_, err = svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})

	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestProcess_InvalidPeriod(t *testing.T) {
	ctx := testContext(t, "user-1")
	svc := NewPayrollService(fakeTxRunner{}, newFakePayrollRepo(), &fakeTeacherRepo{}, &fakeNotifier{})

	_, err := svc.Process(ctx, payroll.ProcessRequest{Month: 13, Year: 2025})

	assert.Error(t, err)
}

func TestApprove_RejectsTerminalBatch(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusApproved), approved.Status)

	_, err = svc.Approve(ctx, batch.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyApproved)
}

func TestApprove_UnknownBatch(t *testing.T) {
	ctx := testContext(t, "user-1")
	svc := NewPayrollService(fakeTxRunner{}, newFakePayrollRepo(), &fakeTeacherRepo{}, &fakeNotifier{})

	_, err := svc.Approve(ctx, "missing")

	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestSetItemPaymentStatus_ClosesBatchWhenAllPaid(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	userID := "teacher-user-1"
	teacherRepo := &fakeTeacherRepo{
		comps: []teacher.Compensation{scale1Comp("teacher-1"), scale1Comp("teacher-2")},
		teachers: map[string]teacher.Teacher{
			"teacher-1": {ID: "teacher-1", UserID: &userID},
			"teacher-2": {ID: "teacher-2"},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, notifier)

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, batch.ID)
	require.NoError(t, err)

	items, err := svc.ListItems(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// First payment: batch stays approved.
	_, err = svc.SetItemPaymentStatus(ctx, payroll.PaymentStatusRequest{
		ItemID: items[0].ID, PaymentStatus: string(payroll.PaymentPaid),
	})
	require.NoError(t, err)
	mid, err := payrollRepo.GetBatchByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusApproved, mid.Status)

	// Last payment closes the batch.
	_, err = svc.SetItemPaymentStatus(ctx, payroll.PaymentStatusRequest{
		ItemID: items[1].ID, PaymentStatus: string(payroll.PaymentPaid),
	})
	require.NoError(t, err)
	final, err := payrollRepo.GetBatchByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, final.Status)

	// Only the teacher with a linked account gets a payment notification.
	paid := 0
	for _, n := range notifier.queued {
		if n.Title == "Payment Received" {
			paid++
			assert.Equal(t, userID, n.UserID)
		}
	}
	assert.Equal(t, 1, paid)
}

func TestSetItemPaymentStatus_ClosesUnapprovedBatch(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	items, err := svc.ListItems(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Paying the last item closes the batch even when approval was skipped.
	_, err = svc.SetItemPaymentStatus(ctx, payroll.PaymentStatusRequest{
		ItemID: items[0].ID, PaymentStatus: string(payroll.PaymentPaid),
	})
	require.NoError(t, err)

	final, err := payrollRepo.GetBatchByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, final.Status)
}

func TestSetItemPaymentStatus_RevertToPendingKeepsBatchOpen(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	batch, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, batch.ID)
	require.NoError(t, err)

	items, err := svc.ListItems(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item, err := svc.SetItemPaymentStatus(ctx, payroll.PaymentStatusRequest{
		ItemID: items[0].ID, PaymentStatus: string(payroll.PaymentPending),
	})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PaymentPending), item.PaymentStatus)

	b, err := payrollRepo.GetBatchByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusApproved, b.Status)
}

func TestListItems_UnknownBatch(t *testing.T) {
	ctx := testContext(t, "user-1")
	svc := NewPayrollService(fakeTxRunner{}, newFakePayrollRepo(), &fakeTeacherRepo{}, &fakeNotifier{})

	_, err := svc.ListItems(ctx, "missing")

	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestMonthlyReport_FiltersByPeriod(t *testing.T) {
	ctx := testContext(t, "user-1")
	payrollRepo := newFakePayrollRepo()
	teacherRepo := &fakeTeacherRepo{comps: []teacher.Compensation{scale1Comp("teacher-1")}}
	svc := NewPayrollService(fakeTxRunner{}, payrollRepo, teacherRepo, &fakeNotifier{})

	_, err := svc.Process(ctx, payroll.ProcessRequest{Month: 3, Year: 2025})
	require.NoError(t, err)
	_, err = svc.Process(ctx, payroll.ProcessRequest{Month: 4, Year: 2025})
	require.NoError(t, err)

	march := 3
	got, err := svc.MonthlyReport(ctx, &march, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Month)

	all, err := svc.MonthlyReport(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
