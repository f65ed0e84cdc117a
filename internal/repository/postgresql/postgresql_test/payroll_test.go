package postgresql_test

import (
	"context"
	"testing"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/edupay/edupay-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTeacher(t *testing.T, ctx context.Context, employeeID, fullName string) teacher.Teacher {
	t.Helper()
	repo := postgresql.NewTeacherRepository(testDB)
	created, err := repo.Create(ctx, teacher.Teacher{
		EmployeeID:  employeeID,
		FullName:    fullName,
		SalaryScale: "Scale_1",
		IsActive:    true,
	})
	require.NoError(t, err)
	return created
}

func testItem(payrollID, teacherID string) payroll.Item {
	return payroll.Item{
		PayrollID:          payrollID,
		TeacherID:          teacherID,
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
	}
}

func TestPayrollRepository_BatchRoundTrip(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewPayrollRepository(testDB)
	tch := createTestTeacher(t, ctx, "TCH0001", "Jane Doe")
	processor := createTestUser(t, ctx, "accountant1", user.RoleAccountant)

	batch, err := repo.CreateBatch(ctx, payroll.Batch{
		Month:           3,
		Year:            2025,
		Status:          payroll.StatusProcessed,
		TotalGross:      decimal.NewFromInt(980000),
		TotalDeductions: decimal.NewFromInt(120000),
		TotalNet:        decimal.NewFromInt(860000),
		ProcessedBy:     &processor.ID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateItems(ctx, []payroll.Item{testItem(batch.ID, tch.ID)}))

	stored, err := repo.GetBatchByPeriod(ctx, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, batch.ID, stored.ID)
	assert.Equal(t, payroll.StatusProcessed, stored.Status)
	assert.Equal(t, 1, stored.ItemCount)
	assert.True(t, stored.TotalNet.Equal(decimal.NewFromInt(860000)))
	require.NotNil(t, stored.ProcessedByName)
	assert.Equal(t, processor.FullName, *stored.ProcessedByName)

	items, err := repo.ListItems(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].NetSalary.Equal(decimal.NewFromInt(860000)))
	require.NotNil(t, items[0].TeacherName)
	assert.Equal(t, "Jane Doe", *items[0].TeacherName)
}

func TestPayrollRepository_PeriodConflict(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewPayrollRepository(testDB)

	_, err := repo.CreateBatch(ctx, payroll.Batch{Month: 4, Year: 2025, Status: payroll.StatusProcessed})
	require.NoError(t, err)

	_, err = repo.CreateBatch(ctx, payroll.Batch{Month: 4, Year: 2025, Status: payroll.StatusProcessed})
	assert.ErrorIs(t, err, payroll.ErrPeriodConflict)
}

func TestPayrollRepository_DeleteBatchRemovesItems(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewPayrollRepository(testDB)
	tch := createTestTeacher(t, ctx, "TCH0001", "Jane Doe")

	batch, err := repo.CreateBatch(ctx, payroll.Batch{Month: 5, Year: 2025, Status: payroll.StatusDraft})
	require.NoError(t, err)
	require.NoError(t, repo.CreateItems(ctx, []payroll.Item{testItem(batch.ID, tch.ID)}))

	require.NoError(t, repo.DeleteBatch(ctx, batch.ID))

	_, err = repo.GetBatchByID(ctx, batch.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	items, err := repo.ListItems(ctx, batch.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPayrollRepository_PaymentStatusCounts(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewPayrollRepository(testDB)
	first := createTestTeacher(t, ctx, "TCH0001", "Jane Doe")
	second := createTestTeacher(t, ctx, "TCH0002", "John Smith")

	batch, err := repo.CreateBatch(ctx, payroll.Batch{Month: 6, Year: 2025, Status: payroll.StatusApproved})
	require.NoError(t, err)
	require.NoError(t, repo.CreateItems(ctx, []payroll.Item{
		testItem(batch.ID, first.ID),
		testItem(batch.ID, second.ID),
	}))

	items, err := repo.ListItems(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, repo.SetItemPaymentStatus(ctx, items[0].ID, payroll.PaymentPaid))

	pending, err := repo.CountItemsByPaymentStatus(ctx, batch.ID, payroll.PaymentPending)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	require.NoError(t, repo.SetItemPaymentStatus(ctx, items[1].ID, payroll.PaymentPaid))
	pending, err = repo.CountItemsByPaymentStatus(ctx, batch.ID, payroll.PaymentPending)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}
