package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/notification"
	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

// TxRunner runs a function inside a storage transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayrollServiceImpl struct {
	tx          TxRunner
	payrollRepo payroll.PayrollRepository
	teacherRepo teacher.TeacherRepository
	notifier    notification.Service
}

func NewPayrollService(
	tx TxRunner,
	payrollRepo payroll.PayrollRepository,
	teacherRepo teacher.TeacherRepository,
	notifier notification.Service,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:          tx,
		payrollRepo: payrollRepo,
		teacherRepo: teacherRepo,
		notifier:    notifier,
	}
}

// Helper to get user_id from JWT context
func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Process builds the batch for a period. A draft or processed batch for the
// same period is deleted and rebuilt from the current roster; an approved or
// paid batch locks the period. The delete, insert and totals all happen in
// one transaction.
func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessRequest) (payroll.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	var batchID string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Lock check comes first: a terminal period reads as locked even
		// when the roster is empty.
		existing, err := s.payrollRepo.GetBatchByPeriod(txCtx, req.Month, req.Year)
		if err != nil && !errors.Is(err, payroll.ErrPayrollNotFound) {
			return err
		}
		if err == nil {
			if existing.Status.Terminal() {
				return payroll.ErrPayrollLocked
			}
			if err := s.payrollRepo.DeleteBatch(txCtx, existing.ID); err != nil {
				return err
			}
		}

		comps, err := s.teacherRepo.ListActiveCompensation(txCtx)
		if err != nil {
			return err
		}
		if len(comps) == 0 {
			return payroll.ErrNoActiveTeachers
		}

		items := make([]payroll.Item, 0, len(comps))
		totalGross := decimal.Zero
		totalDeductions := decimal.Zero
		totalNet := decimal.Zero
		for _, c := range comps {
			item := ComputeItem(c)
			totalGross = totalGross.Add(item.GrossSalary)
			totalDeductions = totalDeductions.Add(item.TotalDeductions)
			totalNet = totalNet.Add(item.NetSalary)
			items = append(items, item)
		}

		batch := payroll.Batch{
			Month:           req.Month,
			Year:            req.Year,
			Status:          payroll.StatusProcessed,
			TotalGross:      totalGross,
			TotalDeductions: totalDeductions,
			TotalNet:        totalNet,
			ProcessedBy:     &userID,
		}

		created, err := s.payrollRepo.CreateBatch(txCtx, batch)
		if err != nil {
			return err
		}
		batchID = created.ID

		for i := range items {
			items[i].PayrollID = created.ID
		}

		return s.payrollRepo.CreateItems(txCtx, items)
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	created, err := s.payrollRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return payroll.ToBatchResponse(created), nil
}

// Approve locks the batch and notifies every teacher with a linked account.
// Notifications are fire-and-forget; a notification failure never unwinds
// the approval.
func (s *PayrollServiceImpl) Approve(ctx context.Context, batchID string) (payroll.BatchResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	var batch payroll.Batch
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.payrollRepo.GetBatchByID(txCtx, batchID)
		if err != nil {
			return err
		}
		if b.Status.Terminal() {
			return payroll.ErrPayrollAlreadyApproved
		}

		if err := s.payrollRepo.SetBatchApproved(txCtx, b.ID, userID); err != nil {
			return err
		}

		batch = b
		return nil
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	s.notifyProcessed(ctx, batch)

	approved, err := s.payrollRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	return payroll.ToBatchResponse(approved), nil
}

func (s *PayrollServiceImpl) notifyProcessed(ctx context.Context, batch payroll.Batch) {
	recipients, err := s.payrollRepo.ListRecipients(ctx, batch.ID)
	if err != nil {
		// Best-effort: the approval already committed
		return
	}

	period := fmt.Sprintf("%s %d", time.Month(batch.Month), batch.Year)
	reqs := make([]notification.CreateNotificationRequest, 0, len(recipients))
	for _, rec := range recipients {
		if rec.UserID == nil {
			continue
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			UserID:  *rec.UserID,
			Title:   "Salary Processed",
			Message: fmt.Sprintf("Your salary for %s has been processed. Net pay: %s", period, FormatAmount(rec.NetSalary)),
		})
	}
	s.notifier.QueueBulkNotification(ctx, reqs)
}

// SetItemPaymentStatus flips one line item between Pending and Paid. When the
// last Pending item of a batch becomes Paid, the batch closes as paid
// regardless of whether it was approved first. Reverting an item to Pending
// never reopens a paid batch.
func (s *PayrollServiceImpl) SetItemPaymentStatus(ctx context.Context, req payroll.PaymentStatusRequest) (payroll.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ItemResponse{}, err
	}

	status := payroll.PaymentStatus(req.PaymentStatus)

	var item payroll.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.payrollRepo.GetItemByID(txCtx, req.ItemID)
		if err != nil {
			return err
		}

		if err := s.payrollRepo.SetItemPaymentStatus(txCtx, it.ID, status); err != nil {
			return err
		}
		it.PaymentStatus = status
		item = it

		if status != payroll.PaymentPaid {
			return nil
		}

		batch, err := s.payrollRepo.GetBatchByID(txCtx, it.PayrollID)
		if err != nil {
			return err
		}
		pending, err := s.payrollRepo.CountItemsByPaymentStatus(txCtx, batch.ID, payroll.PaymentPending)
		if err != nil {
			return err
		}
		if pending == 0 && batch.Status != payroll.StatusPaid {
			return s.payrollRepo.SetBatchStatus(txCtx, batch.ID, payroll.StatusPaid)
		}

		return nil
	})
	if err != nil {
		return payroll.ItemResponse{}, err
	}

	if status == payroll.PaymentPaid {
		s.notifyPaid(ctx, item)
	}

	return payroll.ToItemResponse(item), nil
}

func (s *PayrollServiceImpl) notifyPaid(ctx context.Context, item payroll.Item) {
	t, err := s.teacherRepo.GetByID(ctx, item.TeacherID)
	if err != nil || t.UserID == nil {
		return
	}

	s.notifier.QueueNotification(ctx, notification.CreateNotificationRequest{
		UserID:  *t.UserID,
		Title:   "Payment Received",
		Message: fmt.Sprintf("Your salary payment of %s has been completed.", FormatAmount(item.NetSalary)),
	})
}

func (s *PayrollServiceImpl) ListBatches(ctx context.Context) ([]payroll.BatchResponse, error) {
	batches, err := s.payrollRepo.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, payroll.ToBatchResponse(b))
	}

	return responses, nil
}

func (s *PayrollServiceImpl) ListItems(ctx context.Context, batchID string) ([]payroll.ItemResponse, error) {
	// 404 on an unknown batch rather than an empty list
	if _, err := s.payrollRepo.GetBatchByID(ctx, batchID); err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItems(ctx, batchID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.ItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, payroll.ToItemResponse(it))
	}

	return responses, nil
}

func (s *PayrollServiceImpl) MonthlyReport(ctx context.Context, month, year *int) ([]payroll.BatchResponse, error) {
	batches, err := s.payrollRepo.ListBatchesForPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, payroll.ToBatchResponse(b))
	}

	return responses, nil
}
