package report

import (
	"context"
	"fmt"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/report"
	"github.com/edupay/edupay-backend-go/internal/domain/sysconfig"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/go-chi/jwtauth/v5"
)

type ReportServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	teacherRepo teacher.TeacherRepository
	configRepo  sysconfig.ConfigRepository
}

func NewReportService(
	payrollRepo payroll.PayrollRepository,
	teacherRepo teacher.TeacherRepository,
	configRepo sysconfig.ConfigRepository,
) report.Service {
	return &ReportServiceImpl{
		payrollRepo: payrollRepo,
		teacherRepo: teacherRepo,
		configRepo:  configRepo,
	}
}

// org settings used on rendered documents
type orgInfo struct {
	SchoolName string
	Currency   string
}

func (s *ReportServiceImpl) org(ctx context.Context) orgInfo {
	info := orgInfo{SchoolName: "EduPay School", Currency: "UGX"}

	settings, err := s.configRepo.GetAll(ctx)
	if err != nil {
		return info
	}
	if v, ok := settings[sysconfig.KeySchoolName]; ok && v != "" {
		info.SchoolName = v
	}
	if v, ok := settings[sysconfig.KeyCurrency]; ok && v != "" {
		info.Currency = v
	}

	return info
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month), year)
}

func (s *ReportServiceImpl) TeacherPayslips(ctx context.Context) ([]payroll.TeacherItemResponse, error) {
	t, err := s.callerTeacher(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItemsForTeacher(ctx, t.ID, true)
	if err != nil {
		return nil, err
	}

	return toTeacherItemResponses(items), nil
}

func (s *ReportServiceImpl) SalaryHistory(ctx context.Context) ([]payroll.TeacherItemResponse, error) {
	t, err := s.callerTeacher(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItemsForTeacher(ctx, t.ID, false)
	if err != nil {
		return nil, err
	}

	return toTeacherItemResponses(items), nil
}

func toTeacherItemResponses(items []payroll.TeacherItem) []payroll.TeacherItemResponse {
	responses := make([]payroll.TeacherItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, payroll.ToTeacherItemResponse(it))
	}
	return responses
}

func (s *ReportServiceImpl) callerTeacher(ctx context.Context) (teacher.Teacher, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return teacher.Teacher{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	return s.teacherRepo.GetByUserID(ctx, userID)
}
