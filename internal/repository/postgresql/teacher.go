package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type teacherRepository struct {
	db *database.DB
}

func NewTeacherRepository(db *database.DB) teacher.TeacherRepository {
	return &teacherRepository{db: db}
}

const teacherColumns = `id, user_id, employee_id, full_name, email, phone, position, salary_scale, date_joined, is_active, created_at, updated_at`

func scanTeacher(row pgx.Row) (teacher.Teacher, error) {
	var t teacher.Teacher
	err := row.Scan(
		&t.ID, &t.UserID, &t.EmployeeID, &t.FullName, &t.Email, &t.Phone,
		&t.Position, &t.SalaryScale, &t.DateJoined, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *teacherRepository) List(ctx context.Context) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM teachers ORDER BY full_name`, teacherColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, nil
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM teachers WHERE id = $1`, teacherColumns)

	t, err := scanTeacher(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	return t, nil
}

func (r *teacherRepository) GetByUserID(ctx context.Context, userID string) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM teachers WHERE user_id = $1`, teacherColumns)

	t, err := scanTeacher(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher by user: %w", err)
	}

	return t, nil
}

func (r *teacherRepository) Create(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO teachers (id, user_id, employee_id, full_name, email, phone, position, salary_scale, date_joined, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, teacherColumns)

	created, err := scanTeacher(q.QueryRow(ctx, query,
		t.ID, t.UserID, t.EmployeeID, t.FullName, t.Email, t.Phone,
		t.Position, t.SalaryScale, t.DateJoined, t.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "teachers_employee_id_key") {
			return teacher.Teacher{}, teacher.ErrEmployeeIDTaken
		}
		return teacher.Teacher{}, fmt.Errorf("failed to create teacher: %w", err)
	}

	return created, nil
}

func (r *teacherRepository) Update(ctx context.Context, t teacher.Teacher) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teachers
		SET full_name = $2, email = $3, phone = $4, position = $5, salary_scale = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, t.ID, t.FullName, t.Email, t.Phone, t.Position, t.SalaryScale, t.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	if result.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if result.RowsAffected() == 0 {
		return teacher.ErrTeacherNotFound
	}

	return nil
}

func (r *teacherRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count teachers: %w", err)
	}

	return count, nil
}

func (r *teacherRepository) CountActive(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM teachers WHERE is_active = true`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active teachers: %w", err)
	}

	return count, nil
}

func (r *teacherRepository) ListActiveCompensation(ctx context.Context) ([]teacher.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	// Left join keeps teachers whose scale has no structure row; COALESCE
	// turns the missing components into zeros.
	query := `
		SELECT t.id, t.user_id, t.employee_id, t.full_name, t.salary_scale,
			   COALESCE(s.basic_salary, 0),
			   COALESCE(s.housing_allowance, 0),
			   COALESCE(s.transport_allowance, 0),
			   COALESCE(s.medical_allowance, 0),
			   COALESCE(s.other_allowance, 0),
			   COALESCE(s.tax_percentage, 0),
			   COALESCE(s.nssf_percentage, 0),
			   COALESCE(s.loan_deduction, 0),
			   COALESCE(s.other_deduction, 0)
		FROM teachers t
		LEFT JOIN salary_structures s ON s.salary_scale = t.salary_scale
		WHERE t.is_active = true
		ORDER BY t.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher compensation: %w", err)
	}
	defer rows.Close()

	var comps []teacher.Compensation
	for rows.Next() {
		var c teacher.Compensation
		if err := rows.Scan(
			&c.TeacherID, &c.UserID, &c.EmployeeID, &c.FullName, &c.SalaryScale,
			&c.BasicSalary, &c.HousingAllowance, &c.TransportAllowance,
			&c.MedicalAllowance, &c.OtherAllowance, &c.TaxPercentage,
			&c.NSSFPercentage, &c.LoanDeduction, &c.OtherDeduction,
		); err != nil {
			return nil, fmt.Errorf("failed to scan teacher compensation: %w", err)
		}
		comps = append(comps, c)
	}

	return comps, nil
}
