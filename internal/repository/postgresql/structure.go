package postgresql

import (
	"context"
	"fmt"

	"github.com/edupay/edupay-backend-go/internal/domain/structure"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type structureRepository struct {
	db *database.DB
}

func NewStructureRepository(db *database.DB) structure.StructureRepository {
	return &structureRepository{db: db}
}

const structureColumns = `id, salary_scale, basic_salary, housing_allowance, transport_allowance, medical_allowance, other_allowance, tax_percentage, nssf_percentage, loan_deduction, other_deduction, created_at, updated_at`

func scanStructure(row pgx.Row) (structure.SalaryStructure, error) {
	var s structure.SalaryStructure
	err := row.Scan(
		&s.ID, &s.SalaryScale, &s.BasicSalary, &s.HousingAllowance,
		&s.TransportAllowance, &s.MedicalAllowance, &s.OtherAllowance,
		&s.TaxPercentage, &s.NSSFPercentage, &s.LoanDeduction, &s.OtherDeduction,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *structureRepository) List(ctx context.Context) ([]structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM salary_structures ORDER BY salary_scale`, structureColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []structure.SalaryStructure
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}

	return structures, nil
}

func (r *structureRepository) GetByID(ctx context.Context, id string) (structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM salary_structures WHERE id = $1`, structureColumns)

	s, err := scanStructure(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return structure.SalaryStructure{}, structure.ErrStructureNotFound
		}
		return structure.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

func (r *structureRepository) GetByScale(ctx context.Context, scale string) (structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM salary_structures WHERE salary_scale = $1`, structureColumns)

	s, err := scanStructure(q.QueryRow(ctx, query, scale))
	if err != nil {
		if err == pgx.ErrNoRows {
			return structure.SalaryStructure{}, structure.ErrStructureNotFound
		}
		return structure.SalaryStructure{}, fmt.Errorf("failed to get salary structure by scale: %w", err)
	}

	return s, nil
}

func (r *structureRepository) Create(ctx context.Context, s structure.SalaryStructure) (structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO salary_structures (id, salary_scale, basic_salary, housing_allowance, transport_allowance,
			medical_allowance, other_allowance, tax_percentage, nssf_percentage, loan_deduction, other_deduction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, structureColumns)

	created, err := scanStructure(q.QueryRow(ctx, query,
		s.ID, s.SalaryScale, s.BasicSalary, s.HousingAllowance, s.TransportAllowance,
		s.MedicalAllowance, s.OtherAllowance, s.TaxPercentage, s.NSSFPercentage,
		s.LoanDeduction, s.OtherDeduction,
	))
	if err != nil {
		return structure.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return created, nil
}

func (r *structureRepository) Update(ctx context.Context, s structure.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures
		SET basic_salary = $2, housing_allowance = $3, transport_allowance = $4,
			medical_allowance = $5, other_allowance = $6, tax_percentage = $7,
			nssf_percentage = $8, loan_deduction = $9, other_deduction = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		s.ID, s.BasicSalary, s.HousingAllowance, s.TransportAllowance,
		s.MedicalAllowance, s.OtherAllowance, s.TaxPercentage, s.NSSFPercentage,
		s.LoanDeduction, s.OtherDeduction,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary structure: %w", err)
	}
	if result.RowsAffected() == 0 {
		return structure.ErrStructureNotFound
	}

	return nil
}

func (r *structureRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM salary_structures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary structure: %w", err)
	}
	if result.RowsAffected() == 0 {
		return structure.ErrStructureNotFound
	}

	return nil
}
