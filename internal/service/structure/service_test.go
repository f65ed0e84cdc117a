package structure

import (
	"context"
	"fmt"
	"testing"

	"github.com/edupay/edupay-backend-go/internal/domain/structure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStructureRepo struct {
	structures map[string]structure.SalaryStructure // keyed by ID
	nextID     int
}

func newFakeStructureRepo() *fakeStructureRepo {
	return &fakeStructureRepo{structures: make(map[string]structure.SalaryStructure)}
}

func (r *fakeStructureRepo) List(_ context.Context) ([]structure.SalaryStructure, error) {
	out := make([]structure.SalaryStructure, 0, len(r.structures))
	for _, s := range r.structures {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStructureRepo) GetByID(_ context.Context, id string) (structure.SalaryStructure, error) {
	s, ok := r.structures[id]
	if !ok {
		return structure.SalaryStructure{}, structure.ErrStructureNotFound
	}
	return s, nil
}

func (r *fakeStructureRepo) GetByScale(_ context.Context, scale string) (structure.SalaryStructure, error) {
	for _, s := range r.structures {
		if s.SalaryScale == scale {
			return s, nil
		}
	}
	return structure.SalaryStructure{}, structure.ErrStructureNotFound
}

func (r *fakeStructureRepo) Create(_ context.Context, s structure.SalaryStructure) (structure.SalaryStructure, error) {
	for _, existing := range r.structures {
		if existing.SalaryScale == s.SalaryScale {
			return structure.SalaryStructure{}, structure.ErrScaleExists
		}
	}
	r.nextID++
	s.ID = fmt.Sprintf("scale-%d", r.nextID)
	r.structures[s.ID] = s
	return s, nil
}

func (r *fakeStructureRepo) Update(_ context.Context, s structure.SalaryStructure) error {
	if _, ok := r.structures[s.ID]; !ok {
		return structure.ErrStructureNotFound
	}
	r.structures[s.ID] = s
	return nil
}

func (r *fakeStructureRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.structures[id]; !ok {
		return structure.ErrStructureNotFound
	}
	delete(r.structures, id)
	return nil
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func scale1Request() structure.SaveStructureRequest {
	return structure.SaveStructureRequest{
		SalaryScale:        "Scale_1",
		BasicSalary:        d(800000),
		HousingAllowance:   d(100000),
		TransportAllowance: d(50000),
		MedicalAllowance:   d(30000),
		TaxPercentage:      d(10),
		NSSFPercentage:     d(5),
	}
}

func TestSave_CreatesUnknownScale(t *testing.T) {
	repo := newFakeStructureRepo()
	svc := NewStructureService(repo)

	saved, err := svc.Save(context.Background(), scale1Request())

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Scale_1", saved.SalaryScale)
	assert.True(t, saved.BasicSalary.Equal(d(800000)))
	assert.Len(t, repo.structures, 1)
}

func TestSave_UpdatesExistingScaleInPlace(t *testing.T) {
	repo := newFakeStructureRepo()
	svc := NewStructureService(repo)

	first, err := svc.Save(context.Background(), scale1Request())
	require.NoError(t, err)

	req := scale1Request()
	req.BasicSalary = d(900000)
	req.TaxPercentage = d(12)
	second, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.BasicSalary.Equal(d(900000)))
	assert.True(t, second.TaxPercentage.Equal(d(12)))
	assert.Len(t, repo.structures, 1)
}

func TestSave_RejectsNegativeAmounts(t *testing.T) {
	svc := NewStructureService(newFakeStructureRepo())

	req := scale1Request()
	req.BasicSalary = d(-1)
	_, err := svc.Save(context.Background(), req)
	assert.Error(t, err)

	req = scale1Request()
	req.TaxPercentage = d(101)
	_, err = svc.Save(context.Background(), req)
	assert.Error(t, err)
}

func TestDelete_UnknownScale(t *testing.T) {
	svc := NewStructureService(newFakeStructureRepo())

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, structure.ErrStructureNotFound)
}
