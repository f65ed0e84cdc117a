package structure

import (
	"context"
	"errors"

	"github.com/edupay/edupay-backend-go/internal/domain/structure"
)

type StructureServiceImpl struct {
	structureRepo structure.StructureRepository
}

func NewStructureService(structureRepo structure.StructureRepository) structure.StructureService {
	return &StructureServiceImpl{structureRepo: structureRepo}
}

func (s *StructureServiceImpl) List(ctx context.Context) ([]structure.StructureResponse, error) {
	structures, err := s.structureRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]structure.StructureResponse, 0, len(structures))
	for _, st := range structures {
		responses = append(responses, structure.ToStructureResponse(st))
	}

	return responses, nil
}

// Save upserts by scale name: an unknown scale is created, a known one has
// its components replaced.
func (s *StructureServiceImpl) Save(ctx context.Context, req structure.SaveStructureRequest) (structure.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return structure.StructureResponse{}, err
	}

	existing, err := s.structureRepo.GetByScale(ctx, req.SalaryScale)
	if err != nil && !errors.Is(err, structure.ErrStructureNotFound) {
		return structure.StructureResponse{}, err
	}

	if errors.Is(err, structure.ErrStructureNotFound) {
		created, err := s.structureRepo.Create(ctx, structure.SalaryStructure{
			SalaryScale:        req.SalaryScale,
			BasicSalary:        req.BasicSalary,
			HousingAllowance:   req.HousingAllowance,
			TransportAllowance: req.TransportAllowance,
			MedicalAllowance:   req.MedicalAllowance,
			OtherAllowance:     req.OtherAllowance,
			TaxPercentage:      req.TaxPercentage,
			NSSFPercentage:     req.NSSFPercentage,
			LoanDeduction:      req.LoanDeduction,
			OtherDeduction:     req.OtherDeduction,
		})
		if err != nil {
			return structure.StructureResponse{}, err
		}
		return structure.ToStructureResponse(created), nil
	}

	existing.BasicSalary = req.BasicSalary
	existing.HousingAllowance = req.HousingAllowance
	existing.TransportAllowance = req.TransportAllowance
	existing.MedicalAllowance = req.MedicalAllowance
	existing.OtherAllowance = req.OtherAllowance
	existing.TaxPercentage = req.TaxPercentage
	existing.NSSFPercentage = req.NSSFPercentage
	existing.LoanDeduction = req.LoanDeduction
	existing.OtherDeduction = req.OtherDeduction

	if err := s.structureRepo.Update(ctx, existing); err != nil {
		return structure.StructureResponse{}, err
	}

	return structure.ToStructureResponse(existing), nil
}

func (s *StructureServiceImpl) Delete(ctx context.Context, id string) error {
	return s.structureRepo.Delete(ctx, id)
}
