package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndtrung/warehouse-backoffice/internal/application/dto"
	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// SupplierUseCase supplier reference data: create, update, status toggle,
// paged listing. Suppliers are never physically deleted through the API.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase wires the use case.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create inserts a supplier with a unique code, active by default.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ma %s: %w", in.Code, domain.ErrConflict)
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.NewString(),
		Code:          in.Code,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := supplierResponse(s)
	return &resp, nil
}

// GetByID returns the supplier or ErrNotFound.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := supplierResponse(s)
	return &resp, nil
}

// Update replaces the mutable fields; the code is immutable.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	resp := supplierResponse(s)
	return &resp, nil
}

// ToggleStatus flips the active flag.
func (uc *SupplierUseCase) ToggleStatus(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.IsActive = !s.IsActive
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	resp := supplierResponse(s)
	return &resp, nil
}

// List returns one page of suppliers.
func (uc *SupplierUseCase) List(ctx context.Context, in dto.PartnerListRequest) (*dto.PagedResult[dto.PartnerResponse], error) {
	rng, err := in.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: fromDate/toDate", domain.ErrValidation)
	}
	page := in.Page()
	suppliers, total, err := uc.repo.List(ctx, repository.PartnerFilter{
		Keyword:   in.SearchKeyword,
		IsActive:  in.IsActive,
		DateRange: rng,
		Page:      page,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, supplierResponse(s))
	}
	result := dto.NewPagedResult(items, page, total)
	return &result, nil
}

func supplierResponse(s *entity.Supplier) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}
