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

// ReceiverUseCase receiver reference data; same lifecycle as suppliers.
type ReceiverUseCase struct {
	repo repository.ReceiverRepository
}

// NewReceiverUseCase wires the use case.
func NewReceiverUseCase(repo repository.ReceiverRepository) *ReceiverUseCase {
	return &ReceiverUseCase{repo: repo}
}

// Create inserts a receiver with a unique code, active by default.
func (uc *ReceiverUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ma %s: %w", in.Code, domain.ErrConflict)
	}
	now := time.Now()
	r := &entity.Receiver{
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
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := receiverResponse(r)
	return &resp, nil
}

// GetByID returns the receiver or ErrNotFound.
func (uc *ReceiverUseCase) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := receiverResponse(r)
	return &resp, nil
}

// Update replaces the mutable fields; the code is immutable.
func (uc *ReceiverUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.Name = in.Name
	r.ContactPerson = in.ContactPerson
	r.Phone = in.Phone
	r.Email = in.Email
	r.Address = in.Address
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	resp := receiverResponse(r)
	return &resp, nil
}

// ToggleStatus flips the active flag.
func (uc *ReceiverUseCase) ToggleStatus(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.IsActive = !r.IsActive
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	resp := receiverResponse(r)
	return &resp, nil
}

// List returns one page of receivers.
func (uc *ReceiverUseCase) List(ctx context.Context, in dto.PartnerListRequest) (*dto.PagedResult[dto.PartnerResponse], error) {
	rng, err := in.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: fromDate/toDate", domain.ErrValidation)
	}
	page := in.Page()
	receivers, total, err := uc.repo.List(ctx, repository.PartnerFilter{
		Keyword:   in.SearchKeyword,
		IsActive:  in.IsActive,
		DateRange: rng,
		Page:      page,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(receivers))
	for _, r := range receivers {
		items = append(items, receiverResponse(r))
	}
	result := dto.NewPagedResult(items, page, total)
	return &result, nil
}

func receiverResponse(r *entity.Receiver) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:            r.ID,
		Code:          r.Code,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
	}
}
