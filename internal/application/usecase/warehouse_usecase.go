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

// WarehouseUseCase warehouse reference data.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase wires the use case.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create inserts a warehouse with a unique code, active by default.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ma %s: %w", in.Code, domain.ErrConflict)
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:        uuid.NewString(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Keeper:    in.Keeper,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	resp := warehouseResponse(w)
	return &resp, nil
}

// GetByID returns the warehouse or ErrNotFound.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	resp := warehouseResponse(w)
	return &resp, nil
}

// Update replaces the mutable fields; the code is immutable.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	w.Name = in.Name
	w.Address = in.Address
	w.Phone = in.Phone
	w.Keeper = in.Keeper
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	resp := warehouseResponse(w)
	return &resp, nil
}

// ToggleStatus flips the active flag.
func (uc *WarehouseUseCase) ToggleStatus(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	w.IsActive = !w.IsActive
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	resp := warehouseResponse(w)
	return &resp, nil
}

// List returns one page of warehouses.
func (uc *WarehouseUseCase) List(ctx context.Context, in dto.PartnerListRequest) (*dto.PagedResult[dto.WarehouseResponse], error) {
	rng, err := in.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: fromDate/toDate", domain.ErrValidation)
	}
	page := in.Page()
	warehouses, total, err := uc.repo.List(ctx, repository.PartnerFilter{
		Keyword:   in.SearchKeyword,
		IsActive:  in.IsActive,
		DateRange: rng,
		Page:      page,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		items = append(items, warehouseResponse(w))
	}
	result := dto.NewPagedResult(items, page, total)
	return &result, nil
}

func warehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Address:   w.Address,
		Phone:     w.Phone,
		Keeper:    w.Keeper,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
	}
}
