package dto

import "time"

// Supplier, Receiver and Warehouse share the reference-entity request shapes.

// CreatePartnerRequest creates a supplier or receiver.
type CreatePartnerRequest struct {
	Code          string `json:"code" validate:"required,min=1,max=50"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contactPerson" validate:"omitempty,max=200"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"omitempty,max=500"`
}

// UpdatePartnerRequest full-replace update; code stays immutable.
type UpdatePartnerRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contactPerson" validate:"omitempty,max=200"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"omitempty,max=500"`
}

// PartnerListRequest paging plus the shared filters.
type PartnerListRequest struct {
	PageRequest
	IsActive *bool `query:"isActive"`
}

// PartnerResponse outbound supplier/receiver shape.
type PartnerResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateWarehouseRequest creates a warehouse.
type CreateWarehouseRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=50"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Keeper  string `json:"keeper" validate:"omitempty,max=200"`
}

// UpdateWarehouseRequest full-replace update; code stays immutable.
type UpdateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Keeper  string `json:"keeper" validate:"omitempty,max=200"`
}

// WarehouseResponse outbound warehouse shape.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Keeper    string    `json:"keeper"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
