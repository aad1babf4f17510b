package entity

import "time"

// Warehouse is a physical storage location managed by the back office.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	Address   string
	Phone     string
	Keeper    string // contact name of the warehouse keeper
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w Warehouse) EntityID() string { return w.ID }
