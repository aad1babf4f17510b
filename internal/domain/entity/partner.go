package entity

import "time"

// Supplier is an independent reference entity: code unique, status-toggled,
// never physically deleted through the API.
type Supplier struct {
	ID            string
	Code          string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s Supplier) EntityID() string { return s.ID }

// Receiver is the party goods are delivered to. Same lifecycle as Supplier.
type Receiver struct {
	ID            string
	Code          string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r Receiver) EntityID() string { return r.ID }
