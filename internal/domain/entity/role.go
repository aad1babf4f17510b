package entity

// Role is a server-side role. Code is unique; one role per user, many users
// per role. The catalogue is seeded out-of-band and listed read-only.
type Role struct {
	ID   string
	Code string
	Name string // display name, e.g. "Quản trị viên"
}

// EntityID implements the persistable-entity contract.
func (r Role) EntityID() string { return r.ID }
