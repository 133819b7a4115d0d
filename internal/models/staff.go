package models

// Role is the access level of the acting staff member. Authentication and
// role storage live in the external auth system; the ledger only consumes
// the resulting actor.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// CanEditTransactions gates the edit path. The ledger computation itself is
// role-agnostic; roles only decide which mutations are offered.
func (a Actor) CanEditTransactions() bool {
	return a.Role == RoleOwner || a.Role == RoleManager
}

// CanDeleteTransactions gates the delete path.
func (a Actor) CanDeleteTransactions() bool {
	return a.Role == RoleOwner
}
