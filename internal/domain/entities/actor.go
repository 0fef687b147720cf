package entities

// Role is one of the four actor roles recognized by the workflow.
//
// Identity verification happens upstream (API gateway); by the time a call
// reaches the core the pair {ActorID, Role} is already trusted.

type Role string

const (
	RoleCustomer    Role = "customer"
	RoleMechanic    Role = "mechanic"
	RoleGarageAdmin Role = "garage_admin"
	RoleSystemAdmin Role = "system_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleMechanic, RoleGarageAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// Actor is the verified caller of an operation.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
