package user

type Role string

const (
	// RoleCliente is a workshop customer: may view and reserve open slots.
	RoleCliente Role = "cliente"
	// RoleNegocio is the workshop administrator: manages slots and repairs.
	RoleNegocio Role = "negocio"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCliente, RoleNegocio:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
