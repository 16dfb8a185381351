package domain

// Role rol de autorización de un usuario.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "s-user"
	RoleUser      Role = "user"
)

// Valid true si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperUser, RoleUser:
		return true
	}
	return false
}
