package domain

// Action operaciones sujetas a autorización. Cada caso de uso consulta la
// tabla de permisos con Can en lugar de chequear roles inline.
type Action string

const (
	ActionManageUsers       Action = "users:manage"        // crear usuarios, cambiar rol, activar/desactivar, desbloquear
	ActionSetUserPassword   Action = "users:set-password"  // cambiar la contraseña de otro usuario
	ActionManageProject     Action = "projects:manage"     // editar, transferir o eliminar un proyecto
	ActionDeleteRefDocument Action = "documents:force-del" // eliminar un documento aún referenciado
	ActionReadPrivateDoc    Action = "documents:private"   // leer documentos privados
	ActionManageRecords     Action = "records:manage"      // crear/editar clientes, proveedores, ítems, documentos
)

// Actor identidad y rol del usuario que ejecuta la acción. Se inyecta
// explícitamente en cada caso de uso; no hay estado de sesión ambiente.
type Actor struct {
	ID   int64
	Role Role
}

// IsAdmin true si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// adminOnly acciones reservadas al rol admin sin excepción.
var adminOnly = map[Action]bool{
	ActionManageUsers:       true,
	ActionSetUserPassword:   true,
	ActionDeleteRefDocument: true,
	ActionReadPrivateDoc:    true,
}

// Can decide {rol, propiedad} -> permitir/denegar. ownerID es el dueño del
// recurso cuando la acción es de alcance "dueño o admin"; para acciones sin
// dueño se pasa cero.
func Can(actor Actor, action Action, ownerID int64) bool {
	if actor.ID <= 0 || !actor.Role.Valid() {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if adminOnly[action] {
		return false
	}
	switch action {
	case ActionManageProject:
		return actor.ID == ownerID
	case ActionManageRecords:
		// Cualquier usuario autenticado mantiene registros comerciales.
		return true
	}
	return false
}
