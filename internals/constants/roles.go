package constants

import "fmt"

// Role aplikasi (urutan dari paling rendah)
const (
	RoleWorker     = "worker"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySupervisorCanAccess = "❌ Hanya supervisor atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleWorker,
		RoleSupervisor,
		RoleAdmin,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
