package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyStaffCanAccess  = "❌ Only admin or staff may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admin may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Role names
// ==========================
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
	}

	// StaffAndAbove may operate the admission desk
	StaffAndAbove = []string{
		RoleAdmin,
		RoleStaff,
	}
)
