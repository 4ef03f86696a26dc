package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Submits leave requests only
	RoleHOD      Role = "hod"      // First-stage reviewer for own department
	RoleAdmin    Role = "admin"    // Final reviewer, manages accounts and leave types
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RoleEmployee || r == RoleHOD || r == RoleAdmin
}

type Profile struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	Role         Role
	DepartmentID *string // nil for admins
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join field for listings
	DepartmentName *string
}

// IsAdmin checks if the profile belongs to an administrator.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsHOD checks if the profile belongs to a head of department.
func (p *Profile) IsHOD() bool {
	return p.Role == RoleHOD
}
