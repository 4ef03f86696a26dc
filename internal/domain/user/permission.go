package user

// Capabilities is the full set of privileged actions a session may perform.
// Computed once from the role and consulted everywhere, instead of scattering
// role string comparisons across handlers.
type Capabilities struct {
	CanReviewAsHOD   bool `json:"can_review_as_hod"`
	CanReviewAsAdmin bool `json:"can_review_as_admin"`
	CanManageUsers   bool `json:"can_manage_users"`
}

// RoleCapabilities maps roles to their capability set.
var RoleCapabilities = map[Role]Capabilities{
	RoleEmployee: {},
	RoleHOD: {
		CanReviewAsHOD: true,
	},
	RoleAdmin: {
		CanReviewAsAdmin: true,
		CanManageUsers:   true,
	},
}

// CapabilitiesFor returns the capability set for a role. Unknown roles get
// no capabilities.
func CapabilitiesFor(role Role) Capabilities {
	return RoleCapabilities[role]
}
