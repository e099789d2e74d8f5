package domain

// Role grants access to exactly one collection. There is no hierarchy and no
// role combination: one principal, one role, one collection.
type Role string

const (
	RoleParts   Role = "ROLE_PARTS"
	RoleRecords Role = "ROLE_RECORDS"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleParts, RoleRecords:
		return true
	}
	return false
}

// Principal is an authenticated identity.
type Principal struct {
	Username string
	Role     Role
}
