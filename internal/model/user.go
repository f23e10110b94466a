package model

import "time"

// Role names understood by the authorization rules. They mirror the
// values stored in the users.role column and carried in the JWT "role"
// claim.
const (
	RoleAdmin           = "admin"
	RoleFacilityManager = "facility_manager"
	RoleRegularUser     = "regular_user"
	RoleModerator       = "moderator"
	RoleAuditorReadonly = "auditor_readonly"
	RoleServiceAccount  = "service_account"
)

// ValidRole reports whether the given string is one of the known role
// names. RoleServiceAccount is intentionally excluded: service
// identities are synthesized from the shared API key and never stored
// as user rows.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleFacilityManager, RoleRegularUser, RoleModerator, RoleAuditorReadonly:
		return true
	}
	return false
}

// User represents a row in the `users` table. The password hash is
// never serialized; handlers build separate response types.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique username.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of the Role* constants (excluding service_account).
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}
