// Package auth holds the identity types and the pure authorization
// predicates applied by the booking and review services. Keeping the
// rules as ordinary functions over an Identity value means every row
// of the permission matrix can be tested without HTTP or a database.
package auth

import "github.com/Abedishere/smartmeetingroom-435LProject/internal/model"

// Identity is the authenticated caller of an operation. There are two
// variants: UserIdentity for callers holding a JWT backed by a user
// row, and ServiceIdentity for trusted service-to-service calls
// authenticated with the shared API key. A service identity is never
// persisted as a user and never owns a resource.
type Identity interface {
	// Role returns the role name used by the authorization rules.
	Role() string
	// Owns reports whether the identity owns a resource belonging to
	// the given user id.
	Owns(userID uint64) bool
}

// UserIdentity identifies a caller resolved from a verified JWT.
type UserIdentity struct {
	ID       uint64
	Username string
	UserRole string
}

func (u UserIdentity) Role() string { return u.UserRole }

func (u UserIdentity) Owns(userID uint64) bool { return u.ID == userID }

// ServiceIdentity identifies a trusted internal service. Its role is
// fixed; ownership checks always fail.
type ServiceIdentity struct {
	Name string
}

func (ServiceIdentity) Role() string { return model.RoleServiceAccount }

func (ServiceIdentity) Owns(uint64) bool { return false }
