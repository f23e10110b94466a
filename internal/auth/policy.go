package auth

import "github.com/Abedishere/smartmeetingroom-435LProject/internal/model"

// The predicates below encode the full permission matrix. Callers are
// expected to check ReadOnly first for any mutating operation; the
// mutation predicates repeat that check so a forgotten call cannot
// widen access.

// ReadOnly reports whether the identity is barred from every mutating
// action regardless of ownership.
func ReadOnly(id Identity) bool { return id.Role() == model.RoleAuditorReadonly }

// ownerOrAdmin is the shared "owner-or-admin" rule: the identity owns
// the resource or holds the admin role.
func ownerOrAdmin(id Identity, ownerID uint64) bool {
	return id.Owns(ownerID) || id.Role() == model.RoleAdmin
}

// roleIn reports whether the identity's role is in the given set.
func roleIn(id Identity, roles ...string) bool {
	r := id.Role()
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// CanCreateBooking allows regular users, facility managers, admins and
// service accounts to create bookings.
func CanCreateBooking(id Identity) bool {
	if ReadOnly(id) {
		return false
	}
	return roleIn(id, model.RoleRegularUser, model.RoleFacilityManager, model.RoleAdmin, model.RoleServiceAccount)
}

// CanManageBooking gates booking update and cancel: owner-or-admin, or
// a facility manager acting on any booking.
func CanManageBooking(id Identity, ownerID uint64) bool {
	if ReadOnly(id) {
		return false
	}
	return ownerOrAdmin(id, ownerID) || id.Role() == model.RoleFacilityManager
}

// CanListBookings gates the privileged list and get-by-id reads.
func CanListBookings(id Identity) bool {
	return roleIn(id, model.RoleAdmin, model.RoleFacilityManager, model.RoleAuditorReadonly)
}

// CanViewHistory allows a user to read their own booking history, and
// admins, facility managers and auditors to read anyone's.
func CanViewHistory(id Identity, username string) bool {
	if u, ok := id.(UserIdentity); ok && u.Username == username {
		return true
	}
	return roleIn(id, model.RoleAdmin, model.RoleFacilityManager, model.RoleAuditorReadonly)
}

// CanCreateReview allows regular users, facility managers and admins
// to review rooms. Service accounts cannot author reviews.
func CanCreateReview(id Identity) bool {
	if ReadOnly(id) {
		return false
	}
	return roleIn(id, model.RoleRegularUser, model.RoleFacilityManager, model.RoleAdmin)
}

// CanUpdateReview gates review edits: strictly owner-or-admin.
func CanUpdateReview(id Identity, ownerID uint64) bool {
	if ReadOnly(id) {
		return false
	}
	return ownerOrAdmin(id, ownerID)
}

// CanDeleteReview allows the author, admins and moderators to delete a
// review.
func CanDeleteReview(id Identity, ownerID uint64) bool {
	if ReadOnly(id) {
		return false
	}
	return ownerOrAdmin(id, ownerID) || id.Role() == model.RoleModerator
}

// CanFlagReview allows regular users, moderators and admins to flag
// any review for moderation.
func CanFlagReview(id Identity) bool {
	if ReadOnly(id) {
		return false
	}
	return roleIn(id, model.RoleRegularUser, model.RoleModerator, model.RoleAdmin)
}

// CanUnflagReview restricts clearing a moderation flag to moderators
// and admins.
func CanUnflagReview(id Identity) bool {
	if ReadOnly(id) {
		return false
	}
	return roleIn(id, model.RoleModerator, model.RoleAdmin)
}

// CanManageRooms gates room create/update/delete: facility managers
// and admins only.
func CanManageRooms(id Identity) bool {
	if ReadOnly(id) {
		return false
	}
	return roleIn(id, model.RoleFacilityManager, model.RoleAdmin)
}
