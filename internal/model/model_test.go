package model

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleFacilityManager, RoleRegularUser, RoleModerator, RoleAuditorReadonly} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	// service accounts are never stored as users
	for _, role := range []string{RoleServiceAccount, "", "root", "ADMIN"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}

func TestBookingActive(t *testing.T) {
	b := Booking{Status: BookingConfirmed}
	if !b.Active() {
		t.Errorf("confirmed booking must be active")
	}
	b.Status = BookingCancelled
	if b.Active() {
		t.Errorf("cancelled booking must be inactive")
	}
}
