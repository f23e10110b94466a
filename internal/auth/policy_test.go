package auth

import (
	"testing"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
)

const ownerID uint64 = 7

func owner() Identity {
	return UserIdentity{ID: ownerID, Username: "owner", UserRole: model.RoleRegularUser}
}

func user(role string) Identity {
	return UserIdentity{ID: 42, Username: "someone", UserRole: role}
}

func service() Identity { return ServiceIdentity{Name: "scheduler"} }

func TestPermissionMatrix(t *testing.T) {
	cases := []struct {
		name string
		pred func(Identity) bool
		want map[string]bool // role -> allowed, for a non-owner identity
		svc  bool            // service account allowed
	}{
		{
			name: "create booking",
			pred: CanCreateBooking,
			want: map[string]bool{
				model.RoleRegularUser:     true,
				model.RoleFacilityManager: true,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: false,
			},
			svc: true,
		},
		{
			name: "manage booking",
			pred: func(id Identity) bool { return CanManageBooking(id, ownerID) },
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: true,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: false,
			},
		},
		{
			name: "list bookings",
			pred: CanListBookings,
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: true,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: true,
			},
		},
		{
			name: "view foreign history",
			pred: func(id Identity) bool { return CanViewHistory(id, "owner") },
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: true,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: true,
			},
		},
		{
			name: "create review",
			pred: CanCreateReview,
			want: map[string]bool{
				model.RoleRegularUser:     true,
				model.RoleFacilityManager: true,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: false,
			},
		},
		{
			name: "update review",
			pred: func(id Identity) bool { return CanUpdateReview(id, ownerID) },
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: false,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: false,
			},
		},
		{
			name: "delete review",
			pred: func(id Identity) bool { return CanDeleteReview(id, ownerID) },
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: false,
				model.RoleAdmin:           true,
				model.RoleModerator:       true,
				model.RoleAuditorReadonly: false,
			},
		},
		{
			name: "flag review",
			pred: CanFlagReview,
			want: map[string]bool{
				model.RoleRegularUser:     true,
				model.RoleFacilityManager: false,
				model.RoleAdmin:           true,
				model.RoleModerator:       true,
				model.RoleAuditorReadonly: false,
			},
		},
		{
			name: "unflag review",
			pred: CanUnflagReview,
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: false,
				model.RoleAdmin:           true,
				model.RoleModerator:       true,
				model.RoleAuditorReadonly: false,
			},
		},
		{
			name: "manage rooms",
			pred: CanManageRooms,
			want: map[string]bool{
				model.RoleRegularUser:     false,
				model.RoleFacilityManager: true,
				model.RoleAdmin:           true,
				model.RoleModerator:       false,
				model.RoleAuditorReadonly: false,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for role, want := range tc.want {
				if got := tc.pred(user(role)); got != want {
					t.Errorf("%s: got %v, want %v", role, got, want)
				}
			}
			if got := tc.pred(service()); got != tc.svc {
				t.Errorf("service account: got %v, want %v", got, tc.svc)
			}
		})
	}
}

func TestOwnershipRules(t *testing.T) {
	if !CanManageBooking(owner(), ownerID) {
		t.Errorf("owner must manage own booking")
	}
	if !CanUpdateReview(owner(), ownerID) {
		t.Errorf("author must edit own review")
	}
	if !CanDeleteReview(owner(), ownerID) {
		t.Errorf("author must delete own review")
	}
	if !CanViewHistory(owner(), "owner") {
		t.Errorf("user must view own history")
	}
	// service identities own nothing
	if service().Owns(ownerID) {
		t.Errorf("service identity must not claim ownership")
	}
}

func TestReadOnlyOverridesOwnership(t *testing.T) {
	aud := UserIdentity{ID: ownerID, Username: "owner", UserRole: model.RoleAuditorReadonly}
	if CanManageBooking(aud, ownerID) {
		t.Errorf("readonly role must not manage even its own booking")
	}
	if CanUpdateReview(aud, ownerID) {
		t.Errorf("readonly role must not edit even its own review")
	}
	if CanDeleteReview(aud, ownerID) {
		t.Errorf("readonly role must not delete even its own review")
	}
}
