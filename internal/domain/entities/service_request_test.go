package entities

import "testing"

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to RequestStatus
	}{
		{RequestStatusPending, RequestStatusAccepted},
		{RequestStatusPending, RequestStatusCancelled},
		{RequestStatusAccepted, RequestStatusInProgress},
		{RequestStatusAccepted, RequestStatusCancelled},
		{RequestStatusInProgress, RequestStatusCompleted},
		{RequestStatusInProgress, RequestStatusCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to RequestStatus
	}{
		{RequestStatusPending, RequestStatusInProgress},
		{RequestStatusPending, RequestStatusCompleted},
		{RequestStatusAccepted, RequestStatusCompleted},
		{RequestStatusAccepted, RequestStatusPending},
		{RequestStatusInProgress, RequestStatusAccepted},
		{RequestStatusCompleted, RequestStatusCancelled},
		{RequestStatusCompleted, RequestStatusInProgress},
		{RequestStatusCancelled, RequestStatusAccepted},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestRequestStatus_Flags(t *testing.T) {
	for _, s := range []RequestStatus{RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
		if !s.IsOpen() {
			t.Errorf("%s should be open", s)
		}
	}
	for _, s := range []RequestStatus{RequestStatusCompleted, RequestStatusCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
		if s.IsOpen() {
			t.Errorf("%s should not be open", s)
		}
	}
	if RequestStatus("UNKNOWN").Valid() {
		t.Errorf("unknown status should not be valid")
	}
}

func TestCoordinates_Valid(t *testing.T) {
	cases := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"origin", Coordinates{0, 0}, true},
		{"extremes", Coordinates{-90, 180}, true},
		{"lat too high", Coordinates{90.1, 0}, false},
		{"lat too low", Coordinates{-90.1, 0}, false},
		{"lng too high", Coordinates{0, 180.1}, false},
		{"lng too low", Coordinates{0, -180.1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.coords.Valid(); got != tc.want {
				t.Fatalf("Valid(%+v) = %v, want %v", tc.coords, got, tc.want)
			}
		})
	}
}

func TestGarage_AcceptsRequests(t *testing.T) {
	if !(Garage{ID: "g1", Approved: true, Available: true}).AcceptsRequests() {
		t.Fatalf("approved available garage should accept requests")
	}
	for _, g := range []Garage{
		{ID: "g1", Approved: false, Available: true},
		{ID: "g1", Approved: true, Available: false},
		{ID: "g1", Approved: true, Available: true, Removed: true},
	} {
		if g.AcceptsRequests() {
			t.Errorf("garage %+v should not accept requests", g)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleMechanic, RoleGarageAdmin, RoleSystemAdmin} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Errorf("unknown role should not be valid")
	}
}
