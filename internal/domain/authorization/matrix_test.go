package authorization

import (
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name   string
		role   entities.Role
		action Action
		rel    Relationship
		want   bool
	}{
		{"customer cancels own request", entities.RoleCustomer, ActionRequestCancel, RelationshipCustomer, true},
		{"customer cancels someone else's request", entities.RoleCustomer, ActionRequestCancel, RelationshipNone, false},
		{"customer cannot add checkpoints", entities.RoleCustomer, ActionCheckpointAdd, RelationshipCustomer, false},
		{"customer approves checkpoint", entities.RoleCustomer, ActionCheckpointApprove, RelationshipCustomer, true},
		{"garage mechanic accepts", entities.RoleMechanic, ActionRequestAccept, RelationshipGarageMechanic, true},
		{"unassigned mechanic cannot start", entities.RoleMechanic, ActionRequestStart, RelationshipGarageMechanic, false},
		{"assigned mechanic adds items", entities.RoleMechanic, ActionOngoingAdd, RelationshipAssigned, true},
		{"mechanic cannot approve additional item", entities.RoleMechanic, ActionAdditionalApprove, RelationshipAssigned, false},
		{"garage admin approves on behalf", entities.RoleGarageAdmin, ActionAdditionalApprove, RelationshipGarageOwner, true},
		{"foreign garage admin denied", entities.RoleGarageAdmin, ActionAdditionalApprove, RelationshipNone, false},
		{"garage admin cannot create requests", entities.RoleGarageAdmin, ActionRequestCreate, RelationshipGarageOwner, false},
		{"system admin unrelated", entities.RoleSystemAdmin, ActionRequestComplete, RelationshipNone, true},
		{"unknown role", entities.Role("root"), ActionRequestView, RelationshipCustomer, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(tc.role, tc.action, tc.rel); got != tc.want {
				t.Fatalf("Allowed(%s, %s, %s) = %v, want %v", tc.role, tc.action, tc.rel, got, tc.want)
			}
		})
	}
}

func TestRelate(t *testing.T) {
	base := Ownership{
		CustomerID:         "cust-1",
		GarageID:           "gar-1",
		AssignedMechanicID: "mech-1",
		GarageOwnerID:      "admin-1",
	}

	t.Run("customer owns request", func(t *testing.T) {
		rel := Relate(entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}, base)
		if rel != RelationshipCustomer {
			t.Fatalf("expected customer, got %s", rel)
		}
	})

	t.Run("other customer", func(t *testing.T) {
		rel := Relate(entities.Actor{ID: "cust-2", Role: entities.RoleCustomer}, base)
		if rel != RelationshipNone {
			t.Fatalf("expected none, got %s", rel)
		}
	})

	t.Run("assigned mechanic", func(t *testing.T) {
		rel := Relate(entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}, base)
		if rel != RelationshipAssigned {
			t.Fatalf("expected assigned, got %s", rel)
		}
	})

	t.Run("same-garage mechanic", func(t *testing.T) {
		o := base
		o.ActorGarageID = "gar-1"
		rel := Relate(entities.Actor{ID: "mech-2", Role: entities.RoleMechanic}, o)
		if rel != RelationshipGarageMechanic {
			t.Fatalf("expected garage_mechanic, got %s", rel)
		}
	})

	t.Run("mechanic of another garage", func(t *testing.T) {
		o := base
		o.ActorGarageID = "gar-2"
		rel := Relate(entities.Actor{ID: "mech-2", Role: entities.RoleMechanic}, o)
		if rel != RelationshipNone {
			t.Fatalf("expected none, got %s", rel)
		}
	})

	t.Run("garage owner", func(t *testing.T) {
		rel := Relate(entities.Actor{ID: "admin-1", Role: entities.RoleGarageAdmin}, base)
		if rel != RelationshipGarageOwner {
			t.Fatalf("expected garage_owner, got %s", rel)
		}
	})

	t.Run("foreign garage admin", func(t *testing.T) {
		rel := Relate(entities.Actor{ID: "admin-2", Role: entities.RoleGarageAdmin}, base)
		if rel != RelationshipNone {
			t.Fatalf("expected none, got %s", rel)
		}
	})

	t.Run("system admin has no relationship", func(t *testing.T) {
		rel := Relate(entities.Actor{ID: "root-1", Role: entities.RoleSystemAdmin}, base)
		if rel != RelationshipNone {
			t.Fatalf("expected none, got %s", rel)
		}
	})
}
