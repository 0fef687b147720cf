package usecase

import (
	"context"

	"oficina_xpto/internal/domain/authorization"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// resolveOwnership gathers the directory facts the AuthorizationMatrix needs
// to relate actor to req. Only the lookups the actor's role can use are made.
func resolveOwnership(ctx context.Context, directory interfaces.IDirectory, actor entities.Actor, req entities.ServiceRequest) (authorization.Ownership, error) {
	o := authorization.Ownership{
		CustomerID:         req.CustomerID,
		GarageID:           req.GarageID,
		AssignedMechanicID: req.MechanicID,
	}

	switch actor.Role {
	case entities.RoleGarageAdmin:
		g, err := directory.GetGarage(ctx, req.GarageID)
		if err != nil {
			return authorization.Ownership{}, err
		}
		o.GarageOwnerID = g.OwnerID
	case entities.RoleMechanic:
		if actor.ID == req.MechanicID {
			break
		}
		m, err := directory.GetMechanic(ctx, actor.ID)
		if err != nil {
			return authorization.Ownership{}, err
		}
		// An unapproved mechanic relates to nothing.
		if m.Approved {
			o.ActorGarageID = m.GarageID
		}
	}
	return o, nil
}
