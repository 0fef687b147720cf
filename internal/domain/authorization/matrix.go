package authorization

import "oficina_xpto/internal/domain/entities"

// Action enumerates every guarded operation of the workflow.
type Action string

const (
	ActionRequestCreate     Action = "request.create"
	ActionRequestView       Action = "request.view"
	ActionRequestAccept     Action = "request.accept"
	ActionRequestStart      Action = "request.start"
	ActionRequestCancel     Action = "request.cancel"
	ActionRequestComplete   Action = "request.complete"
	ActionCheckpointAdd     Action = "checkpoint.add"
	ActionCheckpointApprove Action = "checkpoint.approve"
	ActionOngoingAdd        Action = "item.ongoing.add"
	ActionOngoingFinish     Action = "item.ongoing.finish"
	ActionAdditionalAdd     Action = "item.additional.add"
	ActionAdditionalApprove Action = "item.additional.approve"
	ActionAdditionalRemove  Action = "item.additional.remove"
	ActionSummaryView       Action = "summary.view"
)

// Relationship is the ownership link between an actor and a service request.
type Relationship string

const (
	RelationshipCustomer       Relationship = "customer"        // actor is the request's customer
	RelationshipAssigned       Relationship = "assigned"        // actor is the assigned mechanic
	RelationshipGarageMechanic Relationship = "garage_mechanic" // actor is a mechanic of the request's garage
	RelationshipGarageOwner    Relationship = "garage_owner"    // actor administers the request's garage
	RelationshipNone           Relationship = "none"
)

// relationshipAny matches every relationship, including none. Only system
// admin rows use it.
const relationshipAny Relationship = "*"

// capabilities is the single source of truth for "who can do what to whose
// resource". Every mutating usecase consults it before acting; there are no
// inline role checks anywhere else.
var capabilities = map[entities.Role]map[Action][]Relationship{
	entities.RoleCustomer: {
		ActionRequestCreate:     {RelationshipCustomer},
		ActionRequestView:       {RelationshipCustomer},
		ActionRequestCancel:     {RelationshipCustomer},
		ActionCheckpointApprove: {RelationshipCustomer},
		ActionAdditionalApprove: {RelationshipCustomer},
		ActionSummaryView:       {RelationshipCustomer},
	},
	entities.RoleMechanic: {
		ActionRequestView:      {RelationshipAssigned, RelationshipGarageMechanic},
		ActionRequestAccept:    {RelationshipGarageMechanic},
		ActionRequestStart:     {RelationshipAssigned},
		ActionRequestCancel:    {RelationshipAssigned},
		ActionRequestComplete:  {RelationshipAssigned},
		ActionCheckpointAdd:    {RelationshipAssigned},
		ActionOngoingAdd:       {RelationshipAssigned},
		ActionOngoingFinish:    {RelationshipAssigned},
		ActionAdditionalAdd:    {RelationshipAssigned},
		ActionAdditionalRemove: {RelationshipAssigned},
		ActionSummaryView:      {RelationshipAssigned},
	},
	entities.RoleGarageAdmin: {
		ActionRequestView:       {RelationshipGarageOwner},
		ActionRequestAccept:     {RelationshipGarageOwner},
		ActionRequestStart:      {RelationshipGarageOwner},
		ActionRequestCancel:     {RelationshipGarageOwner},
		ActionRequestComplete:   {RelationshipGarageOwner},
		ActionCheckpointApprove: {RelationshipGarageOwner},
		ActionAdditionalApprove: {RelationshipGarageOwner},
		ActionSummaryView:       {RelationshipGarageOwner},
	},
	entities.RoleSystemAdmin: {
		ActionRequestCreate:     {relationshipAny},
		ActionRequestView:       {relationshipAny},
		ActionRequestAccept:     {relationshipAny},
		ActionRequestStart:      {relationshipAny},
		ActionRequestCancel:     {relationshipAny},
		ActionRequestComplete:   {relationshipAny},
		ActionCheckpointAdd:     {relationshipAny},
		ActionCheckpointApprove: {relationshipAny},
		ActionOngoingAdd:        {relationshipAny},
		ActionOngoingFinish:     {relationshipAny},
		ActionAdditionalAdd:     {relationshipAny},
		ActionAdditionalApprove: {relationshipAny},
		ActionAdditionalRemove:  {relationshipAny},
		ActionSummaryView:       {relationshipAny},
	},
}

// Allowed reports whether role may perform action given its relationship to
// the target request. Unknown roles and actions deny.
func Allowed(role entities.Role, action Action, rel Relationship) bool {
	rels, ok := capabilities[role][action]
	if !ok {
		return false
	}
	for _, r := range rels {
		if r == relationshipAny || r == rel {
			return true
		}
	}
	return false
}

// Ownership carries the resolved ownership facts needed to relate an actor to
// a request. Usecases fill it from the request plus directory lookups.
type Ownership struct {
	CustomerID         string // request's customer
	GarageID           string // request's garage
	AssignedMechanicID string // empty until accepted
	GarageOwnerID      string // admin owning the request's garage
	ActorGarageID      string // garage of a mechanic actor, empty otherwise
}

// Relate resolves the strongest relationship between the actor and the
// request described by o.
func Relate(actor entities.Actor, o Ownership) Relationship {
	switch actor.Role {
	case entities.RoleCustomer:
		if actor.ID != "" && actor.ID == o.CustomerID {
			return RelationshipCustomer
		}
	case entities.RoleMechanic:
		if actor.ID != "" && actor.ID == o.AssignedMechanicID {
			return RelationshipAssigned
		}
		if o.ActorGarageID != "" && o.ActorGarageID == o.GarageID {
			return RelationshipGarageMechanic
		}
	case entities.RoleGarageAdmin:
		if actor.ID != "" && actor.ID == o.GarageOwnerID {
			return RelationshipGarageOwner
		}
	}
	return RelationshipNone
}
