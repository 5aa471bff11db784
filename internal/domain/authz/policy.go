package authz

import (
	"net/http"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/user"
)

// Subject is the request-scoped identity, resolved by middleware and
// passed explicitly. There is no ambient current-user state.
type Subject struct {
	UserID string
	Role   user.Role
}

// Actions gate mutating operations before the service layer runs and
// before any event is published.
const (
	ActionUserRegister   = "user.register"
	ActionUserSetRole    = "user.set_role"
	ActionUserList       = "user.list"
	ActionAssetCreate    = "asset.create"
	ActionAssetUpdate    = "asset.update"
	ActionAssetRetire    = "asset.retire"
	ActionRequestCreate  = "request.create"
	ActionRequestAssign  = "request.assign"
	ActionRequestWork    = "request.work"
	ActionRequestCancel  = "request.cancel"
	ActionStatsRead      = "stats.read"
	ActionMetricsRead    = "metrics.read"
)

var rules = map[string][]user.Role{
	ActionUserRegister:  {user.RoleAdmin},
	ActionUserSetRole:   {user.RoleAdmin},
	ActionUserList:      {user.RoleAdmin, user.RoleManager},
	ActionAssetCreate:   {user.RoleAdmin, user.RoleManager},
	ActionAssetUpdate:   {user.RoleAdmin, user.RoleManager, user.RoleTechnician},
	ActionAssetRetire:   {user.RoleAdmin, user.RoleManager},
	ActionRequestCreate: {user.RoleAdmin, user.RoleManager, user.RoleTechnician, user.RoleRequester},
	ActionRequestAssign: {user.RoleAdmin, user.RoleManager},
	ActionRequestWork:   {user.RoleAdmin, user.RoleManager, user.RoleTechnician},
	ActionRequestCancel: {user.RoleAdmin, user.RoleManager, user.RoleRequester},
	ActionStatsRead:     {user.RoleAdmin, user.RoleManager},
	ActionMetricsRead:   {user.RoleAdmin, user.RoleManager},
}

type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// Authorize returns nil when the subject's role may perform the action on
// the resource, or a FORBIDDEN DomainError otherwise. Unknown actions are
// denied.
func (p *Policy) Authorize(sub Subject, action, resource string) error {
	allowed, ok := rules[action]
	if ok {
		for _, role := range allowed {
			if sub.Role == role {
				return nil
			}
		}
	}

	return &domain.DomainError{
		Code:       domain.ErrorCodeForbidden,
		Message:    "role " + string(sub.Role) + " may not perform " + action + " on " + resource,
		HTTPStatus: http.StatusForbidden,
	}
}
