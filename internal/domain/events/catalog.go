package events

// The catalog is the closed set of event types the system emits. The wire
// string is the symbolic name itself, so logs and payload contracts stay
// self-describing.

// Request lifecycle.
const (
	RequestCreated       = "REQUEST_CREATED"
	RequestAssigned      = "REQUEST_ASSIGNED"
	RequestStarted       = "REQUEST_STARTED"
	RequestCompleted     = "REQUEST_COMPLETED"
	RequestCancelled     = "REQUEST_CANCELLED"
	RequestStatusChanged = "REQUEST_STATUS_CHANGED"
)

// Asset lifecycle.
const (
	AssetCreated           = "ASSET_CREATED"
	AssetConditionChanged  = "ASSET_CONDITION_CHANGED"
	AssetStatusChanged     = "ASSET_STATUS_CHANGED"
	AssetRetired           = "ASSET_RETIRED"
	AssetAssignedToRequest = "ASSET_ASSIGNED_TO_REQUEST"
)

// User lifecycle.
const (
	UserRegistered      = "USER_REGISTERED"
	UserLogin           = "USER_LOGIN"
	UserLogout          = "USER_LOGOUT"
	UserPasswordChanged = "USER_PASSWORD_CHANGED"
	TechnicianAssigned  = "TECHNICIAN_ASSIGNED"
)

// System.
const (
	SystemError = "SYSTEM_ERROR"
)

func RequestEvents() []string {
	return []string{
		RequestCreated,
		RequestAssigned,
		RequestStarted,
		RequestCompleted,
		RequestCancelled,
		RequestStatusChanged,
	}
}

func AssetEvents() []string {
	return []string{
		AssetCreated,
		AssetConditionChanged,
		AssetStatusChanged,
		AssetRetired,
		AssetAssignedToRequest,
	}
}

func UserEvents() []string {
	return []string{
		UserRegistered,
		UserLogin,
		UserLogout,
		UserPasswordChanged,
		TechnicianAssigned,
	}
}

func SystemEvents() []string {
	return []string{SystemError}
}

// AllEvents returns every catalog type exactly once, grouped by domain.
// The order is fixed; callers use it for bulk subscription.
func AllEvents() []string {
	all := make([]string, 0, 17)
	all = append(all, RequestEvents()...)
	all = append(all, AssetEvents()...)
	all = append(all, UserEvents()...)
	all = append(all, SystemEvents()...)
	return all
}
