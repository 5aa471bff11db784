package request

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type RequestType string

const (
	TypeRepair      RequestType = "repair"
	TypeMaintenance RequestType = "maintenance"
	TypeInspection  RequestType = "inspection"
	TypeReplacement RequestType = "replacement"
)

func (t RequestType) Valid() bool {
	switch t {
	case TypeRepair, TypeMaintenance, TypeInspection, TypeReplacement:
		return true
	}
	return false
}

type Request struct {
	ID           string
	Title        string
	Description  string
	Type         RequestType
	Status       Status
	SubmitterID  string
	TechnicianID *string
	AssetID      *string
	CreatedAt    *time.Time
	CompletedAt  *time.Time
}

// canTransition encodes the legal status moves. Cancel is allowed from
// anywhere short of a terminal state.
func canTransition(from, to Status) bool {
	switch to {
	case StatusAssigned:
		return from == StatusPending || from == StatusAssigned
	case StatusInProgress:
		return from == StatusAssigned
	case StatusCompleted:
		return from == StatusInProgress
	case StatusCancelled:
		return from == StatusPending || from == StatusAssigned || from == StatusInProgress
	}
	return false
}
