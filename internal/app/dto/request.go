package dto

type MaintenanceRequest struct {
	RequestID    string  `json:"request_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	RequestType  string  `json:"request_type"`
	Status       string  `json:"status"`
	SubmitterID  string  `json:"submitter_id"`
	TechnicianID *string `json:"technician_id,omitempty"`
	AssetID      *string `json:"asset_id,omitempty"`
}
