package dto

type TechnicianStat struct {
	TechnicianID  string `json:"technician_id"`
	AssignedTotal int    `json:"assigned_total"`
	InProgress    int    `json:"in_progress"`
	Completed     int    `json:"completed"`
}

type AssetRequestStat struct {
	AssetID      string `json:"asset_id"`
	OpenRequests int    `json:"open_requests"`
}

type StatsResponse struct {
	PerTechnician []TechnicianStat   `json:"per_technician,omitempty"`
	PerAsset      []AssetRequestStat `json:"per_asset,omitempty"`
}
