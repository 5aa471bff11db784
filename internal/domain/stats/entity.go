package stats

type TechnicianStat struct {
	TechnicianID  string
	AssignedTotal int
	InProgress    int
	Completed     int
}

type AssetRequestStat struct {
	AssetID      string
	OpenRequests int
}
