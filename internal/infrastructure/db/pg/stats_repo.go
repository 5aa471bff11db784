package pg

import (
	"context"
	"database/sql"

	"maintsvc/internal/domain/stats"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetTechnicianStats(ctx context.Context) ([]stats.TechnicianStat, error) {
	const q = `
	SELECT technician_id,
	       COUNT(*) AS assigned_total,
	       COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress,
	       COUNT(*) FILTER (WHERE status = 'completed') AS completed
	  FROM maintenance_requests
	 WHERE technician_id IS NOT NULL
	 GROUP BY technician_id
	 ORDER BY technician_id;`

	rows, err := query(ctx, r.db, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []stats.TechnicianStat
	for rows.Next() {
		var s stats.TechnicianStat
		if err := rows.Scan(&s.TechnicianID, &s.AssignedTotal, &s.InProgress, &s.Completed); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *StatsRepository) GetAssetRequestStats(ctx context.Context) ([]stats.AssetRequestStat, error) {
	const q = `
	SELECT asset_id,
	       COUNT(*) FILTER (WHERE status NOT IN ('completed', 'cancelled')) AS open_requests
	  FROM maintenance_requests
	 WHERE asset_id IS NOT NULL
	 GROUP BY asset_id
	 ORDER BY asset_id;`

	rows, err := query(ctx, r.db, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []stats.AssetRequestStat
	for rows.Next() {
		var s stats.AssetRequestStat
		if err := rows.Scan(&s.AssetID, &s.OpenRequests); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
