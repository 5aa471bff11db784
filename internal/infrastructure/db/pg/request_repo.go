package pg

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/request"
)

type RequestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `request_id, title, description, request_type, status, submitter_id, technician_id, asset_id, created_at, completed_at`

func scanRequest(row *sql.Row) (request.Request, error) {
	var q request.Request
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Type, &q.Status,
		&q.SubmitterID, &q.TechnicianID, &q.AssetID, &q.CreatedAt, &q.CompletedAt)
	return q, err
}

func (r *RequestRepository) Create(ctx context.Context, q request.Request) (request.Request, error) {
	return scanRequest(queryRow(ctx, r.db,
		`INSERT INTO maintenance_requests
		   (request_id, title, description, request_type, status, submitter_id, asset_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+requestColumns,
		q.ID, q.Title, q.Description, q.Type, q.Status, q.SubmitterID, q.AssetID,
	))
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID string) (request.Request, error) {
	q, err := scanRequest(queryRow(ctx, r.db,
		`SELECT `+requestColumns+` FROM maintenance_requests WHERE request_id = $1`,
		requestID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return request.Request{}, requestNotFound()
	}
	if err != nil {
		return request.Request{}, err
	}
	return q, nil
}

func (r *RequestRepository) LockByID(ctx context.Context, requestID string) (request.Request, error) {
	q, err := scanRequest(queryRow(ctx, r.db,
		`SELECT `+requestColumns+` FROM maintenance_requests WHERE request_id = $1 FOR UPDATE`,
		requestID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return request.Request{}, requestNotFound()
	}
	if err != nil {
		return request.Request{}, err
	}
	return q, nil
}

func (r *RequestRepository) AssignTechnician(ctx context.Context, requestID, technicianID string) (request.Request, error) {
	q, err := scanRequest(queryRow(ctx, r.db,
		`UPDATE maintenance_requests
		    SET technician_id = $2, status = 'assigned'
		  WHERE request_id = $1
		  RETURNING `+requestColumns,
		requestID, technicianID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return request.Request{}, requestNotFound()
	}
	if err != nil {
		return request.Request{}, err
	}
	return q, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, requestID string, status request.Status) (request.Request, error) {
	q, err := scanRequest(queryRow(ctx, r.db,
		`UPDATE maintenance_requests
		    SET status = $2,
		        completed_at = CASE WHEN $2 = 'completed' THEN now() ELSE completed_at END
		  WHERE request_id = $1
		  RETURNING `+requestColumns,
		requestID, status,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return request.Request{}, requestNotFound()
	}
	if err != nil {
		return request.Request{}, err
	}
	return q, nil
}

func (r *RequestRepository) List(ctx context.Context, status *request.Status) ([]request.Request, error) {
	var arg interface{}
	if status != nil {
		arg = string(*status)
	}

	rows, err := query(ctx, r.db,
		`SELECT `+requestColumns+`
		   FROM maintenance_requests
		  WHERE ($1::text IS NULL OR status = $1::text)
		  ORDER BY created_at DESC`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []request.Request
	for rows.Next() {
		var q request.Request
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Type, &q.Status,
			&q.SubmitterID, &q.TechnicianID, &q.AssetID, &q.CreatedAt, &q.CompletedAt); err != nil {
			return nil, err
		}
		res = append(res, q)
	}
	return res, rows.Err()
}

func requestNotFound() error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeNotFound,
		Message:    "maintenance request not found",
		HTTPStatus: http.StatusNotFound,
	}
}
