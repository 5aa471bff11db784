package request

import "context"

type Repository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, requestID string) (Request, error)
	// LockByID reads the row under a row-level lock so concurrent
	// transitions on the same request serialize.
	LockByID(ctx context.Context, requestID string) (Request, error)
	AssignTechnician(ctx context.Context, requestID, technicianID string) (Request, error)
	UpdateStatus(ctx context.Context, requestID string, status Status) (Request, error)
	List(ctx context.Context, status *Status) ([]Request, error)
}
