package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/events"
	"maintsvc/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, title, description string, reqType RequestType, submitterID string, assetID *string) (Request, error)
	Assign(ctx context.Context, requestID, technicianID string) (Request, error)
	Start(ctx context.Context, requestID string) (Request, error)
	Complete(ctx context.Context, requestID string) (Request, error)
	Cancel(ctx context.Context, requestID string) (Request, error)
	GetByID(ctx context.Context, requestID string) (Request, error)
	List(ctx context.Context, status *Status) ([]Request, error)
}

type service struct {
	uow      domain.UnitOfWork
	requests Repository
	users    user.Repository
	bus      domain.EventPublisher
}

func NewService(
	uow domain.UnitOfWork,
	requests Repository,
	users user.Repository,
	bus domain.EventPublisher,
) Service {
	return &service{
		uow:      uow,
		requests: requests,
		users:    users,
		bus:      bus,
	}
}

func (s *service) Create(ctx context.Context, title, description string, reqType RequestType, submitterID string, assetID *string) (Request, error) {
	if title == "" {
		return Request{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "title is required",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	if !reqType.Valid() {
		return Request{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "unknown request type",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	var res Request
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, submitterID); err != nil {
			return err
		}

		created, err := s.requests.Create(ctx, Request{
			ID:          uuid.NewString(),
			Title:       title,
			Description: description,
			Type:        reqType,
			Status:      StatusPending,
			SubmitterID: submitterID,
			AssetID:     assetID,
		})
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	if err != nil {
		return Request{}, err
	}

	payload := map[string]any{
		"request_id":   res.ID,
		"title":        res.Title,
		"request_type": string(res.Type),
		"submitter_id": res.SubmitterID,
	}
	if res.AssetID != nil {
		payload["asset_id"] = *res.AssetID
	}
	s.publish(ctx, events.NewWithSource(events.RequestCreated, "RequestService.Create", payload))

	return res, nil
}

func (s *service) Assign(ctx context.Context, requestID, technicianID string) (Request, error) {
	var res Request
	var old Status

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.requests.LockByID(ctx, requestID)
		if err != nil {
			return err
		}
		if !canTransition(current.Status, StatusAssigned) {
			return transitionError(current.Status, StatusAssigned)
		}
		old = current.Status

		tech, err := s.users.GetByID(ctx, technicianID)
		if err != nil {
			return err
		}
		if tech.Role != user.RoleTechnician {
			return &domain.DomainError{
				Code:       domain.ErrorCodeValidation,
				Message:    "assignee is not a technician",
				HTTPStatus: http.StatusBadRequest,
			}
		}

		assigned, err := s.requests.AssignTechnician(ctx, requestID, technicianID)
		if err != nil {
			return err
		}
		res = assigned
		return nil
	})
	if err != nil {
		return Request{}, err
	}

	payload := map[string]any{
		"request_id":    res.ID,
		"technician_id": technicianID,
		"submitter_id":  res.SubmitterID,
	}
	if res.AssetID != nil {
		payload["asset_id"] = *res.AssetID
	}
	s.publish(ctx, events.NewWithSource(events.RequestAssigned, "RequestService.Assign", payload))
	s.publishStatusChanged(ctx, res.ID, old, StatusAssigned)

	if res.AssetID != nil {
		s.publish(ctx, events.NewWithSource(events.AssetAssignedToRequest, "RequestService.Assign", map[string]any{
			"asset_id":   *res.AssetID,
			"request_id": res.ID,
		}))
	}

	return res, nil
}

func (s *service) Start(ctx context.Context, requestID string) (Request, error) {
	res, old, err := s.transition(ctx, requestID, StatusInProgress)
	if err != nil {
		return Request{}, err
	}

	payload := map[string]any{"request_id": res.ID}
	if res.TechnicianID != nil {
		payload["technician_id"] = *res.TechnicianID
	}
	s.publish(ctx, events.NewWithSource(events.RequestStarted, "RequestService.Start", payload))
	s.publishStatusChanged(ctx, res.ID, old, StatusInProgress)

	return res, nil
}

func (s *service) Complete(ctx context.Context, requestID string) (Request, error) {
	res, old, err := s.transition(ctx, requestID, StatusCompleted)
	if err != nil {
		return Request{}, err
	}

	payload := map[string]any{
		"request_id":   res.ID,
		"submitter_id": res.SubmitterID,
	}
	if res.TechnicianID != nil {
		payload["technician_id"] = *res.TechnicianID
	}
	if res.AssetID != nil {
		payload["asset_id"] = *res.AssetID
	}
	s.publish(ctx, events.NewWithSource(events.RequestCompleted, "RequestService.Complete", payload))
	s.publishStatusChanged(ctx, res.ID, old, StatusCompleted)

	return res, nil
}

func (s *service) Cancel(ctx context.Context, requestID string) (Request, error) {
	res, old, err := s.transition(ctx, requestID, StatusCancelled)
	if err != nil {
		return Request{}, err
	}

	s.publish(ctx, events.NewWithSource(events.RequestCancelled, "RequestService.Cancel", map[string]any{
		"request_id":   res.ID,
		"submitter_id": res.SubmitterID,
	}))
	s.publishStatusChanged(ctx, res.ID, old, StatusCancelled)

	return res, nil
}

func (s *service) GetByID(ctx context.Context, requestID string) (Request, error) {
	return s.requests.GetByID(ctx, requestID)
}

func (s *service) List(ctx context.Context, status *Status) ([]Request, error) {
	return s.requests.List(ctx, status)
}

func (s *service) transition(ctx context.Context, requestID string, to Status) (Request, Status, error) {
	var res Request
	var old Status

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.requests.LockByID(ctx, requestID)
		if err != nil {
			return err
		}
		if !canTransition(current.Status, to) {
			return transitionError(current.Status, to)
		}
		old = current.Status

		updated, err := s.requests.UpdateStatus(ctx, requestID, to)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	if err != nil {
		return Request{}, "", err
	}

	return res, old, nil
}

func (s *service) publishStatusChanged(ctx context.Context, requestID string, old, cur Status) {
	s.publish(ctx, events.NewWithSource(events.RequestStatusChanged, "RequestService", map[string]any{
		"request_id": requestID,
		"old_status": string(old),
		"new_status": string(cur),
	}))
}

func (s *service) publish(ctx context.Context, e events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, e)
	}
}

func transitionError(from, to Status) error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeInvalidTransition,
		Message:    "cannot move request from " + string(from) + " to " + string(to),
		HTTPStatus: http.StatusConflict,
	}
}
