package request_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/events"
	"maintsvc/internal/domain/request"
	"maintsvc/internal/domain/user"
)

type uowStub struct{}

func (uowStub) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type publisherFake struct{ published []events.Event }

func (p *publisherFake) Publish(_ context.Context, e events.Event) events.Result {
	p.published = append(p.published, e)
	return events.Result{Succeeded: 1}
}

func (p *publisherFake) types() []string {
	out := make([]string, 0, len(p.published))
	for _, e := range p.published {
		out = append(out, e.Type)
	}
	return out
}

type requestRepoFake struct {
	byID map[string]request.Request
}

func newRequestRepoFake() *requestRepoFake {
	return &requestRepoFake{byID: map[string]request.Request{}}
}

func (r *requestRepoFake) Create(_ context.Context, q request.Request) (request.Request, error) {
	r.byID[q.ID] = q
	return q, nil
}

func (r *requestRepoFake) GetByID(_ context.Context, requestID string) (request.Request, error) {
	q, ok := r.byID[requestID]
	if !ok {
		return request.Request{}, notFound()
	}
	return q, nil
}

func (r *requestRepoFake) LockByID(ctx context.Context, requestID string) (request.Request, error) {
	return r.GetByID(ctx, requestID)
}

func (r *requestRepoFake) AssignTechnician(_ context.Context, requestID, technicianID string) (request.Request, error) {
	q, ok := r.byID[requestID]
	if !ok {
		return request.Request{}, notFound()
	}
	q.TechnicianID = &technicianID
	q.Status = request.StatusAssigned
	r.byID[requestID] = q
	return q, nil
}

func (r *requestRepoFake) UpdateStatus(_ context.Context, requestID string, status request.Status) (request.Request, error) {
	q, ok := r.byID[requestID]
	if !ok {
		return request.Request{}, notFound()
	}
	q.Status = status
	r.byID[requestID] = q
	return q, nil
}

func (r *requestRepoFake) List(_ context.Context, status *request.Status) ([]request.Request, error) {
	var res []request.Request
	for _, q := range r.byID {
		if status == nil || q.Status == *status {
			res = append(res, q)
		}
	}
	return res, nil
}

type userRepoFake struct{ byID map[string]user.User }

func newUserRepoFake() *userRepoFake { return &userRepoFake{byID: map[string]user.User{}} }

func (r *userRepoFake) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (r *userRepoFake) GetByUsername(_ context.Context, _ string) (user.User, error) {
	return user.User{}, notFound()
}
func (r *userRepoFake) SetRole(_ context.Context, _ string, _ user.Role) (user.User, error) {
	return user.User{}, notFound()
}
func (r *userRepoFake) SetPasswordHash(_ context.Context, _, _ string) error { return nil }
func (r *userRepoFake) List(_ context.Context) ([]user.User, error)          { return nil, nil }

func (r *userRepoFake) GetByID(_ context.Context, userID string) (user.User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return user.User{}, notFound()
	}
	return u, nil
}

func notFound() error {
	return &domain.DomainError{Code: domain.ErrorCodeNotFound, Message: "not found", HTTPStatus: http.StatusNotFound}
}

func newFixture() (*requestRepoFake, *userRepoFake, *publisherFake, request.Service) {
	requests := newRequestRepoFake()
	users := newUserRepoFake()
	bus := &publisherFake{}
	svc := request.NewService(uowStub{}, requests, users, bus)
	return requests, users, bus, svc
}

func TestCreatePublishes(t *testing.T) {
	_, users, bus, svc := newFixture()
	users.byID["u1"] = user.User{ID: "u1", Role: user.RoleRequester}

	q, err := svc.Create(context.Background(), "Leaky pipe", "kitchen sink", request.TypeRepair, "u1", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.Status != request.StatusPending {
		t.Fatalf("status = %s", q.Status)
	}

	if got := bus.types(); len(got) != 1 || got[0] != events.RequestCreated {
		t.Fatalf("events = %v", got)
	}
	data := bus.published[0].Data
	if data["request_type"] != "repair" || data["submitter_id"] != "u1" {
		t.Fatalf("payload = %v", data)
	}
}

func TestCreateUnknownSubmitter(t *testing.T) {
	_, _, bus, svc := newFixture()

	_, err := svc.Create(context.Background(), "Leaky pipe", "", request.TypeRepair, "ghost", nil)
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("failed create must not publish")
	}
}

func TestAssignPublishesAssignedAndStatusChanged(t *testing.T) {
	requests, users, bus, svc := newFixture()
	users.byID["t1"] = user.User{ID: "t1", Role: user.RoleTechnician}
	assetID := "a5"
	requests.byID["r1"] = request.Request{ID: "r1", Status: request.StatusPending, SubmitterID: "u1", AssetID: &assetID}

	q, err := svc.Assign(context.Background(), "r1", "t1")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if q.Status != request.StatusAssigned || q.TechnicianID == nil || *q.TechnicianID != "t1" {
		t.Fatalf("request = %+v", q)
	}

	got := bus.types()
	want := []string{events.RequestAssigned, events.RequestStatusChanged, events.AssetAssignedToRequest}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	if bus.published[0].Data["asset_id"] != "a5" {
		t.Fatalf("assigned payload = %v", bus.published[0].Data)
	}
}

func TestAssignRequiresTechnicianRole(t *testing.T) {
	requests, users, bus, svc := newFixture()
	users.byID["u2"] = user.User{ID: "u2", Role: user.RoleRequester}
	requests.byID["r1"] = request.Request{ID: "r1", Status: request.StatusPending, SubmitterID: "u1"}

	_, err := svc.Assign(context.Background(), "r1", "u2")
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeValidation {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("failed assign must not publish")
	}
}

func TestLifecycleTransitions(t *testing.T) {
	requests, users, bus, svc := newFixture()
	users.byID["t1"] = user.User{ID: "t1", Role: user.RoleTechnician}
	requests.byID["r1"] = request.Request{ID: "r1", Status: request.StatusPending, SubmitterID: "u1"}

	ctx := context.Background()
	if _, err := svc.Assign(ctx, "r1", "t1"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := svc.Start(ctx, "r1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q, err := svc.Complete(ctx, "r1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if q.Status != request.StatusCompleted {
		t.Fatalf("status = %s", q.Status)
	}

	var sawStarted, sawCompleted bool
	for _, typ := range bus.types() {
		switch typ {
		case events.RequestStarted:
			sawStarted = true
		case events.RequestCompleted:
			sawCompleted = true
		}
	}
	if !sawStarted || !sawCompleted {
		t.Fatalf("events = %v", bus.types())
	}
}

func TestIllegalTransition(t *testing.T) {
	requests, _, bus, svc := newFixture()
	requests.byID["r1"] = request.Request{ID: "r1", Status: request.StatusPending, SubmitterID: "u1"}

	_, err := svc.Complete(context.Background(), "r1")
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeInvalidTransition {
		t.Fatalf("expected INVALID_TRANSITION, got %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("failed transition must not publish")
	}
}

func TestCancelCompletedRejected(t *testing.T) {
	requests, _, _, svc := newFixture()
	requests.byID["r1"] = request.Request{ID: "r1", Status: request.StatusCompleted, SubmitterID: "u1"}

	if _, err := svc.Cancel(context.Background(), "r1"); err == nil {
		t.Fatalf("cancelling a completed request should fail")
	}
}

func TestCancelPublishes(t *testing.T) {
	requests, _, bus, svc := newFixture()
	requests.byID["r1"] = request.Request{ID: "r1", Status: request.StatusPending, SubmitterID: "u1"}

	if _, err := svc.Cancel(context.Background(), "r1"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got := bus.types(); got[0] != events.RequestCancelled {
		t.Fatalf("events = %v", got)
	}
}
