package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/events"
)

type Service interface {
	Register(ctx context.Context, username, email, password string, role Role) (User, error)
	SetRole(ctx context.Context, userID string, role Role) (User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	Login(ctx context.Context, username, password string) (User, error)
	Logout(ctx context.Context, userID string) error
	GetByID(ctx context.Context, userID string) (User, error)
	List(ctx context.Context) ([]User, error)
}

type service struct {
	uow   domain.UnitOfWork
	users Repository
	bus   domain.EventPublisher
}

func NewService(uow domain.UnitOfWork, users Repository, bus domain.EventPublisher) Service {
	return &service{
		uow:   uow,
		users: users,
		bus:   bus,
	}
}

func (s *service) Register(ctx context.Context, username, email, password string, role Role) (User, error) {
	if username == "" || password == "" {
		return User{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "username and password are required",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	if !role.Valid() {
		return User{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "unknown role",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	var res User
	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByUsername(ctx, username); err == nil {
			return &domain.DomainError{
				Code:       domain.ErrorCodeUserExists,
				Message:    "username already taken",
				HTTPStatus: http.StatusConflict,
			}
		} else if !isNotFound(err) {
			return err
		}

		created, err := s.users.Create(ctx, User{
			ID:           uuid.NewString(),
			Username:     username,
			Email:        email,
			Role:         role,
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	if err != nil {
		return User{}, err
	}

	s.publish(ctx, events.NewWithSource(events.UserRegistered, "UserService.Register", map[string]any{
		"user_id":  res.ID,
		"username": res.Username,
		"role":     string(res.Role),
	}))

	return res, nil
}

func (s *service) SetRole(ctx context.Context, userID string, role Role) (User, error) {
	if !role.Valid() {
		return User{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "unknown role",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	var res User
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.SetRole(ctx, userID, role)
		if err != nil {
			return err
		}
		res = u
		return nil
	})
	if err != nil {
		return User{}, err
	}

	if role == RoleTechnician {
		s.publish(ctx, events.NewWithSource(events.TechnicianAssigned, "UserService.SetRole", map[string]any{
			"user_id":  res.ID,
			"username": res.Username,
		}))
	}

	return res, nil
}

func (s *service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "new password is required",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
			return &domain.DomainError{
				Code:       domain.ErrorCodeInvalidCredential,
				Message:    "old password does not match",
				HTTPStatus: http.StatusForbidden,
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		return s.users.SetPasswordHash(ctx, userID, string(hash))
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.NewWithSource(events.UserPasswordChanged, "UserService.ChangePassword", map[string]any{
		"user_id": userID,
	}))

	return nil
}

func (s *service) Login(ctx context.Context, username, password string) (User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return User{}, invalidCredentials()
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, invalidCredentials()
	}

	s.publish(ctx, events.NewWithSource(events.UserLogin, "UserService.Login", map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
	}))

	return u, nil
}

func (s *service) Logout(ctx context.Context, userID string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	s.publish(ctx, events.NewWithSource(events.UserLogout, "UserService.Logout", map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
	}))

	return nil
}

func (s *service) GetByID(ctx context.Context, userID string) (User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.users.List(ctx)
}

func (s *service) publish(ctx context.Context, e events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, e)
	}
}

func invalidCredentials() error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeInvalidCredential,
		Message:    "invalid username or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}

func isNotFound(err error) bool {
	var de *domain.DomainError
	return errors.As(err, &de) && de.Code == domain.ErrorCodeNotFound
}
