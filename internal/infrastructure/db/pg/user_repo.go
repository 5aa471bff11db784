package pg

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"maintsvc/internal/domain"
	"maintsvc/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, username, email, role, password_hash, created_at`

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	err := queryRow(ctx, r.db,
		`INSERT INTO users (user_id, username, email, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.Role, u.PasswordHash,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, error) {
	var u user.User
	err := queryRow(ctx, r.db,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`,
		userID,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, userNotFound()
	}
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := queryRow(ctx, r.db,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, userNotFound()
	}
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID string, role user.Role) (user.User, error) {
	var u user.User
	err := queryRow(ctx, r.db,
		`UPDATE users SET role = $2 WHERE user_id = $1
		 RETURNING `+userColumns,
		userID, role,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, userNotFound()
	}
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, userID, hash string) error {
	res, err := exec(ctx, r.db,
		`UPDATE users SET password_hash = $2 WHERE user_id = $1`,
		userID, hash,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return userNotFound()
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := query(ctx, r.db,
		`SELECT `+userColumns+` FROM users ORDER BY username`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func userNotFound() error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeNotFound,
		Message:    "user not found",
		HTTPStatus: http.StatusNotFound,
	}
}
