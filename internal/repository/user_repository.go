package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
)

// UserRepo provides access to the users table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its id. A taken username maps to
// ErrDuplicate (MySQL error 1062).
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, role string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES (?,?,?)",
		username, passwordHash, role)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	return r.get(ctx, "SELECT id, username, password_hash, role, created_at FROM users WHERE id=? LIMIT 1", id)
}

// GetByUsername fetches a user by its unique username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.get(ctx, "SELECT id, username, password_hash, role, created_at FROM users WHERE username=? LIMIT 1", username)
}

func (r *UserRepo) get(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
