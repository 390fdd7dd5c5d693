// AngelaMos | 2026
// sql_user.go

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
)

const userColumns = `id, username, password, name, business_name, email`

func (s *SQLStore) GetUser(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	var u User
	err := s.get(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

func (s *SQLStore) GetUserByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	var u User
	err := s.get(ctx, &u, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &u, nil
}

func (s *SQLStore) CreateUser(ctx context.Context, in NewUser) (*User, error) {
	query := `
		INSERT INTO users (username, password, name, business_name, email)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + userColumns

	var u User
	err := s.get(ctx, &u, query,
		in.Username,
		in.Password,
		in.Name,
		in.BusinessName,
		in.Email,
	)
	if err != nil {
		return nil, translateError("create user", err)
	}

	return &u, nil
}
