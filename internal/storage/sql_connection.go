// AngelaMos | 2026
// sql_connection.go

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
)

const connectionColumns = `id, user_id, platform, connected, account_name, stats`

func (s *SQLStore) ListPlatformConnections(
	ctx context.Context,
	userID int64,
) ([]PlatformConnection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM platform_connections
		WHERE user_id = ?
		ORDER BY id`

	conns := []PlatformConnection{}
	if err := s.selectAll(ctx, &conns, query, userID); err != nil {
		return nil, fmt.Errorf("list platform connections: %w", err)
	}

	return conns, nil
}

func (s *SQLStore) GetPlatformConnection(
	ctx context.Context,
	id int64,
) (*PlatformConnection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM platform_connections
		WHERE id = ?`

	var c PlatformConnection
	err := s.get(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get platform connection: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get platform connection: %w", err)
	}

	return &c, nil
}

func (s *SQLStore) CreatePlatformConnection(
	ctx context.Context,
	in NewPlatformConnection,
) (*PlatformConnection, error) {
	if err := checkPlatform(in.Platform); err != nil {
		return nil, fmt.Errorf("create platform connection: %w", err)
	}

	query := `
		INSERT INTO platform_connections
			(user_id, platform, connected, account_name, stats)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + connectionColumns

	var c PlatformConnection
	err := s.get(ctx, &c, query,
		in.UserID,
		string(in.Platform),
		in.Connected,
		in.AccountName,
		in.Stats,
	)
	if err != nil {
		return nil, translateError("create platform connection", err)
	}

	return &c, nil
}

func (s *SQLStore) UpdatePlatformConnection(
	ctx context.Context,
	id int64,
	patch PlatformConnectionPatch,
) (*PlatformConnection, error) {
	if patch.Platform != nil {
		if err := checkPlatform(*patch.Platform); err != nil {
			return nil, fmt.Errorf("update platform connection: %w", err)
		}
	}
	if patch.IsEmpty() {
		return s.GetPlatformConnection(ctx, id)
	}

	var set setClause
	if patch.Platform != nil {
		set.add("platform", string(*patch.Platform))
	}
	if patch.Connected != nil {
		set.add("connected", *patch.Connected)
	}
	if patch.AccountName.Set {
		set.add("account_name", nullableArg(patch.AccountName))
	}
	if patch.Stats.Set {
		var stats Stats
		if patch.Stats.Valid {
			stats = Stats(patch.Stats.Value)
		}
		set.add("stats", stats)
	}

	query, args := set.update("platform_connections", id, connectionColumns)

	var c PlatformConnection
	err := s.get(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf(
			"update platform connection: %w",
			core.ErrNotFound,
		)
	}
	if err != nil {
		return nil, translateError("update platform connection", err)
	}

	return &c, nil
}
