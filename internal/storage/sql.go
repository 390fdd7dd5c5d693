// AngelaMos | 2026
// sql.go

package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/carterperez-dev/socialdash/internal/core"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var _ Storage = (*SQLStore)(nil)

// SQLStore persists every collection in a relational database through sqlx.
// Queries are written with ? placeholders and rebound per driver.
type SQLStore struct {
	db      *sqlx.DB
	q       core.DBTX
	dialect Dialect
	loc     *time.Location
}

type SQLOption func(*SQLStore)

// WithSQLLocation sets the calendar location used by ListPostsByMonth.
func WithSQLLocation(loc *time.Location) SQLOption {
	return func(s *SQLStore) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewSQLStore(db *sqlx.DB, dialect Dialect, opts ...SQLOption) *SQLStore {
	s := &SQLStore{
		db:      db,
		q:       db,
		dialect: dialect,
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SQLStore) withTx(tx *sqlx.Tx) *SQLStore {
	clone := *s
	clone.q = tx
	return &clone
}

func (s *SQLStore) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Migrate applies the embedded schema for the store's dialect. Every
// statement is idempotent.
func (s *SQLStore) Migrate(ctx context.Context) error {
	schema, err := schemaFS.ReadFile("schema/" + string(s.dialect) + ".sql")
	if err != nil {
		return fmt.Errorf("read %s schema: %w", s.dialect, err)
	}

	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, stmt := range strings.Split(string(schema), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLStore) LoadFixtures(ctx context.Context, fx *Fixtures) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txs := s.withTx(tx)

		user, err := txs.CreateUser(ctx, fx.User)
		if err != nil {
			return fmt.Errorf("load fixture user: %w", err)
		}
		owned := fx.withOwner(user.ID)

		for _, b := range owned.BrandSettings {
			if _, err := txs.CreateBrandSettings(ctx, b); err != nil {
				return fmt.Errorf("load fixture brand settings: %w", err)
			}
		}
		for _, c := range owned.Connections {
			if _, err := txs.CreatePlatformConnection(ctx, c); err != nil {
				return fmt.Errorf("load fixture connection: %w", err)
			}
		}
		for _, t := range owned.Templates {
			if _, err := txs.CreatePostTemplate(ctx, t); err != nil {
				return fmt.Errorf("load fixture template: %w", err)
			}
		}
		for _, p := range owned.Posts {
			if err := txs.insertPost(ctx, p); err != nil {
				return fmt.Errorf("load fixture post: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLStore) rebind(query string) string {
	return s.q.Rebind(query)
}

func (s *SQLStore) get(
	ctx context.Context,
	dest any,
	query string,
	args ...any,
) error {
	return s.q.GetContext(ctx, dest, s.rebind(query), args...)
}

func (s *SQLStore) selectAll(
	ctx context.Context,
	dest any,
	query string,
	args ...any,
) error {
	return s.q.SelectContext(ctx, dest, s.rebind(query), args...)
}

func (s *SQLStore) deleteByID(
	ctx context.Context,
	table string,
	id int64,
) (bool, error) {
	query := s.rebind("DELETE FROM " + table + " WHERE id = ?")

	result, err := s.q.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// setClause collects the assignments of a partial update in column order.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) add(col string, value any) {
	c.cols = append(c.cols, col+" = ?")
	c.args = append(c.args, value)
}

func (c *setClause) empty() bool {
	return len(c.cols) == 0
}

func (c *setClause) update(table string, id int64, returning string) (string, []any) {
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ? RETURNING %s",
		table,
		strings.Join(c.cols, ", "),
		returning,
	)
	return query, append(c.args, id)
}

func nullableArg[T any](n core.Nullable[T]) any {
	if !n.Valid {
		return nil
	}
	return n.Value
}

func translateError(op string, err error) error {
	switch {
	case isDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, core.ErrDuplicateKey)
	case isConstraintError(err):
		return fmt.Errorf("%s: %w: %w", op, core.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE,
			sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}

// isConstraintError reports check and foreign key violations.
func isConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514" || pgErr.Code == "23503"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_CHECK,
			sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return true
		}
	}
	return false
}
