package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
)

const uniqueViolation = "23505"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY,
		collection TEXT NOT NULL,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS documents_user_email_uidx
		ON documents ((lower(body->>'email'))) WHERE collection = 'user'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS documents_session_token_uidx
		ON documents ((body->>'token')) WHERE collection = 'session'`,
}

// Open connects to PostgreSQL through the pgx stdlib driver.
// A non-empty dbName replaces the database named in url.
func Open(ctx context.Context, url, dbName string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	connCfg, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if dbName != "" {
		connCfg.Database = dbName
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connCfg), "pgx")
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %q: %w", connCfg.Database, err)
	}
	return db, nil
}

// PostgresStore keeps every collection in a single JSONB table.
type PostgresStore struct {
	db   *sqlx.DB
	name string
}

// NewPostgresStore wraps an open connection pool. name is reported by Name.
func NewPostgresStore(db *sqlx.DB, name string) *PostgresStore {
	return &PostgresStore{db: db, name: name}
}

// EnsureSchema creates the documents table and its unique indexes.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Insert stores doc in collection and returns its generated id.
func (s *PostgresStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	id := uuid.NewString()
	body, _, err := encode(doc, id)
	if err != nil {
		return "", err
	}

	const query = `INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3::jsonb)`
	_, err = s.db.ExecContext(ctx, query, id, collection, string(body))
	logQuery(query, collection, nil, id, err)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		}
		return "", err
	}
	return id, nil
}

// FindOne decodes the first document matching filter into dest.
func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter Filter, dest any) error {
	where, args, ok, err := buildWhere(collection, filter)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	query := `SELECT body FROM documents WHERE ` + where + ` LIMIT 1`
	var body []byte
	err = s.db.GetContext(ctx, &body, query, args...)
	logQuery(query, collection, filter, len(body) > 0, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// FindMany decodes every document matching filter into dest, a pointer to a slice.
// Without an order, results come back in insertion order.
func (s *PostgresStore) FindMany(ctx context.Context, collection string, filter Filter, order *Sort, dest any) error {
	if err := order.validate(); err != nil {
		return err
	}
	where, args, ok, err := buildWhere(collection, filter)
	if err != nil {
		return err
	}

	var bodies [][]byte
	if ok {
		query := `SELECT body FROM documents WHERE ` + where + ` ORDER BY ` + orderBy(order)
		err = s.db.SelectContext(ctx, &bodies, query, args...)
		logQuery(query, collection, filter, len(bodies), err)
		if err != nil {
			return err
		}
	}
	return decodeMany(bodies, dest)
}

// DeleteMany removes every document matching filter and reports how many were removed.
func (s *PostgresStore) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	where, args, ok, err := buildWhere(collection, filter)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	query := `DELETE FROM documents WHERE ` + where
	res, err := s.db.ExecContext(ctx, query, args...)
	var n int64
	if res != nil {
		n, _ = res.RowsAffected()
	}
	logQuery(query, collection, filter, n, err)

	return n, err
}

// Ping checks connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collections lists collection names that hold at least one document.
func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT collection FROM documents ORDER BY collection`
	var names []string
	err := s.db.SelectContext(ctx, &names, query)
	logQuery(query, "", nil, names, err)
	return names, err
}

// Name returns the name given to NewPostgresStore.
func (s *PostgresStore) Name() string {
	return s.name
}

// buildWhere renders filter as a WHERE clause. ok is false when the filter can
// never match, e.g. an id that is not a UUID.
func buildWhere(collection string, filter Filter) (where string, args []any, ok bool, err error) {
	id, hasID, fields := splitFilter(filter)

	clauses := []string{"collection = $1"}
	args = []any{collection}

	if hasID {
		parsed, perr := uuid.Parse(id)
		if perr != nil {
			return "", nil, false, nil
		}
		args = append(args, parsed.String())
		clauses = append(clauses, fmt.Sprintf("id = $%d", len(args)))
	}

	if len(fields) > 0 {
		raw, merr := json.Marshal(fields)
		if merr != nil {
			return "", nil, false, fmt.Errorf("marshal filter: %w", merr)
		}
		args = append(args, string(raw))
		clauses = append(clauses, fmt.Sprintf("body @> $%d::jsonb", len(args)))
	}

	return strings.Join(clauses, " AND "), args, true, nil
}

func orderBy(order *Sort) string {
	if order == nil {
		return "created_at, id"
	}
	dir := "ASC"
	if order.Order == Descending {
		dir = "DESC"
	}
	// Field is validated against fieldName before it reaches here.
	return fmt.Sprintf("body->>'%s' %s, created_at %s", order.Field, dir, dir)
}

func logQuery(query, collection string, filter Filter, result any, err error) {
	logger.Log.Debugw("docstore query",
		"query", strings.Join(strings.Fields(query), " "),
		"collection", collection,
		"filter", filterKeys(filter),
		"result", result,
		"error", err,
	)
}

// filterKeys keeps filter values (tokens, emails) out of the logs.
func filterKeys(filter Filter) []string {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
