package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-explorer/internal/types"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps sessions in a SQLite database, one row per session key
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens (or creates) the database at path and returns a store
// for the session named key
func OpenSQLite(ctx context.Context, path, key string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS sessions (
		session_key TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL,
		responses   TEXT NOT NULL,
		started_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: init schema: %w", err)
	}

	return &SQLiteStore{db: db, key: key}, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the session row
func (s *SQLiteStore) Load(ctx context.Context) (*State, error) {
	var id, responses, started, updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, responses, started_at, updated_at FROM sessions WHERE session_key = ?`,
		s.key,
	).Scan(&id, &responses, &started, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite store: load: %w", err)
	}

	state := &State{}
	if state.SessionID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("sqlite store: bad session id: %w", err)
	}
	if state.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("sqlite store: bad started_at: %w", err)
	}
	if state.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("sqlite store: bad updated_at: %w", err)
	}
	if state.Responses, err = decodeResponses([]byte(responses)); err != nil {
		return nil, fmt.Errorf("sqlite store: %w", err)
	}
	return state, nil
}

// Save upserts the session row
func (s *SQLiteStore) Save(ctx context.Context, state *State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	responses, err := encodeResponses(state.Responses)
	if err != nil {
		return fmt.Errorf("sqlite store: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_key, session_id, responses, started_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_key) DO UPDATE SET
		     session_id = excluded.session_id,
		     responses = excluded.responses,
		     started_at = excluded.started_at,
		     updated_at = excluded.updated_at`,
		s.key, state.SessionID.String(), string(responses),
		state.StartedAt.UTC().Format(time.RFC3339Nano),
		state.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite store: save: %w", err)
	}
	return nil
}

// encodeResponses writes responses as a JSON object, never null
func encodeResponses(r types.Responses) ([]byte, error) {
	if r == nil {
		r = types.Responses{}
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal responses: %w", err)
	}
	return data, nil
}

func decodeResponses(data []byte) (types.Responses, error) {
	r := types.Responses{}
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse responses: %w", err)
	}
	return r, nil
}
