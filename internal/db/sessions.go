package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Session Methods
// -----------------------------------------------------------------------------

// GetSession retrieves a session by key, returning nil when none is stored
func (db *DB) GetSession(ctx context.Context, key string) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT session_key, session_id, responses, started_at, updated_at
		 FROM questionnaire_sessions WHERE session_key = $1`,
		key,
	).Scan(&s.Key, &s.SessionID, &s.Responses, &s.StartedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// UpsertSession inserts or replaces a session
func (db *DB) UpsertSession(ctx context.Context, s *Session) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO questionnaire_sessions (session_key, session_id, responses, started_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (session_key) DO UPDATE SET
		     session_id = $2,
		     responses = $3,
		     started_at = $4,
		     updated_at = $5`,
		s.Key, s.SessionID, []byte(s.Responses), s.StartedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// DeleteSession removes a session. Deleting a missing session is not an error.
func (db *DB) DeleteSession(ctx context.Context, key string) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM questionnaire_sessions WHERE session_key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
