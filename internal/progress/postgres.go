package progress

import (
	"context"

	"github.com/jonathan/career-explorer/internal/db"
)

// PostgresStore keeps sessions in the questionnaire_sessions table
type PostgresStore struct {
	db  *db.DB
	key string
}

// NewPostgresStore returns a store for the session named key
func NewPostgresStore(database *db.DB, key string) *PostgresStore {
	return &PostgresStore{db: database, key: key}
}

// Load reads the session row
func (p *PostgresStore) Load(ctx context.Context) (*State, error) {
	s, err := p.db.GetSession(ctx, p.key)
	if err != nil || s == nil {
		return nil, err
	}
	responses, err := decodeResponses(s.Responses)
	if err != nil {
		return nil, err
	}
	return &State{
		SessionID: s.SessionID,
		Responses: responses,
		StartedAt: s.StartedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

// Save upserts the session row
func (p *PostgresStore) Save(ctx context.Context, state *State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	responses, err := encodeResponses(state.Responses)
	if err != nil {
		return err
	}
	return p.db.UpsertSession(ctx, &db.Session{
		Key:       p.key,
		SessionID: state.SessionID,
		Responses: responses,
		StartedAt: state.StartedAt,
		UpdatedAt: state.UpdatedAt,
	})
}
