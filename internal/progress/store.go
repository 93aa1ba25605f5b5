// Package progress tracks a questionnaire session and persists it through an
// injected Store.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-explorer/internal/types"
)

// State is a persisted questionnaire session
type State struct {
	SessionID uuid.UUID       `json:"session_id" validate:"required"`
	Responses types.Responses `json:"responses"`
	StartedAt time.Time       `json:"started_at" validate:"required"`
	UpdatedAt time.Time       `json:"updated_at" validate:"required,gtefield=StartedAt"`
}

// Validate checks the state has a session id and ordered timestamps
func (s *State) Validate() error {
	if err := types.Validator().Struct(s); err != nil {
		return fmt.Errorf("invalid session state: %w", err)
	}
	return nil
}

// clone returns a deep copy of s
func (s *State) clone() *State {
	c := *s
	c.Responses = s.Responses.Clone()
	return &c
}

// Store persists a single session. Load returns nil, nil when nothing has
// been saved yet.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}
