package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CareerRow is one stored catalog entry. Data holds the career as JSON.
type CareerRow struct {
	ID        string
	Position  int
	Data      json.RawMessage
	UpdatedAt time.Time
}

// Session is a persisted questionnaire session
type Session struct {
	Key       string
	SessionID uuid.UUID
	Responses json.RawMessage
	StartedAt time.Time
	UpdatedAt time.Time
}
