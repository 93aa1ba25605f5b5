package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-explorer/internal/db"
	"github.com/jonathan/career-explorer/internal/types"
	"go.uber.org/zap"
)

// Postgres loads and stores the catalog in the careers table
type Postgres struct {
	db     *db.DB
	logger *zap.Logger
}

// NewPostgres creates a catalog provider on an open database
func NewPostgres(database *db.DB, logger *zap.Logger) *Postgres {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Postgres{db: database, logger: logger}
}

// Load reads every stored career in position order and validates it.
// A row whose JSON cannot be decoded is rejected like any malformed entry.
func (p *Postgres) Load(ctx context.Context) (*Catalog, error) {
	rows, err := p.db.ListCareers(ctx)
	if err != nil {
		return nil, &LoadError{Source: "postgres", Message: "failed to read careers", Cause: err}
	}

	careers := make([]types.Career, len(rows))
	decodeErrs := make(map[int]error)
	for i, row := range rows {
		if err := json.Unmarshal(row.Data, &careers[i]); err != nil {
			careers[i].ID = row.ID
			decodeErrs[i] = err
		}
	}
	return build(careers, decodeErrs, p.logger), nil
}

// Save replaces the stored catalog with the given careers. Every career
// must be valid.
func (p *Postgres) Save(ctx context.Context, careers []types.Career) error {
	snapshot := FromCareers(careers, p.logger)
	if rejected := snapshot.Rejected(); len(rejected) > 0 {
		return fmt.Errorf("refusing to save catalog: %w", &rejected[0])
	}

	rows := make([]db.CareerRow, 0, len(careers))
	for _, c := range snapshot.careers {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal career %s: %w", c.ID, err)
		}
		rows = append(rows, db.CareerRow{ID: c.ID, Data: data})
	}

	if err := p.db.ReplaceCareers(ctx, rows); err != nil {
		return err
	}
	p.logger.Info("catalog saved", zap.Int("careers", len(rows)))
	return nil
}
