package db

import (
	"context"
	"fmt"
)

// -----------------------------------------------------------------------------
// Career Methods
// -----------------------------------------------------------------------------

// ListCareers returns every stored career in catalog order
func (db *DB) ListCareers(ctx context.Context) ([]CareerRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, position, data, updated_at FROM careers ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var out []CareerRow
	for rows.Next() {
		var r CareerRow
		if err := rows.Scan(&r.ID, &r.Position, &r.Data, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate careers: %w", err)
	}
	return out, nil
}

// ReplaceCareers upserts the given careers in order and deletes any stored
// career not among them, in a single transaction
func (db *DB) ReplaceCareers(ctx context.Context, careers []CareerRow) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, 0, len(careers))
	for i, c := range careers {
		_, err = tx.Exec(ctx,
			`INSERT INTO careers (id, position, data)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO UPDATE SET position = $2, data = $3, updated_at = NOW()`,
			c.ID, i, []byte(c.Data),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert career %s: %w", c.ID, err)
		}
		ids = append(ids, c.ID)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM careers WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("failed to prune careers: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit careers: %w", err)
	}
	return nil
}
