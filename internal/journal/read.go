package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ReadScope returns all journaled operations for a scope identifier,
// ordered by seq ASC for deterministic replay.
//
// Returns an empty slice (not nil) if no entries exist for the scope.
func (j *Journal) ReadScope(ctx context.Context, scopeID string) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, op, scope_id, fields, recorded_at
		FROM operations
		WHERE scope_id = ?
		ORDER BY seq ASC
	`, scopeID)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ReadAll returns every journaled operation, ordered by seq ASC.
func (j *Journal) ReadAll(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, op, scope_id, fields, recorded_at
		FROM operations
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			fieldsJSON string
			recordedAt string
		)
		if err := rows.Scan(&e.Seq, &e.Op, &e.ScopeID, &fieldsJSON, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}

		if err := json.Unmarshal([]byte(fieldsJSON), &e.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields for seq %d: %w", e.Seq, err)
		}

		ts, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at for seq %d: %w", e.Seq, err)
		}
		e.RecordedAt = ts

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}

	// Return empty slice instead of nil
	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}
