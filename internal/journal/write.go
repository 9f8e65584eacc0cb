package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowvars/flowvars/internal/vars"
)

// Op names for journal entries.
const (
	OpGet    = "get"
	OpSet    = "set"
	OpAppend = "append"
)

// Entry is one journaled operation.
type Entry struct {
	Seq        int64        `json:"seq"`
	Op         string       `json:"op"`
	ScopeID    string       `json:"scope_id"`
	Fields     []vars.Field `json:"fields"`
	RecordedAt time.Time    `json:"recorded_at"`
}

// Record appends one operation to the journal.
//
// The field triples are serialized as JSON in invocation order. Get
// operations journal an empty field list.
func (j *Journal) Record(ctx context.Context, op, scopeID string, fields []vars.Field) error {
	if fields == nil {
		fields = []vars.Field{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("record operation: marshal fields: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO operations (op, scope_id, fields, recorded_at)
		VALUES (?, ?, ?, ?)
	`,
		op,
		scopeID,
		string(fieldsJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record operation: %w", err)
	}

	return nil
}
