package vars

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the file-backed variable store. One scope identifier owns one
// JSON file at <root>/<scopeID>.json holding an array of flat objects.
//
// Store has no internal synchronization. The external workflow engine
// drives operations sequentially per step; concurrent executions sharing
// a scope are last-write-wins.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir. The directory is created
// lazily on the first write, not here.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's data root directory.
func (s *Store) Root() string {
	return s.root
}

// RecordPath returns the record file path for a scope identifier.
// An empty scope identifier selects the record at the empty name
// (".json" under the root).
func (s *Store) RecordPath(scopeID string) string {
	return filepath.Join(s.root, scopeID+".json")
}

// Get reads the record for a scope.
//
// A missing file and a file that fails to parse as an array of objects
// both read as an empty record (CP-1). Elements are returned in file
// order. Get never returns an error.
func (s *Store) Get(scopeID string) Record {
	return s.readRecord(scopeID)
}

// Set overwrites the scope's record with a one-element array holding the
// decoded form of fields, creating parent directories as needed. The
// decoded object is returned.
//
// The only error path is a filesystem write failure; decoding itself
// never fails (CP-2).
func (s *Store) Set(scopeID string, fields []Field) (Object, error) {
	obj := DecodeFields(fields)
	if err := s.writeRecord(scopeID, Record{obj}); err != nil {
		return nil, err
	}
	return obj, nil
}

// Append adds one decoded element to the scope's record. The existing
// record is read best-effort - missing or corrupt content counts as
// empty - and written back with the new element at the end.
//
// Only the newly appended object is returned, not the full record. The
// write carries the full history while the return value carries the
// latest element; that asymmetry is part of the contract.
func (s *Store) Append(scopeID string, fields []Field) (Object, error) {
	obj := DecodeFields(fields)
	record := append(s.readRecord(scopeID), obj)
	if err := s.writeRecord(scopeID, record); err != nil {
		return nil, err
	}
	return obj, nil
}

// readRecord is the shared best-effort read (CP-1).
func (s *Store) readRecord(scopeID string) Record {
	data, err := os.ReadFile(s.RecordPath(scopeID))
	if err != nil {
		return Record{}
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		// Corrupt record reads as empty, not as a failure.
		return Record{}
	}
	return record
}

// writeRecord persists the full record array for a scope.
// Record files are written indented so operators can inspect them.
func (s *Store) writeRecord(scopeID string, record Record) error {
	path := s.RecordPath(scopeID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record for scope %q: %w", scopeID, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write record for scope %q: %w", scopeID, err)
	}
	return nil
}
