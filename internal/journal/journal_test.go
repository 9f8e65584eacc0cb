package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowvars/flowvars/internal/vars"
)

func TestOpen_CreatesNewJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer j.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("journal file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	for i := 0; i < 3; i++ {
		j, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		j.Close()
	}
}

func TestClose_NilDB(t *testing.T) {
	j := &Journal{db: nil}
	if err := j.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestRecordAndReadScope(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer j.Close()

	ctx := context.Background()
	fields := []vars.Field{{Name: "a", Type: vars.FieldTypeString, Value: "1"}}

	if err := j.Record(ctx, OpSet, "exec-1", fields); err != nil {
		t.Fatalf("Record(set) failed: %v", err)
	}
	if err := j.Record(ctx, OpAppend, "exec-1", fields); err != nil {
		t.Fatalf("Record(append) failed: %v", err)
	}
	if err := j.Record(ctx, OpGet, "other-scope", nil); err != nil {
		t.Fatalf("Record(get) failed: %v", err)
	}

	entries, err := j.ReadScope(ctx, "exec-1")
	if err != nil {
		t.Fatalf("ReadScope() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Op != OpSet || entries[1].Op != OpAppend {
		t.Errorf("entries out of order: %v, %v", entries[0].Op, entries[1].Op)
	}
	if entries[0].Seq >= entries[1].Seq {
		t.Errorf("seq not increasing: %d, %d", entries[0].Seq, entries[1].Seq)
	}
	if len(entries[0].Fields) != 1 || entries[0].Fields[0].Name != "a" {
		t.Errorf("fields did not round-trip: %+v", entries[0].Fields)
	}
}

func TestReadScope_EmptyReturnsEmptySlice(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer j.Close()

	entries, err := j.ReadScope(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("ReadScope() failed: %v", err)
	}
	if entries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestReadAll_OrderedBySeq(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer j.Close()

	ctx := context.Background()
	scopes := []string{"b", "a", "c"}
	for _, scope := range scopes {
		if err := j.Record(ctx, OpGet, scope, nil); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	entries, err := j.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, scope := range scopes {
		if entries[i].ScopeID != scope {
			t.Errorf("entry %d: expected scope %q, got %q", i, scope, entries[i].ScopeID)
		}
	}
}
