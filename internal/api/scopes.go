package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowvars/flowvars/internal/journal"
	"github.com/flowvars/flowvars/internal/vars"
)

const maxBodySize = 1 << 20 // 1 MB

// resolveRequest is the JSON body for POST /v1/resolve.
type resolveRequest struct {
	Mode        string `json:"mode"`
	CustomID    string `json:"custom_id"`
	WorkflowID  string `json:"workflow_id"`
	ExecutionID string `json:"execution_id"`
}

type resolveResponse struct {
	ScopeID string `json:"scope_id"`
}

// writeRequest is the JSON body for PUT/POST on a scope's records.
type writeRequest struct {
	Fields []vars.Field `json:"fields"`
}

type recordsResponse struct {
	ScopeID string      `json:"scope_id"`
	Records vars.Record `json:"records"`
}

type writeResponse struct {
	ScopeID string      `json:"scope_id"`
	Record  vars.Object `json:"record"`
}

type historyResponse struct {
	ScopeID string          `json:"scope_id"`
	Entries []journal.Entry `json:"entries"`
}

func (s *Server) handleResolveScope(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// The core resolver falls through unknown modes; the HTTP surface
	// rejects them so callers notice typos.
	if err := vars.ValidateScopeMode(req.Mode); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scopeID := vars.ResolveScope(vars.ScopeMode(req.Mode), req.CustomID, req.WorkflowID, req.ExecutionID)
	s.writeJSON(w, http.StatusOK, resolveResponse{ScopeID: scopeID})
}

func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	scopeID := chi.URLParam(r, "scopeID")

	// Missing and corrupt records both read as empty - a 200 with an
	// empty array, never a 404.
	records := s.store.Get(scopeID)
	operationsTotal.WithLabelValues(journal.OpGet).Inc()
	s.recordJournal(r, journal.OpGet, scopeID, nil)

	s.writeJSON(w, http.StatusOK, recordsResponse{ScopeID: scopeID, Records: records})
}

func (s *Server) handleSetRecord(w http.ResponseWriter, r *http.Request) {
	scopeID := chi.URLParam(r, "scopeID")

	fields, ok := s.decodeWriteBody(w, r)
	if !ok {
		return
	}

	obj, err := s.store.Set(scopeID, fields)
	if err != nil {
		s.logger.Error("set record", "scope_id", scopeID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to write record")
		return
	}
	operationsTotal.WithLabelValues(journal.OpSet).Inc()
	s.recordJournal(r, journal.OpSet, scopeID, fields)

	s.writeJSON(w, http.StatusOK, writeResponse{ScopeID: scopeID, Record: obj})
}

func (s *Server) handleAppendRecord(w http.ResponseWriter, r *http.Request) {
	scopeID := chi.URLParam(r, "scopeID")

	fields, ok := s.decodeWriteBody(w, r)
	if !ok {
		return
	}

	obj, err := s.store.Append(scopeID, fields)
	if err != nil {
		s.logger.Error("append record", "scope_id", scopeID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to write record")
		return
	}
	operationsTotal.WithLabelValues(journal.OpAppend).Inc()
	s.recordJournal(r, journal.OpAppend, scopeID, fields)

	// Only the newly appended element comes back, not the full record.
	s.writeJSON(w, http.StatusOK, writeResponse{ScopeID: scopeID, Record: obj})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	scopeID := chi.URLParam(r, "scopeID")

	if s.journal == nil {
		s.writeError(w, http.StatusNotFound, "journaling is disabled")
		return
	}

	entries, err := s.journal.ReadScope(r.Context(), scopeID)
	if err != nil {
		s.logger.Error("read history", "scope_id", scopeID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}

	s.writeJSON(w, http.StatusOK, historyResponse{ScopeID: scopeID, Entries: entries})
}

// decodeWriteBody parses the fields body for set/append handlers.
func (s *Server) decodeWriteBody(w http.ResponseWriter, r *http.Request) ([]vars.Field, bool) {
	var req writeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return req.Fields, true
}

// recordJournal appends to the operation journal, best-effort. A journal
// failure is logged and swallowed so it never fails the workflow step it
// was recording.
func (s *Server) recordJournal(r *http.Request, op, scopeID string, fields []vars.Field) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(r.Context(), op, scopeID, fields); err != nil {
		s.logger.Warn("journal write failed", "op", op, "scope_id", scopeID, "error", err)
	}
}
