package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process backend with the same filter semantics as
// Postgres. It backs unit tests and `store.driver: memory` local runs.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]RawRecord
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]RawRecord)}
}

func (m *Memory) Insert(ctx context.Context, collection string, doc []byte) (string, error) {
	id := uuid.New().String()
	stored := make([]byte, len(doc))
	copy(stored, doc)

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], RawRecord{ID: id, Doc: stored})
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) Query(ctx context.Context, collection string, f Filter, limit int) ([]RawRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []RawRecord
	for _, rec := range m.collections[collection] {
		ok, err := matches(rec.Doc, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func matches(doc []byte, f Filter) (bool, error) {
	if len(f.Conds) == 0 {
		return true, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false, err
	}
	for _, c := range f.Conds {
		raw, present := fields[c.Field]
		if !present {
			return false, nil
		}
		switch c.Op {
		case OpEq:
			var s string
			if err := json.Unmarshal(raw, &s); err != nil || s != c.Value {
				return false, nil
			}
		case OpMatch:
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return false, nil
			}
			if !strings.Contains(strings.ToLower(s), strings.ToLower(c.Value)) {
				return false, nil
			}
		case OpHas:
			var members []string
			if err := json.Unmarshal(raw, &members); err != nil {
				return false, nil
			}
			found := false
			for _, mem := range members {
				if mem == c.Value {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		}
	}
	return true, nil
}

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.collections))
	for name := range m.collections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
