package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryDoc struct {
	raw  []byte
	body map[string]any
}

// MemoryStore is an in-process Store. It is used when no database is
// configured and in tests. It enforces the same unique keys as PostgreSQL.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryDoc
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]memoryDoc)}
}

// Insert stores doc in collection and returns its generated id.
func (m *MemoryStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	id := uuid.NewString()
	raw, body, err := encode(doc, id)
	if err != nil {
		return "", err
	}
	// Normalise through JSON so comparisons see the same types as filters.
	body, err = normalize(body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if key, ok := uniqueKeys[collection]; ok {
		want, present := uniqueValue(body, key)
		if present {
			for _, d := range m.collections[collection] {
				if got, ok := uniqueValue(d.body, key); ok && got == want {
					return "", fmt.Errorf("%w: %s.%s", ErrDuplicate, collection, key.field)
				}
			}
		}
	}

	m.collections[collection] = append(m.collections[collection], memoryDoc{raw: raw, body: body})
	return id, nil
}

// FindOne decodes the first document matching filter into dest.
func (m *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter, dest any) error {
	matches, err := m.match(collection, filter)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return ErrNotFound
	}
	if err := json.Unmarshal(matches[0].raw, dest); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// FindMany decodes every document matching filter into dest, a pointer to a slice.
// Without an order, results come back in insertion order.
func (m *MemoryStore) FindMany(ctx context.Context, collection string, filter Filter, order *Sort, dest any) error {
	if err := order.validate(); err != nil {
		return err
	}
	matches, err := m.match(collection, filter)
	if err != nil {
		return err
	}

	if order != nil {
		// Ties keep insertion order in the direction of the sort, like the
		// created_at tie-break of PostgresStore.
		if order.Order == Descending {
			for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
				matches[i], matches[j] = matches[j], matches[i]
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			c := compareValues(matches[i].body[order.Field], matches[j].body[order.Field])
			if order.Order == Descending {
				return c > 0
			}
			return c < 0
		})
	}

	bodies := make([][]byte, len(matches))
	for i, d := range matches {
		bodies[i] = d.raw
	}
	return decodeMany(bodies, dest)
}

// DeleteMany removes every document matching filter and reports how many were removed.
func (m *MemoryStore) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.collections[collection]
	kept := docs[:0]
	var n int64
	for _, d := range docs {
		if matches(d.body, want) {
			n++
			continue
		}
		kept = append(kept, d)
	}
	m.collections[collection] = kept
	return n, nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Collections lists collection names that hold at least one document.
func (m *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Name returns "memory".
func (m *MemoryStore) Name() string {
	return "memory"
}

func (m *MemoryStore) match(collection string, filter Filter) ([]memoryDoc, error) {
	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []memoryDoc
	for _, d := range m.collections[collection] {
		if matches(d.body, want) {
			out = append(out, d)
		}
	}
	return out, nil
}

func matches(body, want map[string]any) bool {
	for k, v := range want {
		got, ok := body[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

func normalizeFilter(filter Filter) (map[string]any, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(filter))
	for k, v := range filter {
		if k == IDField {
			out[k] = fmt.Sprint(v)
			continue
		}
		out[k] = v
	}
	return normalize(out)
}

// normalize round-trips v through JSON so numbers become float64 and
// structs become maps, matching decoded document bodies.
func normalize(v map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal filter: %w", err)
	}
	return out, nil
}

func uniqueValue(body map[string]any, key uniqueKey) (string, bool) {
	v, ok := body[key.field].(string)
	if !ok {
		return "", false
	}
	if key.foldCase {
		v = strings.ToLower(v)
	}
	return v, true
}

// compareValues orders numbers numerically and everything else by its string form.
// Missing values sort first.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := a.(float64); ok {
		if fb, ok := b.(float64); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
