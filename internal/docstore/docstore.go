// Package docstore stores JSON documents in named collections.
//
// Documents are addressed by a generated string id which is written into the
// stored body under the "id" key. Filters are equality maps; the "id" key
// matches the generated id, every other key matches a top-level body field.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Collections used by the service.
const (
	CollectionUser     = "user"
	CollectionSession  = "session"
	CollectionSyllabus = "syllabus"
)

// IDField is the filter and body key holding the generated document id.
const IDField = "id"

var (
	// ErrNotFound is returned by FindOne when nothing matches the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned by Insert when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate document")
)

// Filter is an equality match on top-level document fields.
type Filter map[string]any

// SortOrder is the direction of a Sort.
type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

// Sort orders FindMany results by a top-level field.
type Sort struct {
	Field string
	Order SortOrder
}

var fieldName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func (s *Sort) validate() error {
	if s == nil {
		return nil
	}
	if !fieldName.MatchString(s.Field) {
		return fmt.Errorf("invalid sort field %q", s.Field)
	}
	return nil
}

// uniqueKey describes a field that must be unique within a collection.
type uniqueKey struct {
	field    string
	foldCase bool
}

// uniqueKeys mirrors the unique indexes created by PostgresStore.EnsureSchema.
var uniqueKeys = map[string]uniqueKey{
	CollectionUser:    {field: "email", foldCase: true},
	CollectionSession: {field: "token"},
}

// encode marshals doc to a JSON object and stamps it with id.
func encode(doc any, id string) ([]byte, map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal document: %w", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	if body == nil {
		return nil, nil, errors.New("document is not a JSON object")
	}
	body[IDField] = id

	out, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal document: %w", err)
	}
	return out, body, nil
}

// decodeMany unmarshals a list of JSON bodies into dest, a pointer to a slice.
func decodeMany(bodies [][]byte, dest any) error {
	buf := make([]byte, 0, 2+len(bodies)*128)
	buf = append(buf, '[')
	for i, b := range bodies {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, b...)
	}
	buf = append(buf, ']')

	if err := json.Unmarshal(buf, dest); err != nil {
		return fmt.Errorf("decode documents: %w", err)
	}
	return nil
}

// splitFilter separates the id match from the body fields.
func splitFilter(filter Filter) (id string, hasID bool, fields map[string]any) {
	fields = make(map[string]any, len(filter))
	for k, v := range filter {
		if k == IDField {
			id, hasID = fmt.Sprint(v), true
			continue
		}
		fields[k] = v
	}
	return id, hasID, fields
}
