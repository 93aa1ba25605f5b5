// Package catalog loads and validates the career catalog consumed by the
// matching engine.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/schemas"
	"github.com/jonathan/career-explorer/internal/types"
	"go.uber.org/zap"
)

//go:embed careers.json
var defaultCareers []byte

var errDuplicateID = errors.New("duplicate career id")

// Catalog is an immutable snapshot of valid careers
type Catalog struct {
	careers  []types.Career
	index    map[string]int
	rejected []matching.EntryError
}

// document is the wrapped on-disk form
type document struct {
	Version string            `json:"version,omitempty"`
	Careers []json.RawMessage `json:"careers"`
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the embedded sample catalog. It panics if the embedded
// file is invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse("embedded", defaultCareers, nil)
		if err != nil {
			panic(fmt.Sprintf("embedded career catalog is invalid: %v", err))
		}
		if len(c.rejected) > 0 {
			panic(fmt.Sprintf("embedded career catalog has malformed entries: %v", &c.rejected[0]))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads a catalog from a JSON file
func LoadFile(path string, logger *zap.Logger) (*Catalog, error) {
	if path == "" {
		return nil, &LoadError{Source: path, Message: "catalog path is empty"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read catalog file", Cause: err}
	}
	return Parse(path, data, logger)
}

// Parse decodes a catalog document. The document may be a bare array of
// careers or an object with a "careers" array. The document shape is
// checked against the catalog schema; individual malformed careers are
// rejected without failing the whole catalog.
func Parse(source string, data []byte, logger *zap.Logger) (*Catalog, error) {
	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, &LoadError{Source: source, Message: "catalog does not match schema", Cause: err}
	}

	raw, err := SplitEntries(data)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "failed to parse catalog JSON", Cause: err}
	}

	careers := make([]types.Career, len(raw))
	decodeErrs := make(map[int]error)
	for i, entry := range raw {
		if err := json.Unmarshal(entry, &careers[i]); err != nil {
			decodeErrs[i] = err
		}
	}

	return build(careers, decodeErrs, logger), nil
}

// SplitEntries returns the raw career entries of a bare array or wrapped
// catalog document
func SplitEntries(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Careers, nil
}

// FromCareers validates careers and keeps the valid ones in order. Invalid
// and duplicate entries are recorded in Rejected.
func FromCareers(careers []types.Career, logger *zap.Logger) *Catalog {
	return build(careers, nil, logger)
}

func build(careers []types.Career, decodeErrs map[int]error, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Catalog{
		careers:  make([]types.Career, 0, len(careers)),
		index:    make(map[string]int, len(careers)),
		rejected: []matching.EntryError{},
	}

	for i := range careers {
		career := careers[i]

		err := decodeErrs[i]
		if err == nil {
			err = career.Validate()
		}
		if err == nil {
			if _, dup := c.index[career.ID]; dup {
				err = errDuplicateID
			}
		}
		if err != nil {
			cause := &matching.CareerValidationError{CareerID: career.ID, Cause: err}
			c.rejected = append(c.rejected, matching.EntryError{
				Index:    i,
				CareerID: career.ID,
				Reason:   cause.Error(),
				Err:      cause,
			})
			logger.Warn("rejecting catalog entry",
				zap.String("career_id", career.ID),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}

		c.index[career.ID] = len(c.careers)
		c.careers = append(c.careers, career)
	}

	logger.Debug("catalog loaded",
		zap.Int("careers", len(c.careers)),
		zap.Int("rejected", len(c.rejected)))
	return c
}

// Careers returns a copy of the valid careers in catalog order
func (c *Catalog) Careers() []types.Career {
	out := make([]types.Career, len(c.careers))
	copy(out, c.careers)
	return out
}

// Len returns the number of valid careers
func (c *Catalog) Len() int { return len(c.careers) }

// Get looks up a career by id
func (c *Catalog) Get(id string) (types.Career, bool) {
	i, ok := c.index[id]
	if !ok {
		return types.Career{}, false
	}
	return c.careers[i], true
}

// Rejected returns the entries that failed validation
func (c *Catalog) Rejected() []matching.EntryError {
	out := make([]matching.EntryError, len(c.rejected))
	copy(out, c.rejected)
	return out
}

// MarshalJSON writes the valid careers in the wrapped document form
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Careers []types.Career `json:"careers"`
	}{Careers: c.careers})
}
