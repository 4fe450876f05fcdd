// JSON persistence for the inventory ledger. The on-disk form is a single
// UTF-8 JSON object mapping item names to integer quantities, written with
// 2-space indentation in the ledger's insertion order.
package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dukaforge/stockroom/pkg/types"
)

// ErrRootNotObject reports a loaded document whose root is valid JSON but
// not an object.
var ErrRootNotObject = errors.New("JSON root is not an object")

// pair is one key/value entry of the persisted object, in document order.
type pair struct {
	key   string
	value any
}

// Load replaces the ledger with the contents of the JSON file at path.
//
// A missing file or malformed JSON resets the ledger to empty and returns
// an error. A document whose root is not an object, or any other read
// failure, leaves the ledger untouched and returns an error. Entries
// whose value cannot be coerced to an integer are dropped with a warning;
// the rest replace the ledger wholesale, preserving document order.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.reset()
			s.log.Warn("load: file not found, starting with empty inventory", "path", path)
			return fmt.Errorf("load %s: %w", path, err)
		}
		s.log.Error("load: read failed", "path", path, "error", err)
		return fmt.Errorf("load %s: %w", path, err)
	}

	pairs, err := decodeObject(data)
	if err != nil {
		if errors.Is(err, ErrRootNotObject) {
			s.log.Error("load: JSON root is not an object", "path", path)
			return fmt.Errorf("load %s: %w", path, err)
		}
		s.reset()
		s.log.Error("load: JSON decode failed", "path", path, "error", err)
		return fmt.Errorf("load %s: %w", path, err)
	}

	items := make(map[string]int64, len(pairs))
	var order []string
	for _, p := range pairs {
		qty, cerr := types.CoerceValue(p.value)
		if cerr != nil {
			s.log.Warn("load: ignoring invalid quantity", "item", p.key, "value", p.value)
			continue
		}
		if _, ok := items[p.key]; !ok {
			order = append(order, p.key)
		}
		items[p.key] = qty
	}

	s.items = items
	s.order = order
	s.log.Info("loaded inventory", "count", len(items), "path", path)
	return nil
}

// Save writes the ledger to path as a pretty-printed JSON object. On
// failure the previous file contents are best-effort only; no atomicity
// is promised.
func (s *Store) Save(path string) error {
	data, err := s.encode()
	if err != nil {
		s.log.Error("save: encode failed", "path", path, "error", err)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.log.Error("save: write failed", "path", path, "error", err)
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.log.Info("saved inventory", "count", len(s.items), "path", path)
	return nil
}

// decodeObject parses data as a JSON document and returns the root
// object's entries in document order. Returns ErrRootNotObject when the
// document is valid JSON with a non-object root.
func decodeObject(data []byte) ([]pair, error) {
	if !json.Valid(data) {
		return nil, errors.New("invalid JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrRootNotObject
	}

	var pairs []pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// encode renders the ledger as an indented JSON object in insertion order.
func (s *Store) encode() ([]byte, error) {
	if len(s.order) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, name := range s.order {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "  %s: %d", key, s.items[name])
		if i < len(s.order)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
