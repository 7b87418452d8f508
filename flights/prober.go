package flights

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrShapeNotFound reports that no flight record array could be located in a
// fetched document. It is matched with errors.Is.
var ErrShapeNotFound = errors.New("no flight record array found")

// ShapeError carries the offending document so operators can inspect what
// the upstream API actually returned.
type ShapeError struct {
	Doc json.RawMessage
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("no flight record array found in %d-byte document", len(e.Doc))
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeNotFound
}

type member struct {
	key   string
	value json.RawMessage
}

type candidate struct {
	path  string
	items []json.RawMessage
}

// LocateRecordArray finds the array of per-flight records inside a document
// of unknown shape. The upstream API has no stable envelope: responses have
// been observed as a bare array, an object wrapping an array under varying
// key names, and an object nesting the wrapper one level deeper.
//
// Resolution order, first match wins:
//  1. the document itself, when it is an array
//  2. the one top-level array whose first element carries a flight-like key
//  3. the first top-level non-empty array in document order
//  4. the first non-empty array one object level deeper
//
// The returned path ("$", "flights", "data.arrivals", ...) names where the
// array was found and is meant for diagnostic logging only.
func LocateRecordArray(doc json.RawMessage) ([]json.RawMessage, string, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return nil, "", &ShapeError{Doc: doc}
	}

	if trimmed[0] == '[' {
		items, ok := decodeArray(trimmed)
		if !ok {
			return nil, "", &ShapeError{Doc: doc}
		}
		return items, "$", nil
	}

	if trimmed[0] != '{' {
		return nil, "", &ShapeError{Doc: doc}
	}

	members, ok := decodeMembers(trimmed)
	if !ok {
		return nil, "", &ShapeError{Doc: doc}
	}

	var candidates []candidate
	for _, m := range members {
		if items, ok := nonEmptyArray(m.value); ok {
			candidates = append(candidates, candidate{path: m.key, items: items})
		}
	}

	// Key-sniffing beats mere array-ness, but only when it is unambiguous.
	var qualified []candidate
	for _, c := range candidates {
		if looksLikeFlightRecord(c.items[0]) {
			qualified = append(qualified, c)
		}
	}
	if len(qualified) == 1 {
		return qualified[0].items, qualified[0].path, nil
	}
	if len(candidates) > 0 {
		return candidates[0].items, candidates[0].path, nil
	}

	// One more level down: {"data": {"arrivals": [...]}}.
	for _, m := range members {
		v := bytes.TrimSpace(m.value)
		if len(v) == 0 || v[0] != '{' {
			continue
		}
		nested, ok := decodeMembers(v)
		if !ok {
			continue
		}
		for _, n := range nested {
			if items, ok := nonEmptyArray(n.value); ok {
				return items, m.key + "." + n.key, nil
			}
		}
	}

	return nil, "", &ShapeError{Doc: doc}
}

func decodeArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func nonEmptyArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || v[0] != '[' {
		return nil, false
	}
	items, ok := decodeArray(v)
	if !ok || len(items) == 0 {
		return nil, false
	}
	return items, true
}

// decodeMembers walks an object token by token so that properties keep their
// document order. Unmarshaling into a Go map would randomize the order and
// with it the fallback choice between sibling arrays.
func decodeMembers(raw json.RawMessage) ([]member, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var members []member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		members = append(members, member{key: key, value: value})
	}
	return members, true
}

// looksLikeFlightRecord reports whether the element is an object carrying at
// least one alias of flight number, airline name, or origin.
func looksLikeFlightRecord(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	for _, key := range flightIdentifyingKeys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}
