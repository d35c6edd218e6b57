package espn

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Document is a decoded JSON value with null-safe navigation. Every accessor returns a
// zero value when the node is missing or has an unexpected type, so mapping code never
// branches on upstream schema drift.
type Document struct {
	v any
}

// Decode reads a single JSON value from r, keeping numbers as json.Number.
func Decode(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Document{}, err
	}
	return Document{v: v}, nil
}

// NewDocument wraps an already-decoded value.
func NewDocument(v any) Document {
	return Document{v: v}
}

// Exists reports whether the node holds a non-null value.
func (d Document) Exists() bool {
	return d.v != nil
}

// Get returns the named field of an object node.
func (d Document) Get(key string) Document {
	obj, ok := d.v.(map[string]any)
	if !ok {
		return Document{}
	}
	return Document{v: obj[key]}
}

// Path walks nested object fields.
func (d Document) Path(keys ...string) Document {
	cur := d
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// Index returns the i-th element of an array node.
func (d Document) Index(i int) Document {
	arr, ok := d.v.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return Document{}
	}
	return Document{v: arr[i]}
}

// List returns the elements of an array node, or nil.
func (d Document) List() []Document {
	arr, ok := d.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Document, len(arr))
	for i, v := range arr {
		out[i] = Document{v: v}
	}
	return out
}

// IsObject reports whether the node is a JSON object.
func (d Document) IsObject() bool {
	_, ok := d.v.(map[string]any)
	return ok
}

// Has reports whether an object node carries the key, even with a null value.
func (d Document) Has(key string) bool {
	obj, ok := d.v.(map[string]any)
	if !ok {
		return false
	}
	_, present := obj[key]
	return present
}

// String returns string and numeric scalars as text; anything else yields "".
func (d Document) String() string {
	switch v := d.v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Int returns an integer scalar. Integral strings are accepted.
func (d Document) Int() (int, bool) {
	switch v := d.v.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Bool returns true only for a JSON true or the string "true".
func (d Document) Bool() bool {
	switch v := d.v.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
