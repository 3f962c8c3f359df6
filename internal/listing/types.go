package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// ErrNotFound reports a lookup outside the stored range.
var ErrNotFound = errors.New("listing not found")

var jsonNull = []byte("null")

// Payload is an opaque JSON value accepted as-is from a request body.
type Payload json.RawMessage

// Listing is a payload held by the listing store.
type Listing = Payload

// ParsePayload turns a raw request body into a Payload. Bodies that are empty,
// not valid UTF-8 or not valid JSON become null instead of being rejected.
func ParsePayload(body []byte) Payload {
	trimmed := bytes.TrimSpace(body)
	// json.Valid accepts invalid UTF-8 inside strings.
	if len(trimmed) == 0 || !utf8.Valid(trimmed) || !json.Valid(trimmed) {
		return Payload(jsonNull)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return Payload(jsonNull)
	}
	return Payload(buf.Bytes())
}

// MarshalJSON emits the stored document unchanged.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return jsonNull, nil
	}
	return p, nil
}

// String returns the compact JSON text.
func (p Payload) String() string {
	if len(p) == 0 {
		return string(jsonNull)
	}
	return string(p)
}

// Clone returns a copy that shares no memory with p.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	return append(Payload(nil), p...)
}

// Record is a stored listing together with its position.
type Record struct {
	Index   int
	Listing Listing
}

// Store persists listings in creation order. Implementations must keep
// Create and Get consistent under concurrent use.
type Store interface {
	List(ctx context.Context) ([]Listing, error)
	Create(ctx context.Context, l Listing) (Record, error)
	Get(ctx context.Context, index int) (Listing, error)
	Len(ctx context.Context) (int, error)
}
