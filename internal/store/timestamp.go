package store

import (
	"bytes"
	"fmt"
	"time"
)

// timestampLayout is UTC with fixed millisecond precision. The web
// client revives only strings of this exact shape back into dates, so
// encoding must not drop the fractional part the way RFC3339Nano does
// for whole seconds.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that round-trips through collection
// documents and backup files in the client's serialized form.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as UTC with millisecond precision.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `"`), nil
}

// UnmarshalJSON accepts the millisecond form as well as any RFC3339
// string, so documents written by other tooling still load.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("store: invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
