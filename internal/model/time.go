package model

import (
	"bytes"
	"strings"
	"time"
)

// The backend serialises LocalDateTime values without a zone.
const localDateTime = "2006-01-02T15:04:05"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	localDateTime,
	"2006-01-02",
}

// Time is a timestamp that accepts the backend's zone-less format.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(localDateTime) + `"`), nil
}
