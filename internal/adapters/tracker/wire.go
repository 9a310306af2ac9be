package tracker

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// flexString accepts a JSON string, number or null. Tracker ids and priorities arrive as either.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// wireTime accepts RFC 3339 timestamps and leaves anything else as the zero time.
type wireTime time.Time

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.DateOnly}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*w = wireTime{}
		return nil //nolint:nilerr // Unparseable timestamps are dropped
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*w = wireTime(t.UTC())
			return nil
		}
	}
	*w = wireTime{}
	return nil
}

func (w wireTime) Time() time.Time {
	return time.Time(w)
}
