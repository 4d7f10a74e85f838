// Package audit provides an append-only record of path normalizations.
// Each normalization call can emit one JSONL event describing the input,
// the output, and whether the configured filer root matched.
package audit

import (
	"encoding/json"
	"time"
)

// ISO8601Format is the time format used for audit event timestamps.
const ISO8601Format = time.RFC3339

// Event describes a single normalization.
type Event struct {
	Timestamp time.Time
	Zone      string // name of the zone whose mapping was applied
	Input     string // raw path as received
	Output    string // normalized path
	Matched   bool   // whether the filer root occurred in the input
	Tested    bool   // whether test mode listed the output
	ListError string // listing failure text, empty on success or when not tested
}

// eventJSON is the internal representation for JSON marshaling.
// Optional fields use pointers so omitempty works.
type eventJSON struct {
	Timestamp string  `json:"timestamp"`
	Zone      string  `json:"zone,omitempty"`
	Input     string  `json:"input"`
	Output    string  `json:"output"`
	Matched   bool    `json:"matched"`
	Tested    bool    `json:"tested,omitempty"`
	ListError *string `json:"listError,omitempty"`
}

// MarshalJSON implements json.Marshaler for Event.
// Timestamps are serialized in ISO 8601 format.
func (e Event) MarshalJSON() ([]byte, error) {
	ej := eventJSON{
		Timestamp: e.Timestamp.Format(ISO8601Format),
		Zone:      e.Zone,
		Input:     e.Input,
		Output:    e.Output,
		Matched:   e.Matched,
		Tested:    e.Tested,
	}
	if e.ListError != "" {
		le := e.ListError
		ej.ListError = &le
	}
	return json.Marshal(ej)
}

// UnmarshalJSON implements json.Unmarshaler for Event.
func (e *Event) UnmarshalJSON(data []byte) error {
	var ej eventJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}

	ts, err := time.Parse(ISO8601Format, ej.Timestamp)
	if err != nil {
		return err
	}

	e.Timestamp = ts
	e.Zone = ej.Zone
	e.Input = ej.Input
	e.Output = ej.Output
	e.Matched = ej.Matched
	e.Tested = ej.Tested
	if ej.ListError != nil {
		e.ListError = *ej.ListError
	} else {
		e.ListError = ""
	}
	return nil
}
