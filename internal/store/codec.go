package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ytget/video-tracker/internal/model"
)

// JSON field names of a persisted record
const (
	FieldStatus = "status"
	FieldNotes  = "notes"
)

var errNotObject = errors.New("top-level value is not a JSON object")

// Decode parses persistence file contents.
//
// An object value becomes a record when its key is one of knownFiles or it
// has a "status" or "notes" field. A record missing "status" or "notes" takes
// the default for that field, a status that is not a known string becomes
// not_started, and any other field is kept in the record's Extra. Every other
// top-level value is kept verbatim in the state's Extra.
func Decode(data []byte, knownFiles []string) (*model.TrackerState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode tracker file: %w", err)
	}
	if raw == nil {
		return nil, errNotObject
	}

	known := make(map[string]struct{}, len(knownFiles))
	for _, name := range knownFiles {
		known[name] = struct{}{}
	}

	state := model.NewTrackerState(nil)
	for key, value := range raw {
		fields, isObj := objectFields(value)
		_, isKnown := known[key]
		if isObj && (isKnown || looksLikeRecord(fields)) {
			rec := decodeRecord(key, fields)
			state.Records[key] = &rec
			continue
		}

		compact, err := compactJSON(value)
		if err != nil {
			return nil, fmt.Errorf("compact value of %q: %w", key, err)
		}
		state.Extra[key] = compact
	}
	return state, nil
}

func decodeRecord(name string, fields map[string]json.RawMessage) model.VideoRecord {
	rec := model.DefaultRecord()

	for field, value := range fields {
		switch field {
		case FieldStatus:
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				log.Printf("Status of %s is not a string, using %s", name, model.StatusNotStarted)
			} else if status, err := model.ParseStatus(s); err != nil {
				log.Printf("Record for %s: %v, using %s", name, err, model.StatusNotStarted)
			} else {
				rec.Status = status
			}

		case FieldNotes:
			var notes string
			if err := json.Unmarshal(value, &notes); err != nil {
				log.Printf("Notes of %s are not a string, using empty notes", name)
			} else {
				rec.Notes = notes
			}

		default:
			compact, err := compactJSON(value)
			if err != nil {
				log.Printf("Dropping field %s of %s: %v", field, name, err)
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]json.RawMessage)
			}
			rec.Extra[field] = compact
		}
	}

	return rec
}

// objectFields splits a JSON object into its fields
func objectFields(value json.RawMessage) (map[string]json.RawMessage, bool) {
	if !isObject(value) {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(value, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func looksLikeRecord(fields map[string]json.RawMessage) bool {
	_, hasStatus := fields[FieldStatus]
	_, hasNotes := fields[FieldNotes]
	return hasStatus || hasNotes
}

func compactJSON(value json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func isObject(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Encode serializes the full state, records and extra values alike, as an
// indented JSON object. encoding/json sorts map keys, so equal states always
// encode to identical bytes.
func Encode(state *model.TrackerState) ([]byte, error) {
	out := make(map[string]any, len(state.Records)+len(state.Extra))
	for key, value := range state.Extra {
		out[key] = value
	}
	for name, rec := range state.Records {
		out[name] = rec
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode tracker file: %w", err)
	}
	return buf.Bytes(), nil
}
