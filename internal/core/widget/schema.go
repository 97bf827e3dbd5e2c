// Package widget persists the admin widgets state (calendar events, goals,
// profile) as versioned JSON blobs in a key/value store.
package widget

import (
	"encoding/json"
)

// Upgrader converts a payload written with the previous version into the
// next one.
type Upgrader func(raw json.RawMessage) (json.RawMessage, error)

// Schema describes a widget payload stored under a single key.
type Schema[T any] struct {
	Key     string
	Version int

	// Default returns the value used when nothing valid is stored
	Default func() T

	// Upgrades maps a version N to the function upgrading N payloads to N+1
	Upgrades map[int]Upgrader

	// Normalize repairs a decoded value, if set
	Normalize func(T) T
}

func (s Schema[T]) defaultValue() T {
	if s.Default == nil {
		var zero T
		return zero
	}

	return s.Default()
}

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// unwrap reads the stored payload. Payloads written before versioning was
// introduced are bare JSON documents and are read as version 0.
func unwrap(raw []byte) (int, json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		_, hasVersion := fields["version"]
		_, hasData := fields["data"]
		if hasVersion && hasData && len(fields) == 2 {
			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return 0, nil, err
			}
			return env.Version, env.Data, nil
		}
	}

	if !json.Valid(raw) {
		return 0, nil, errInvalidJSON
	}

	return 0, raw, nil
}

func wrap(version int, data any) ([]byte, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{Version: version, Data: rawData})
}
