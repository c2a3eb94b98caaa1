package storage

import (
	"context"
	"encoding/json"
)

// Area is one named key-value storage area, the equivalent of a browser
// extension's storage surface. Values are raw JSON; interpretation belongs
// to the caller. Two areas exist at runtime: the page-level area and the
// extension-level area, so session state can be mirrored across both.
type Area interface {
	// Get returns the values stored under keys. Absent keys are simply
	// missing from the result map, never an error.
	Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)

	// Set marshals each value to JSON and stores it under its key,
	// replacing any previous value.
	Set(ctx context.Context, pairs map[string]any) error

	// Remove deletes keys. Removing an absent key is a no-op.
	Remove(ctx context.Context, keys ...string) error
}

// GetJSON reads one key from area and unmarshals it into target. The boolean
// result reports whether the key was present; an absent key leaves target
// untouched.
func GetJSON(ctx context.Context, area Area, key string, target any) (bool, error) {
	values, err := area.Get(ctx, key)
	if err != nil {
		return false, err
	}

	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, err
	}
	return true, nil
}
