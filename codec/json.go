package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/transitnet/transit"
)

// JSON reads and writes snapshots as indented JSON.
type JSON struct{}

// Format returns "json".
func (JSON) Format() string { return "json" }

// Decode parses one JSON object.
func (JSON) Decode(r io.Reader) (transit.Snapshot, error) {
	var snap transit.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return transit.Snapshot{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return snap, nil
}

// Encode writes snap as indented JSON.
func (JSON) Encode(w io.Writer, snap transit.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
