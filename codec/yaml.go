package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transitnet/transit"
)

// YAML reads and writes snapshots as YAML documents.
type YAML struct{}

// Format returns "yaml".
func (YAML) Format() string { return "yaml" }

// Decode parses one YAML document. An empty stream yields an empty snapshot.
func (YAML) Decode(r io.Reader) (transit.Snapshot, error) {
	var snap transit.Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil && !errors.Is(err, io.EOF) {
		return transit.Snapshot{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return snap, nil
}

// Encode writes snap with two-space indentation.
func (YAML) Encode(w io.Writer, snap transit.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}
