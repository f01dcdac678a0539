// Package codec reads and writes transit.Snapshot values.
//
// Three formats are supported:
//
//   - Text: the line-oriented compatibility format with STOPS, ROUTES,
//     SCHEDULES and EDGES sections.
//   - YAML (gopkg.in/yaml.v3).
//   - JSON.
//
// ForPath picks a codec from a file extension; LoadFile and SaveFile wrap it
// with file handling. A missing file surfaces as an error wrapping
// os.ErrNotExist so callers can fall back to the default network.
package codec
