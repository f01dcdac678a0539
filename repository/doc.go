// Package repository defines where networks are persisted between runs.
//
// Two stores implement Store: file (a single snapshot file in any codec
// format) and sqlite (a history of snapshots in a SQLite database).
package repository
