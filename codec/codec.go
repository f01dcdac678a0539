package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/transitnet/transit"
)

// Sentinel errors.
var (
	// ErrSyntax indicates a malformed line in the text format.
	ErrSyntax = errors.New("codec: syntax error")

	// ErrUnsupportedField indicates a value that cannot be written losslessly,
	// such as a name containing the field separator.
	ErrUnsupportedField = errors.New("codec: field cannot be encoded")

	// ErrUnknownFormat indicates a file extension without a codec.
	ErrUnknownFormat = errors.New("codec: unknown format")
)

// Codec converts snapshots to and from a byte stream.
type Codec interface {
	Decode(r io.Reader) (transit.Snapshot, error)
	Encode(w io.Writer, snap transit.Snapshot) error
	Format() string
}

// ForPath returns the codec for path's extension: .txt and .dat select the
// text format, .yaml and .yml YAML, .json JSON.
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".dat":
		return Text{}, nil
	case ".yaml", ".yml":
		return YAML{}, nil
	case ".json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile decodes the snapshot stored at path.
func LoadFile(path string) (transit.Snapshot, error) {
	c, err := ForPath(path)
	if err != nil {
		return transit.Snapshot{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return transit.Snapshot{}, fmt.Errorf("codec: open: %w", err)
	}
	defer f.Close()

	snap, err := c.Decode(f)
	if err != nil {
		return transit.Snapshot{}, fmt.Errorf("codec: %s: %w", path, err)
	}

	return snap, nil
}

// SaveFile encodes snap to path. The data is written to a temporary file in
// the same directory and renamed over path, so readers never see a partial file.
func SaveFile(path string, snap transit.Snapshot) (err error) {
	c, err := ForPath(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("codec: create: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = c.Encode(tmp, snap); err != nil {
		return fmt.Errorf("codec: %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("codec: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("codec: rename: %w", err)
	}

	return nil
}
