package codec_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/codec"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/transit"
)

func TestRoundTrip_DefaultNetwork(t *testing.T) {
	want := transit.DefaultSnapshot()
	for _, c := range []codec.Codec{codec.Text{}, codec.YAML{}, codec.JSON{}} {
		t.Run(c.Format(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, want))

			got, err := c.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			n, err := transit.FromSnapshot(got)
			require.NoError(t, err)
			assert.Equal(t, 18, n.Graph().EdgeCount())
		})
	}
}

func TestText_Layout(t *testing.T) {
	snap := transit.Snapshot{
		Stops:     []transit.Stop{{ID: 1, Name: "A", X: 10, Y: 20}, {ID: 2, Name: "B", X: 30, Y: 40}},
		Routes:    []transit.Route{{ID: 1, Name: "A-B", Color: transit.Orange, Stops: []int{1, 2}}},
		Schedules: []transit.Schedule{{ID: 1, RouteID: 1, Time: "08:00"}},
		Edges:     []core.Edge{{From: 1, To: 2, Weight: 5}},
	}
	var buf bytes.Buffer
	require.NoError(t, codec.Text{}.Encode(&buf, snap))

	assert.Equal(t, strings.Join([]string{
		"STOPS",
		"1,A,10,20",
		"2,B,30,40",
		"ROUTES",
		"1,A-B,255;200;0,STOPS:1;2;",
		"SCHEDULES",
		"1,1,08:00",
		"EDGES",
		"1,2,5",
		"",
	}, "\n"), buf.String())
}

func TestText_DecodeTolerant(t *testing.T) {
	in := `
STOPS
1,A,0,0

2,B,0,0
ROUTES
1,A-B,0;0;0,STOPS:1;2
EDGES
1,2,5
2,1,5
`
	snap, err := codec.Text{}.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, snap.Stops, 2)
	assert.Equal(t, []int{1, 2}, snap.Routes[0].Stops)
	assert.Len(t, snap.Edges, 2)

	// mirrored records collapse into one edge
	n, err := transit.FromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Graph().EdgeCount())
}

func TestText_DecodeErrors(t *testing.T) {
	cases := map[string]string{
		"outside section": "1,A,0,0\n",
		"short stop":      "STOPS\n1,A,0\n",
		"bad id":          "STOPS\nx,A,0,0\n",
		"bad color":       "ROUTES\n1,R,1;2,STOPS:1;2;\n",
		"missing prefix":  "ROUTES\n1,R,1;2;3,1;2;\n",
		"bad weight":      "EDGES\n1,2,heavy\n",
		"unknown section": "DEPOTS\n1,A\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Text{}.Decode(strings.NewReader(in))
			assert.ErrorIs(t, err, codec.ErrSyntax)
		})
	}
}

func TestText_EncodeRejectsSeparators(t *testing.T) {
	snap := transit.Snapshot{Stops: []transit.Stop{{ID: 1, Name: "Main, North"}}}
	err := codec.Text{}.Encode(&bytes.Buffer{}, snap)
	assert.ErrorIs(t, err, codec.ErrUnsupportedField)

	snap = transit.Snapshot{Routes: []transit.Route{{ID: 1, Name: "EDGES"}}}
	err = codec.Text{}.Encode(&bytes.Buffer{}, snap)
	assert.ErrorIs(t, err, codec.ErrUnsupportedField)
}

func TestForPath(t *testing.T) {
	for path, format := range map[string]string{
		"data.txt":     "text",
		"DATA.DAT":     "text",
		"net.yaml":     "yaml",
		"net.yml":      "yaml",
		"dir/net.json": "json",
	} {
		c, err := codec.ForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, format, c.Format(), path)
	}
	_, err := codec.ForPath("net.xml")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestLoadSaveFile(t *testing.T) {
	dir := t.TempDir()

	_, err := codec.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	want := transit.DefaultSnapshot()
	for _, name := range []string{"net.txt", "net.yaml", "net.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, codec.SaveFile(path, want))
		got, err := codec.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files left behind")
}
