// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/transitnet/core"
)

// Table is an all-pairs travel-time table over the stops of a graph.
// Row i and column i both belong to IDs()[i].
type Table struct {
	ids   []int
	index map[int]int
	dist  *Dense
}

// FromGraph builds the adjacency distance matrix of g (0 on the diagonal,
// edge weight where adjacent, +Inf elsewhere) and closes it with FloydWarshall.
// An empty graph yields an empty Table.
func FromGraph(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	t := &Table{ids: ids, index: make(map[int]int, len(ids))}
	for i, id := range ids {
		t.index[id] = i
	}
	if len(ids) == 0 {
		return t, nil
	}

	d, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, err
	}
	d.Fill(math.Inf(1))
	for i := range ids {
		d.data[i*d.c+i] = 0
	}
	for _, e := range g.Edges() {
		i, j := t.index[e.From], t.index[e.To]
		w := float64(e.Weight)
		d.data[i*d.c+j] = w
		d.data[j*d.c+i] = w
	}
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}
	t.dist = d

	return t, nil
}

// IDs returns the stop ids in row order.
func (t *Table) IDs() []int { return append([]int(nil), t.ids...) }

// Len returns the number of stops in the table.
func (t *Table) Len() int { return len(t.ids) }

// Distance returns the shortest travel time from one stop to another.
// ok is false when either id is unknown or the stops are disconnected.
func (t *Table) Distance(from, to int) (int64, bool) {
	i, ok1 := t.index[from]
	j, ok2 := t.index[to]
	if !ok1 || !ok2 {
		return 0, false
	}
	v, _ := t.dist.At(i, j)
	if math.IsInf(v, 1) {
		return 0, false
	}

	return int64(v), true
}

// Row returns the distances from one stop to every stop in row order,
// with -1 for unreachable stops.
func (t *Table) Row(from int) ([]int64, error) {
	i, ok := t.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, from)
	}
	out := make([]int64, len(t.ids))
	for j := range t.ids {
		v, _ := t.dist.At(i, j)
		if math.IsInf(v, 1) {
			out[j] = -1
			continue
		}
		out[j] = int64(v)
	}

	return out, nil
}

// Diameter returns the largest finite distance in the table and its endpoints.
// ok is false for tables with fewer than two mutually reachable stops.
func (t *Table) Diameter() (from, to int, d int64, ok bool) {
	for i, a := range t.ids {
		for j := i + 1; j < len(t.ids); j++ {
			v, _ := t.dist.At(i, j)
			if math.IsInf(v, 1) {
				continue
			}
			if !ok || int64(v) > d {
				from, to, d, ok = a, t.ids[j], int64(v), true
			}
		}
	}

	return from, to, d, ok
}

// String renders a tab-separated grid with a header row of stop ids.
// Unreachable cells print as "-".
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("from\\to")
	for _, id := range t.ids {
		b.WriteString("\t" + strconv.Itoa(id))
	}
	b.WriteString("\n")
	for _, id := range t.ids {
		row, _ := t.Row(id)
		b.WriteString(strconv.Itoa(id))
		for _, v := range row {
			if v < 0 {
				b.WriteString("\t-")
				continue
			}
			b.WriteString("\t" + strconv.FormatInt(v, 10))
		}
		b.WriteString("\n")
	}

	return b.String()
}
