package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/transit"
)

// Section headers of the text format.
const (
	sectionStops     = "STOPS"
	sectionRoutes    = "ROUTES"
	sectionSchedules = "SCHEDULES"
	sectionEdges     = "EDGES"

	routeStopsPrefix = "STOPS:"
)

// Text is the line-oriented format:
//
//	STOPS
//	id,name,x,y
//	ROUTES
//	id,name,r;g;b,STOPS:1;2;3;
//	SCHEDULES
//	id,routeId,HH:MM
//	EDGES
//	from,to,weight
//
// Blank lines are skipped. The decoder accepts every edge in either
// direction and in duplicate; the encoder writes each undirected edge once.
type Text struct{}

// Format returns "text".
func (Text) Format() string { return "text" }

// Decode parses the text format.
func (Text) Decode(r io.Reader) (transit.Snapshot, error) {
	var (
		snap    transit.Snapshot
		section string
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case sectionStops, sectionRoutes, sectionSchedules, sectionEdges:
			section = line
			continue
		}

		var err error
		switch section {
		case sectionStops:
			err = decodeStop(line, &snap)
		case sectionRoutes:
			err = decodeRoute(line, &snap)
		case sectionSchedules:
			err = decodeSchedule(line, &snap)
		case sectionEdges:
			err = decodeEdge(line, &snap)
		default:
			err = fmt.Errorf("%w: record outside a section", ErrSyntax)
		}
		if err != nil {
			return transit.Snapshot{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return transit.Snapshot{}, fmt.Errorf("read: %w", err)
	}

	return snap, nil
}

func fields(line string, n int) ([]string, error) {
	parts := strings.Split(line, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d fields, got %d in %q", ErrSyntax, n, len(parts), line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts, nil
}

func atoi(field, what string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrSyntax, what, field)
	}

	return v, nil
}

func decodeStop(line string, snap *transit.Snapshot) error {
	f, err := fields(line, 4)
	if err != nil {
		return err
	}
	var s transit.Stop
	if s.ID, err = atoi(f[0], "stop id"); err != nil {
		return err
	}
	s.Name = f[1]
	if s.X, err = atoi(f[2], "x"); err != nil {
		return err
	}
	if s.Y, err = atoi(f[3], "y"); err != nil {
		return err
	}
	snap.Stops = append(snap.Stops, s)

	return nil
}

func decodeRoute(line string, snap *transit.Snapshot) error {
	f, err := fields(line, 4)
	if err != nil {
		return err
	}
	var r transit.Route
	if r.ID, err = atoi(f[0], "route id"); err != nil {
		return err
	}
	r.Name = f[1]
	if r.Color, err = transit.ParseColor(f[2]); err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	list, ok := strings.CutPrefix(f[3], routeStopsPrefix)
	if !ok {
		return fmt.Errorf("%w: route stops must start with %s", ErrSyntax, routeStopsPrefix)
	}
	for _, sid := range strings.Split(list, ";") {
		if sid == "" {
			continue
		}
		id, err := atoi(sid, "route stop")
		if err != nil {
			return err
		}
		r.Stops = append(r.Stops, id)
	}
	snap.Routes = append(snap.Routes, r)

	return nil
}

func decodeSchedule(line string, snap *transit.Snapshot) error {
	f, err := fields(line, 3)
	if err != nil {
		return err
	}
	var s transit.Schedule
	if s.ID, err = atoi(f[0], "schedule id"); err != nil {
		return err
	}
	if s.RouteID, err = atoi(f[1], "route id"); err != nil {
		return err
	}
	s.Time = f[2]
	snap.Schedules = append(snap.Schedules, s)

	return nil
}

func decodeEdge(line string, snap *transit.Snapshot) error {
	f, err := fields(line, 3)
	if err != nil {
		return err
	}
	var e core.Edge
	if e.From, err = atoi(f[0], "edge from"); err != nil {
		return err
	}
	if e.To, err = atoi(f[1], "edge to"); err != nil {
		return err
	}
	w, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: weight %q", ErrSyntax, f[2])
	}
	e.Weight = w
	snap.Edges = append(snap.Edges, e)

	return nil
}

// Encode writes snap in the text format.
func (Text) Encode(w io.Writer, snap transit.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, sectionStops)
	for _, s := range snap.Stops {
		if err := checkField(s.Name); err != nil {
			return fmt.Errorf("stop %d: %w", s.ID, err)
		}
		fmt.Fprintf(bw, "%d,%s,%d,%d\n", s.ID, s.Name, s.X, s.Y)
	}

	fmt.Fprintln(bw, sectionRoutes)
	for _, r := range snap.Routes {
		if err := checkField(r.Name); err != nil {
			return fmt.Errorf("route %d: %w", r.ID, err)
		}
		var sb strings.Builder
		for _, id := range r.Stops {
			sb.WriteString(strconv.Itoa(id))
			sb.WriteByte(';')
		}
		fmt.Fprintf(bw, "%d,%s,%s,%s%s\n", r.ID, r.Name, r.Color, routeStopsPrefix, sb.String())
	}

	fmt.Fprintln(bw, sectionSchedules)
	for _, s := range snap.Schedules {
		if err := checkField(s.Time); err != nil {
			return fmt.Errorf("schedule %d: %w", s.ID, err)
		}
		fmt.Fprintf(bw, "%d,%d,%s\n", s.ID, s.RouteID, s.Time)
	}

	fmt.Fprintln(bw, sectionEdges)
	for _, e := range snap.Edges {
		fmt.Fprintf(bw, "%d,%d,%d\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}

// checkField rejects values the line format cannot carry.
func checkField(v string) error {
	if strings.ContainsAny(v, ",\r\n") || strings.TrimSpace(v) != v {
		return fmt.Errorf("%w: %q", ErrUnsupportedField, v)
	}
	switch v {
	case sectionStops, sectionRoutes, sectionSchedules, sectionEdges:
		return fmt.Errorf("%w: %q is a section header", ErrUnsupportedField, v)
	}

	return nil
}
