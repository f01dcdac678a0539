package transit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stop is a named place on the map. X and Y are map coordinates used by clients for drawing.
type Stop struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
}

// Key returns the stop id.
func (s Stop) Key() int { return s.ID }

func (s Stop) String() string {
	return fmt.Sprintf("#%d %s (%d,%d)", s.ID, s.Name, s.X, s.Y)
}

// Color is an RGB colour used to draw a route.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Named route colours.
var (
	Black  = Color{0, 0, 0}
	Red    = Color{255, 0, 0}
	Orange = Color{255, 200, 0}
	Green  = Color{0, 255, 0}
)

// String renders the colour as "r;g;b".
func (c Color) String() string {
	return fmt.Sprintf("%d;%d;%d", c.R, c.G, c.B)
}

// ParseColor reads "r;g;b" with components in 0..255.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("transit: color %q: want r;g;b", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("transit: color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}

	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Route is an ordered list of stops served by one line.
type Route struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color Color  `json:"color" yaml:"color"`
	Stops []int  `json:"stops" yaml:"stops"`
}

// Key returns the route id.
func (r Route) Key() int { return r.ID }

func (r Route) String() string {
	return fmt.Sprintf("#%d %s %v", r.ID, r.Name, r.Stops)
}

// clone copies the stop slice so callers cannot alias network state.
func (r Route) clone() Route {
	r.Stops = append([]int(nil), r.Stops...)

	return r
}

// Schedule is one departure of a route at a time of day.
type Schedule struct {
	ID      int    `json:"id" yaml:"id"`
	RouteID int    `json:"route_id" yaml:"route_id"`
	Time    string `json:"time" yaml:"time"`
}

// Key returns the schedule id.
func (s Schedule) Key() int { return s.ID }

func (s Schedule) String() string {
	return fmt.Sprintf("#%d route %d at %s", s.ID, s.RouteID, s.Time)
}

// ParseTime validates a 24h "HH:MM" departure time and returns it normalised
// to two-digit fields ("8:05" becomes "08:05").
func ParseTime(s string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return t.Format("15:04"), nil
}

// RouteRow is one line of the route table: the route, its terminal stop
// names and its departure times in chronological order.
type RouteRow struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Times []string `json:"times"`
}

// validName rejects empty names and names that would break line-oriented formats.
func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return name, nil
}
