package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/transitnet/codec"
	"github.com/katalvlaran/transitnet/config"
	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/logging"
	"github.com/katalvlaran/transitnet/repository/sqlite"
	"github.com/katalvlaran/transitnet/server"
	"github.com/katalvlaran/transitnet/transit"
	"github.com/katalvlaran/transitnet/watcher"
)

type command struct {
	args string
	help string
	run  func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"list":         {"[stops|routes|schedules|table]", "print the network", cmdList},
	"add-stop":     {"NAME X Y", "add a stop", cmdAddStop},
	"add-route":    {"NAME STOP,STOP,... [--color r;g;b] [--weight W]", "add a route", cmdAddRoute},
	"add-schedule": {"ROUTE HH:MM", "add a departure", cmdAddSchedule},
	"connect":      {"FROM TO WEIGHT", "connect two stops directly", cmdConnect},
	"remove":       {"stop|route|schedule ID", "remove a record", cmdRemove},
	"plan":         {"FROM TO [--kind K|all]", "find a route between two stops", cmdPlan},
	"sort":         {"name|id", "reorder the stop list", cmdSort},
	"times":        {"", "print the all-pairs travel time table", cmdTimes},
	"backbone":     {"", "print the cheapest links keeping the network connected", cmdBackbone},
	"resilience":   {"FROM TO", "count trips sharing no segment and list the weak links", cmdResilience},
	"export":       {"FILE", "write the network to FILE", cmdExport},
	"import":       {"FILE", "replace the network with FILE", cmdImport},
	"seed":         {"", "replace the network with the built-in one", cmdSeed},
	"generate":     {"N P [--seed S]", "replace the network with a random one", cmdGenerate},
	"snapshots":    {"[list|delete ID|restore ID]", "manage sqlite snapshots", cmdSnapshots},
	"serve":        {"", "serve the HTTP API", cmdServe},
}

var commandOrder = []string{
	"list", "add-stop", "add-route", "add-schedule", "connect", "remove", "plan",
	"sort", "times", "backbone", "resilience", "export", "import", "seed", "generate", "snapshots", "serve",
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func wantArgs(args []string, n int) error {
	if len(args) != n {
		return usageError("want %d arguments, got %d", n, len(args))
	}

	return nil
}

func atoi(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageError("%s must be an integer, got %q", what, s)
	}

	return v, nil
}

func newFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	return nil
}

func cmdList(_ context.Context, a *app, args []string) error {
	what := "all"
	if len(args) > 1 {
		return usageError("at most one section")
	}
	if len(args) == 1 {
		what = args[0]
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	show := func(section string) bool { return what == "all" || what == section }
	known := false
	if show("stops") {
		known = true
		fmt.Fprintln(tw, "ID\tSTOP\tX\tY")
		for _, s := range a.net.Stops() {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", s.ID, s.Name, s.X, s.Y)
		}
		fmt.Fprintln(tw)
	}
	if show("routes") {
		known = true
		fmt.Fprintln(tw, "ID\tROUTE\tCOLOR\tSTOPS")
		for _, r := range a.net.Routes() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Color, joinInts(r.Stops))
		}
		fmt.Fprintln(tw)
	}
	if show("schedules") {
		known = true
		fmt.Fprintln(tw, "ID\tROUTE\tTIME")
		for _, s := range a.net.Schedules() {
			fmt.Fprintf(tw, "%d\t%d\t%s\n", s.ID, s.RouteID, s.Time)
		}
		fmt.Fprintln(tw)
	}
	if show("table") {
		known = true
		fmt.Fprintln(tw, "ID\tROUTE\tSTART\tEND\tTIMES")
		for _, row := range a.net.RouteTable() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.ID, row.Name, row.Start, row.End, strings.Join(row.Times, " "))
		}
	}
	if !known {
		return usageError("unknown section %q", what)
	}

	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ",")
}

func cmdAddStop(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 3); err != nil {
		return err
	}
	x, err := atoi(args[1], "X")
	if err != nil {
		return err
	}
	y, err := atoi(args[2], "Y")
	if err != nil {
		return err
	}
	s, err := a.net.AddStop(args[0], x, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "added stop", s)

	return a.save(ctx, "add stop")
}

func cmdAddRoute(ctx context.Context, a *app, args []string) error {
	fs := newFlags("add-route")
	colorFlag := fs.String("color", "0;0;0", "route colour r;g;b")
	weight := fs.Int64("weight", -1, "travel time between consecutive stops")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 2); err != nil {
		return err
	}
	color, err := transit.ParseColor(*colorFlag)
	if err != nil {
		return usageError("%v", err)
	}
	var stops []int
	for _, f := range strings.Split(fs.Arg(1), ",") {
		id, err := atoi(strings.TrimSpace(f), "stop id")
		if err != nil {
			return err
		}
		stops = append(stops, id)
	}

	var r transit.Route
	if fs.Changed("weight") {
		r, err = a.net.AddRouteWeighted(fs.Arg(0), color, stops, *weight)
	} else {
		r, err = a.net.AddRoute(fs.Arg(0), color, stops)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "added route", r)

	return a.save(ctx, "add route")
}

func cmdAddSchedule(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 2); err != nil {
		return err
	}
	routeID, err := atoi(args[0], "ROUTE")
	if err != nil {
		return err
	}
	s, err := a.net.AddSchedule(routeID, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "added schedule", s)

	return a.save(ctx, "add schedule")
}

func cmdConnect(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 3); err != nil {
		return err
	}
	from, err := atoi(args[0], "FROM")
	if err != nil {
		return err
	}
	to, err := atoi(args[1], "TO")
	if err != nil {
		return err
	}
	w, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return usageError("WEIGHT must be an integer, got %q", args[2])
	}
	if !a.net.Connect(from, to, w) {
		return fmt.Errorf("cannot connect %d and %d: stops must exist, differ, and the weight must be non-negative", from, to)
	}
	fmt.Fprintf(a.out, "connected %s and %s\n", a.net.StopName(from), a.net.StopName(to))

	return a.save(ctx, "connect")
}

func cmdRemove(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 2); err != nil {
		return err
	}
	id, err := atoi(args[1], "ID")
	if err != nil {
		return err
	}
	var ok bool
	switch args[0] {
	case "stop":
		ok = a.net.RemoveStop(id)
	case "route":
		ok = a.net.RemoveRoute(id)
	case "schedule":
		ok = a.net.RemoveSchedule(id)
	default:
		return usageError("unknown record type %q", args[0])
	}
	if !ok {
		return fmt.Errorf("%s %d not found", args[0], id)
	}
	fmt.Fprintf(a.out, "removed %s %d\n", args[0], id)

	return a.save(ctx, "remove "+args[0])
}

func cmdPlan(ctx context.Context, a *app, args []string) error {
	fs := newFlags("plan")
	kindFlag := fs.String("kind", string(transit.Shortest), "shortest, longest, established, fewest or all")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 2); err != nil {
		return err
	}
	from, err := atoi(fs.Arg(0), "FROM")
	if err != nil {
		return err
	}
	to, err := atoi(fs.Arg(1), "TO")
	if err != nil {
		return err
	}

	kinds := transit.PlanKinds
	if *kindFlag != "all" {
		k, err := transit.ParsePlanKind(*kindFlag)
		if err != nil {
			return usageError("%v", err)
		}
		kinds = []transit.PlanKind{k}
	}

	fmt.Fprintf(a.out, "%s -> %s\n", a.net.StopName(from), a.net.StopName(to))
	for _, k := range kinds {
		p, err := a.net.Plan(ctx, k, from, to)
		if err != nil && !errors.Is(err, dfs.ErrSearchAborted) {
			return err
		}
		line := p.String()
		if p.Partial {
			line += " [search cut short, best found]"
		}
		fmt.Fprintf(a.out, "  %-11s %s\n", k, line)
	}

	return nil
}

func cmdSort(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	if err := a.net.SortStops(args[0]); err != nil {
		return usageError("%v", err)
	}
	fmt.Fprintln(a.out, "stops sorted by", strings.ToLower(args[0]))

	return a.save(ctx, "sort "+strings.ToLower(args[0]))
}

func cmdTimes(_ context.Context, a *app, args []string) error {
	if err := wantArgs(args, 0); err != nil {
		return err
	}
	tbl, err := a.net.TravelTimes()
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, tbl.String())
	if from, to, d, ok := tbl.Diameter(); ok {
		fmt.Fprintf(a.out, "longest shortest trip: %s -> %s (%d min)\n", a.net.StopName(from), a.net.StopName(to), d)
	}

	return nil
}

func cmdBackbone(_ context.Context, a *app, args []string) error {
	if err := wantArgs(args, 0); err != nil {
		return err
	}
	b, err := a.net.Backbone()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tMIN")
	for _, e := range b.Edges {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", a.net.StopName(e.From), a.net.StopName(e.To), e.Weight)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d links, %d min, %d components\n", len(b.Edges), b.Weight, b.Components)

	return nil
}

func cmdResilience(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 2); err != nil {
		return err
	}
	from, err := atoi(args[0], "FROM")
	if err != nil {
		return err
	}
	to, err := atoi(args[1], "TO")
	if err != nil {
		return err
	}
	r, err := a.net.Resilience(ctx, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s -> %s: %d independent trips\n", a.net.StopName(from), a.net.StopName(to), r.Paths)
	for _, e := range r.Cut {
		fmt.Fprintf(a.out, "  closing %s - %s cuts a trip\n", a.net.StopName(e.From), a.net.StopName(e.To))
	}

	return nil
}

func cmdExport(_ context.Context, a *app, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	if err := codec.SaveFile(args[0], a.net.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "exported to", args[0])

	return nil
}

func cmdImport(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	snap, err := codec.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := a.replace(snap); err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	fmt.Fprintf(a.out, "imported %d stops, %d routes from %s\n", len(snap.Stops), len(snap.Routes), args[0])

	return a.save(ctx, "import")
}

func cmdSeed(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 0); err != nil {
		return err
	}
	if err := a.net.Seed(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "default network loaded")

	return a.save(ctx, "seed")
}

func cmdGenerate(ctx context.Context, a *app, args []string) error {
	fs := newFlags("generate")
	seed := fs.Int64("seed", 1, "random seed")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 2); err != nil {
		return err
	}
	size, err := atoi(fs.Arg(0), "N")
	if err != nil {
		return err
	}
	p, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return usageError("P must be a probability, got %q", fs.Arg(1))
	}
	n, err := transit.Generate(size, p, *seed, a.networkOptions()...)
	if err != nil {
		return err
	}
	a.net = n
	st := n.Stats()
	fmt.Fprintf(a.out, "generated %d stops, %d connections\n", st.Stops, st.Edges)

	return a.save(ctx, fmt.Sprintf("generate %d %g seed %d", size, p, *seed))
}

func cmdSnapshots(ctx context.Context, a *app, args []string) error {
	repo, ok := a.store.(*sqlite.Repository)
	if !ok {
		return fmt.Errorf("snapshots need --store %s", config.StoreSQLite)
	}
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		infos, err := repo.List(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tSTOPS\tROUTES\tLABEL")
		for _, in := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", in.ID, in.CreatedAt.Format("2006-01-02 15:04:05"), in.Stops, in.Routes, in.Label)
		}

		return tw.Flush()
	case "delete":
		if err := wantArgs(args[1:], 1); err != nil {
			return err
		}
		if err := repo.Delete(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "deleted", args[1])

		return nil
	case "restore":
		if err := wantArgs(args[1:], 1); err != nil {
			return err
		}
		snap, err := repo.Get(ctx, args[1])
		if err != nil {
			return err
		}
		if err := a.replace(snap); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "restored", args[1])

		return a.save(ctx, "restore "+args[1])
	default:
		return usageError("unknown snapshots action %q", args[0])
	}
}

func cmdServe(ctx context.Context, a *app, args []string) error {
	if err := wantArgs(args, 0); err != nil {
		return err
	}
	srv := server.New(a.net,
		server.WithStore(a.store),
		server.WithLogger(logging.L()),
		server.WithNetworkOptions(a.networkOptions()...),
	)

	if a.cfg.Server.Watch {
		if a.cfg.Store != config.StoreFile {
			return fmt.Errorf("--watch needs --store %s", config.StoreFile)
		}
		w, err := watcher.New(a.cfg.Data, watcher.WithLogger(logging.L()))
		if err != nil {
			return err
		}
		go func() {
			_ = w.Run(ctx, func(path string) {
				snap, err := codec.LoadFile(path)
				if err != nil {
					logging.Warn("reload skipped", "path", path, "error", err)
					return
				}
				if _, err := srv.Reload(snap); err != nil {
					logging.Warn("reload rejected", "path", path, "error", err)
				}
			})
		}()
	}

	return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
}
