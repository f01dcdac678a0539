// Command transitnet manages a transport network and answers route queries.
//
// Usage:
//
//	transitnet [global flags] <command> [args]
//
// Run "transitnet help" for the command list. Global flags, the
// transitnet.toml file and TRANSITNET_ environment variables are described
// in package config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/transitnet/config"
	"github.com/katalvlaran/transitnet/logging"
)

// errUsage marks errors caused by bad arguments; run prints usage for them.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("transitnet", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	config.RegisterFlags(fs)
	fs.Usage = func() { printUsage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		printUsage(stderr, fs)
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stderr, "transitnet:", err)
		return 1
	}
	if err := logging.Setup(cfg.Log); err != nil {
		fmt.Fprintln(stderr, "transitnet:", err)
		return 1
	}
	defer logging.Sync()

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "help" {
		printUsage(stdout, fs)
		return 0
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "transitnet: unknown command %q\n", name)
		printUsage(stderr, fs)
		return 2
	}

	a, err := newApp(ctx, cfg, stdout)
	if err != nil {
		logging.Error("startup failed", "error", err)
		fmt.Fprintln(stderr, "transitnet:", err)
		return 1
	}
	defer a.close()

	if err := cmd.run(ctx, a, rest); err != nil {
		fmt.Fprintln(stderr, "transitnet:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "usage: transitnet %s %s\n", name, cmd.args)
			return 2
		}
		return 1
	}

	return 0
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "usage: transitnet [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	for _, name := range commandOrder {
		c := commands[name]
		fmt.Fprintf(w, "  %-13s %-40s %s\n", name, c.args, c.help)
	}
	fmt.Fprintln(w, "\nflags:")
	fmt.Fprint(w, fs.FlagUsages())
}
