// Duim (du improved) runs "du -d 1" on a directory and shows each child's
// share of the total as a percentage and a bar chart.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/large-farva/duim/internal/app"
	"github.com/large-farva/duim/internal/config"
)

// Exit statuses.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("duim", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(stderr, flags) }

	var (
		length     = flags.IntP("length", "l", 20, "Specify the length of the graph. Default is 20.")
		human      = flags.BoolP("human-readable", "H", false, "print sizes in human readable format (e.g. 1K 23M 2G)")
		configPath = flags.StringP("config", "c", "", "Path to config TOML")
		duPath     = flags.String("du", "", "du binary to run (default from config, else \"du\")")
		input      = flags.String("input", "", "Report on saved du output from this file (\"-\" for stdin) instead of running du")
		color      = flags.String("color", "", "Colour the bars: auto, always, never")
		verbose    = flags.BoolP("verbose", "v", false, "Log debug details to stderr")
		version    = flags.Bool("version", false, "Print version and exit")
	)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "error:", err)
		flags.Usage()
		return exitUsage
	}

	if *version {
		fmt.Fprintln(stdout, app.VersionString())
		return exitOK
	}

	if flags.NArg() > 1 {
		fmt.Fprintf(stderr, "error: expected at most one target, got %d\n", flags.NArg())
		flags.Usage()
		return exitUsage
	}
	target := "."
	if flags.NArg() == 1 {
		target = flags.Arg(0)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: config load failed: %v\n", err)
			return exitError
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file.
	if flags.Changed("length") {
		cfg.Report.Length = *length
	}
	if flags.Changed("human-readable") {
		cfg.Report.HumanReadable = *human
	}
	if flags.Changed("du") {
		cfg.Du.Command = *duPath
	}
	if flags.Changed("color") {
		cfg.Report.Color = *color
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		flags.Usage()
		return exitUsage
	}

	logger := log.New(stderr, "duim: ", 0)

	a := app.New(app.Options{
		Logger: logger,
		Cfg:    cfg,
		Target: target,
		Stdout: stdout,
		Input:  *input,
		Stdin:  stdin,
	})
	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	return exitOK
}

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprint(w, `
  duim - DU Improved: see disk usage with bar charts

  USAGE
    duim [-l LENGTH] [-H] [flags] [TARGET]

  TARGET defaults to the current directory. Each immediate subdirectory is
  shown with its percentage of the total, a bar, and its size.

  FLAGS
`)
	fmt.Fprint(w, flags.FlagUsagesWrapped(76))
	fmt.Fprint(w, `
  EXAMPLES
    duim
    duim -H /var/log
    duim -l 40 --color never ~/src
    du -d 1 /srv > srv.du && duim --input srv.du /srv

`)
}
