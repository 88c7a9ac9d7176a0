// Package app wires the du collector, parser, and report renderer into a
// single run. It owns the run's preconditions and turns every failure into
// an error for the caller to map onto an exit status.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/large-farva/duim/internal/config"
	"github.com/large-farva/duim/internal/du"
	"github.com/large-farva/duim/internal/report"
)

// ErrNotDirectory is returned when the target is missing or not a directory.
var ErrNotDirectory = errors.New("is not a valid directory")

// Options holds everything the App needs from the caller.
type Options struct {
	Logger *log.Logger
	Cfg    config.Config
	Target string
	Stdout io.Writer

	// Input, when set, names a file of saved du output to report on instead
	// of running du. "-" reads standard input.
	Input string
	Stdin io.Reader

	// Collector overrides the du invocation built from Cfg.
	Collector du.Collector
}

// App is a single report run.
type App struct {
	log       *log.Logger
	cfg       config.Config
	target    string
	stdout    io.Writer
	input     string
	stdin     io.Reader
	collector du.Collector
}

// New creates an App from opts, filling in defaults for anything unset.
func New(opts Options) *App {
	a := &App{
		log:       opts.Logger,
		cfg:       opts.Cfg,
		target:    opts.Target,
		stdout:    opts.Stdout,
		input:     opts.Input,
		stdin:     opts.Stdin,
		collector: opts.Collector,
	}
	if a.log == nil {
		a.log = log.New(io.Discard, "", 0)
	}
	if a.target == "" {
		a.target = "."
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stdin == nil {
		a.stdin = os.Stdin
	}
	return a
}

// Run checks the target, collects du output, and renders the report.
func (a *App) Run(ctx context.Context) error {
	collector, err := a.resolveCollector()
	if err != nil {
		return err
	}

	if a.input == "" {
		if fi, err := os.Stat(a.target); err != nil || !fi.IsDir() {
			return fmt.Errorf("'%s' %w", a.target, ErrNotDirectory)
		}
	}

	start := time.Now()
	lines, err := collector.Collect(ctx, a.target)
	if err != nil {
		return fmt.Errorf("collect %s: %w", a.target, err)
	}
	a.debugf("collected %d lines in %s", len(lines), time.Since(start).Round(time.Millisecond))

	usage, skipped := du.ParseLines(lines)
	if skipped > 0 {
		a.debugf("skipped %d malformed du lines", skipped)
	}
	if a.input == "" {
		if fs := filesystemUsage(a.target); fs != nil {
			a.debugf("filesystem %s: %s used of %s (%.1f%%)", fs.Path,
				report.HumanSize(int64(fs.Used)), report.HumanSize(int64(fs.Total)), fs.UsedPercent)
		}
	}

	r := report.Renderer{
		Width:         a.cfg.Report.Length,
		HumanReadable: a.cfg.Report.HumanReadable,
		Fill:          a.cfg.Report.Fill,
		Empty:         a.cfg.Report.Empty,
		Color:         report.ColorEnabled(a.cfg.Report.Color, a.stdout),
	}
	if err := r.Render(a.stdout, usage, a.target); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func (a *App) resolveCollector() (du.Collector, error) {
	if a.collector != nil {
		return a.collector, nil
	}
	if a.input != "" {
		return a.readInput()
	}
	return du.ExecCollector{
		Command: a.cfg.Du.Command,
		Args:    a.cfg.Du.Args,
		Timeout: time.Duration(a.cfg.Du.TimeoutSeconds) * time.Second,
	}, nil
}

func (a *App) readInput() (du.Collector, error) {
	var r io.Reader = a.stdin
	if a.input != "-" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	lines, err := du.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return du.StaticCollector{Lines: lines}, nil
}

func (a *App) debugf(format string, args ...any) {
	if a.cfg.Logging.Level != "debug" {
		return
	}
	a.log.Printf("debug: "+format, args...)
}
