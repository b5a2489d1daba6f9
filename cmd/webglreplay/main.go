// SPDX-License-Identifier: Unlicense OR MIT

// Command webglreplay replays YAML scripts of WebGL calls against the
// headless backend and reports failed expectations and protocol
// violations.
//
//	webglreplay --script testdata/clear.yaml --dump
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"gioui.org/webgl"
	"gioui.org/webgl/backend/headless"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML backend configuration (limits, extensions, API)",
	}
	scriptFlag = &cli.StringFlag{
		Name:     "script",
		Usage:    "YAML call script to replay",
		Required: true,
	}
	dumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "dump every command sent to the backend",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error)",
		Value: "warn",
	}
)

func main() {
	app := &cli.App{
		Name:   "webglreplay",
		Usage:  "replay WebGL call scripts against the headless backend",
		Flags:  []cli.Flag{configFlag, scriptFlag, dumpFlag, logLevelFlag},
		Action: replay,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func replay(ctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ctx.String(logLevelFlag.Name))); err != nil {
		return fmt.Errorf("invalid --%s: %w", logLevelFlag.Name, err)
	}
	webgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := headless.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = headless.LoadConfig(path); err != nil {
			return err
		}
	}
	script, err := LoadScript(ctx.String(scriptFlag.Name))
	if err != nil {
		return err
	}
	var dump io.Writer
	if ctx.Bool(dumpFlag.Name) {
		dump = ctx.App.Writer
	}
	rep, err := run(ctx.Context, cfg, script, dump)
	if err != nil {
		return err
	}
	printReport(ctx.App.Writer, rep)
	if rep.Failed() {
		return cli.Exit("", 1)
	}
	return nil
}

// run serves a backend for cfg and replays s on it.
func run(ctx context.Context, cfg headless.Config, s *Script, dump io.Writer) (*Report, error) {
	b, err := headless.New(cfg)
	if err != nil {
		return nil, err
	}
	g, gctx := errgroup.WithContext(ctx)
	serveCtx, stop := context.WithCancel(gctx)
	defer stop()
	g.Go(func() error {
		if err := b.Serve(serveCtx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	ch := b.Channel()
	if dump != nil {
		t := newTap(ch, dump)
		ch = t.Channel()
		g.Go(t.run)
	}
	var rep *Report
	g.Go(func() error {
		defer stop()
		var err error
		rep, err = s.Run(ch)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	rep.Stats = b.Stats()
	rep.Violations = b.Violations()
	return rep, nil
}

func printReport(w io.Writer, rep *Report) {
	for _, f := range rep.Failures {
		fmt.Fprintf(w, "FAIL %v\n", f)
	}
	for _, v := range rep.Violations {
		fmt.Fprintf(w, "VIOLATION %v\n", v)
	}
	fmt.Fprintf(w, "%d calls, %d commands, %d draws, %d failures, %d violations\n",
		rep.Calls, rep.Stats.Commands, rep.Stats.Draws, len(rep.Failures), len(rep.Violations))
}
