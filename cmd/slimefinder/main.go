// Command slimefinder searches a configured block region for maximal
// rectangles of slime chunks and reports them ranked by area then
// distance from the origin.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slimechunkfinder/internal/config"
	"slimechunkfinder/internal/coordinator"
	"slimechunkfinder/internal/diag"
	"slimechunkfinder/internal/report"
	"slimechunkfinder/internal/selfcheck"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "slimefinder: parse flags:", err)
		return 1
	}

	if ok, _ := fs.GetBool("selfcheck"); ok {
		failures := selfcheck.Run()
		for _, f := range failures {
			fmt.Fprintln(os.Stderr, "slimefinder: selfcheck FAILED:", f)
		}
		if len(failures) > 0 {
			return 1
		}
		fmt.Println("slimefinder: selfcheck OK")
		return 0
	}

	cfg, err := config.Load(fs, ".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "slimefinder: config:", err)
		return 1
	}

	rotLog := diag.NewRotatingFile(cfg.LogDir, cfg.StatsMaxSizeMB)
	defer rotLog.Close()
	logger := diag.NewLogger(cfg.LogLevel, rotLog)
	terminal := diag.NewTerminal(os.Stdout)
	snapshot := report.NewSnapshotter(cfg.StatsPath, cfg.StatsMaxSizeMB)

	coord := coordinator.New(cfg, logger, terminal, snapshot)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Warn("coordinator", "pause signal received, draining in-flight tiles", nil)
		coord.Pause()
	}()

	timer := logger.Start("coordinator", "search starting")
	coord.Run()
	timer.Finish("search finished", int64(coord.Results().Len()))
	terminal.Done()

	return 0
}
