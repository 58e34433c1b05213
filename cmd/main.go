package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/matscore/internal/adapters/render"
	"github.com/okian/matscore/internal/adapters/store"
	app "github.com/okian/matscore/internal/app"
	"github.com/okian/matscore/internal/config"
	"github.com/okian/matscore/internal/domain/report"
	"github.com/okian/matscore/pkg/logger"
	"github.com/okian/matscore/pkg/metrics"
)

// Metrics server timeout constants.
const (
	metricsReadHeaderTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		matchID    = flag.String("match", "", "Match ID to evaluate (default: first available)")
		resultFile = flag.String("result", "", "Specific result file to evaluate")
		list       = flag.Bool("list", false, "List available matches")
		tolerance  = flag.Int("tolerance", -1, "Clock tolerance in seconds (default: from config)")
		matchesDir = flag.String("matches-dir", "", "Matches directory (default: from config)")
		asJSON     = flag.Bool("json", false, "Emit the full metrics document as JSON")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Flags override config.
	if *matchesDir != "" {
		cfg.MatchesDir = *matchesDir
	}
	if *tolerance >= 0 {
		cfg.ClockToleranceSeconds = *tolerance
	}

	// Optional Prometheus endpoint for long batch runs.
	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metrics.Handler(),
			ReadHeaderTimeout: metricsReadHeaderTimeout,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn(ctx, "metrics server failed", logger.Error(err))
			}
		}()
		defer srv.Close()
	}

	svc := app.New(
		app.WithStore(store.New(store.WithRoot(cfg.MatchesDir))),
		app.WithClockTolerance(cfg.ClockToleranceSeconds),
		app.WithFieldClockTolerance(cfg.FieldClockToleranceSeconds),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithLogger(log),
	)

	if *list {
		return listMatches(ctx, svc)
	}

	id := *matchID
	if id == "" {
		matches, err := svc.Matches(ctx)
		if err != nil {
			os.Stderr.WriteString("failed to list matches: " + err.Error() + "\n")
			return 1
		}
		if len(matches) == 0 {
			os.Stderr.WriteString("No matches found. Use -match to specify a match ID.\n")
			return 1
		}
		id = matches[0].ID
		fmt.Printf("Using match: %s\n", id)
	}

	var reports []report.Report
	if *resultFile != "" {
		rep, err := svc.EvaluateFile(ctx, id, *resultFile)
		if err != nil {
			os.Stderr.WriteString("evaluation failed: " + err.Error() + "\n")
			return 1
		}
		reports = []report.Report{rep}
	} else {
		reports, err = svc.EvaluateMatch(ctx, id)
		if err != nil {
			os.Stderr.WriteString("evaluation failed: " + err.Error() + "\n")
			return 1
		}
	}

	if *asJSON {
		if err := render.JSON(os.Stdout, reports); err != nil {
			os.Stderr.WriteString("failed to encode reports: " + err.Error() + "\n")
			return 1
		}
		return 0
	}

	for _, rep := range reports {
		render.Report(os.Stdout, rep)
	}
	if len(reports) > 1 {
		render.Summary(os.Stdout, reports)
	}
	return 0
}

func listMatches(ctx context.Context, svc *app.Service) int {
	matches, err := svc.Matches(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to list matches: " + err.Error() + "\n")
		return 1
	}
	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return 0
	}
	fmt.Println("Available matches:")
	for _, m := range matches {
		fmt.Printf("  %s: %s\n", m.ID, m.Title)
	}
	return 0
}
