// Command floatsimd runs the Pre-float circuit simulator as a daemon:
// the session ticks under the sampling engine, the feed disturbance
// drives dynamic mode, and the HTTP API exposes observation and control.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AUDRM-4824/Pre-float/internal/api"
	"github.com/AUDRM-4824/Pre-float/internal/config"
	"github.com/AUDRM-4824/Pre-float/internal/engine"
	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

func main() {
	cfg := config.Load()

	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()
	slog.SetDefault(logger)

	slog.Info("Pre-float — carbon reverse-flotation circuit simulator")

	// ── Operating targets ─────────────────────────────────────────────
	targets := plant.DefaultTargets()
	if cfg.TargetsFile != "" {
		var err error
		targets, err = plant.LoadTargets(cfg.TargetsFile)
		if err != nil {
			slog.Error("failed to load targets", "file", cfg.TargetsFile, "error", err)
			os.Exit(1)
		}
		slog.Info("targets loaded", "file", cfg.TargetsFile)
	}

	// ── Session ───────────────────────────────────────────────────────
	session := plant.NewSession(cfg.Seed, targets)
	if cfg.AutoMode {
		if err := session.SetMode(0, plant.ModeAuto); err != nil {
			slog.Error("failed to enable auto mode", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("session ready",
		"run_id", session.RunID,
		"mode", session.Mode(),
		"setpoints", session.Inputs(),
	)

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.New()
	eng.Interval = cfg.TickInterval

	eng.OnTick = func(tick uint64) {
		session.Step(tick)
	}
	eng.OnHour = func(tick uint64) {
		ev := session.Current()
		slog.Info("hourly sample",
			"sim_time", engine.SimTime(tick),
			"recovery", fmt.Sprintf("%.1f", ev.Recovery),
			"conc_grade", fmt.Sprintf("%.1f", ev.ConcCarbon),
			"tail_grade", fmt.Sprintf("%.2f", ev.TailCarbon),
			"zn_loss", fmt.Sprintf("%.2f", ev.ZnLoss),
		)
	}
	eng.OnShift = func(tick uint64) {
		st := session.EndShift()
		slog.Info("shift summary",
			"sim_time", engine.SimTime(tick),
			"samples", st.Samples,
			"avg_recovery", fmt.Sprintf("%.1f", st.AvgRecovery),
			"avg_conc_grade", fmt.Sprintf("%.1f", st.AvgConcGrade),
			"avg_zn_loss", fmt.Sprintf("%.2f", st.AvgZnLoss),
			"excursions", st.Excursions,
		)
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	if cfg.AdminKey == "" {
		slog.Warn("FLOATSIM_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		Session:  session,
		Eng:      eng,
		Port:     cfg.Port,
		AdminKey: cfg.AdminKey,
		RelayKey: cfg.RelayKey,
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("Pre-float circuit is live: 260 t feed, run %s.\n", session.RunID)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.Port)
	fmt.Println("Starting sampling... (Ctrl+C to stop)")

	eng.Run()

	fmt.Println("Simulator stopped.")
}
