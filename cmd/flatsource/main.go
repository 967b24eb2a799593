// cmd/flatsource/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"flatsource/internal/core/domain"
	"flatsource/internal/core/usecases"
	"flatsource/internal/platform/config"
	"flatsource/internal/platform/errors"
	"flatsource/internal/platform/logx"
	"flatsource/internal/platform/ui"
)

var (
	// Set with -ldflags at build time
	version = "1.3.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// 1. Configuration (flags, env, optional YAML file)
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] %v\n", err)
		fmt.Fprintln(stderr, "Try: flatsource -h for help")
		return errors.ExitCode(err)
	}
	if cfg.PrintHelp {
		config.PrintHelp(stdout)
		return errors.ExitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(stdout, version)
		return errors.ExitOK
	}

	// 2. Shared logger
	logger := logx.NewWithWriter(stderr, logx.ParseLevel(os.Getenv(logx.EnvLevel)))
	if cfg.Verbose {
		logger.SetLevel(logx.LevelDebug)
	}
	logger.Debug("FlatSource starting",
		"version", version,
		"commit", commit,
		"date", date,
		"root", cfg.Root,
		"dest", cfg.Dest,
		"config", cfg.ConfigPath,
	)

	// 3. Presenter
	presenter := ui.NewWithWriter(cfg.UIMode(), stdout)
	defer func() {
		if err := presenter.Close(); err != nil {
			logger.Warn("failed to close presenter", "error", err.Error())
		}
	}()

	for _, w := range cfg.Warnings() {
		presenter.Warning(w)
	}

	// 4. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 5. Migration
	migrator, err := usecases.NewMigrator(usecases.MigratorOptions{
		Config:    cfg.ToRunConfig(),
		Presenter: presenter,
		Logger:    logger,
	})
	if err != nil {
		presenter.Error(describeError(err))
		return errors.ExitCode(err)
	}

	if _, err := migrator.Run(ctx); err != nil {
		presenter.Error(describeError(err))
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}

// describeError renders err for the operator.
func describeError(err error) string {
	var fileErr *domain.FileError
	if errors.As(err, &fileErr) {
		return fmt.Sprintf("Processing %s\nReason: %v", fileErr.Source, fileErr.Err)
	}
	if errors.IsCanceled(err) {
		return "Interrupted, files already written are kept."
	}
	return err.Error()
}

// rootContextWithSignals returns a context canceled on SIGINT or SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
