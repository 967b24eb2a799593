// internal/core/usecases/migrator.go
package usecases

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"flatsource/internal/core/domain"
	"flatsource/internal/core/walker"
	"flatsource/internal/platform/errors"
	"flatsource/internal/platform/logx"
	"flatsource/internal/platform/ui"
	"flatsource/internal/platform/validator"
)

// Migrator copies every matching file of a tree into one flat directory,
// renaming extensions and prepending a provenance header.
type Migrator struct {
	cfg       domain.RunConfig
	mapping   domain.ExtensionMapping
	presenter ui.Presenter
	logger    logx.Logger
	clock     func() time.Time

	mu    sync.Mutex
	state domain.RunState
}

// MigratorOptions configures a Migrator.
type MigratorOptions struct {
	Config    domain.RunConfig
	Presenter ui.Presenter
	Logger    logx.Logger

	// Clock stamps headers and measures the run. Defaults to time.Now.
	Clock func() time.Time
}

// NewMigrator validates the run configuration and builds a Migrator.
// Configuration problems are reported as invalid input.
func NewMigrator(opts MigratorOptions) (*Migrator, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Invalid(err)
	}
	if _, err := walker.NewExclusionMatcher(opts.Config.Excludes); err != nil {
		return nil, errors.Invalid(err)
	}

	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Migrator{
		cfg:       opts.Config,
		mapping:   opts.Config.Mapping(),
		presenter: opts.Presenter,
		logger:    opts.Logger.With("component", "migrator"),
		clock:     opts.Clock,
		state:     domain.RunStateConfiguring,
	}, nil
}

// State returns the current lifecycle stage.
func (m *Migrator) State() domain.RunState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Run executes the migration: validate, count, then process. A Migrator
// runs once. The returned stats are valid even when err is not nil.
func (m *Migrator) Run(ctx context.Context) (*domain.RunStats, error) {
	start := m.clock()
	stats := &domain.RunStats{DryRun: m.cfg.DryRun}
	defer func() { stats.Duration = m.clock().Sub(start) }()

	m.presenter.ShowConfig(m.runInfo())

	if err := m.transition(domain.RunStateValidating); err != nil {
		return stats, err
	}
	root, dest, err := m.prepare()
	if err != nil {
		return stats, m.abort(err)
	}

	w, err := walker.New(walker.Options{
		Root:         root,
		Mapping:      m.mapping,
		Excludes:     m.cfg.Excludes,
		SkipDirs:     []string{dest},
		UseGitIgnore: m.cfg.UseGitIgnore,
		Logger:       m.logger,
	})
	if err != nil {
		return stats, m.abort(err)
	}

	// Counting
	if err := m.transition(domain.RunStateCounting); err != nil {
		return stats, err
	}
	m.presenter.Info("Analyzing file structure...")
	total, err := w.Count(ctx)
	if err != nil {
		return stats, m.abort(err)
	}
	stats.Discovered = total
	m.logger.Debug("count finished", "files", total)

	if total == 0 {
		m.presenter.Info("No files found matching criteria.")
		return stats, m.transition(domain.RunStateDone)
	}
	m.presenter.Info(fmt.Sprintf("Found %d files to process.", total))

	// Processing
	if err := m.transition(domain.RunStateProcessing); err != nil {
		return stats, err
	}
	namer := newDestinationNamer(dest)

	m.presenter.StartProgress(total)
	err = w.Walk(ctx, func(c walker.Candidate) error {
		name, err := m.migrate(c, w.Root(), namer)
		if err != nil {
			return err
		}
		stats.Processed++
		stats.Outputs = append(stats.Outputs, name)
		m.presenter.Advance(c.Name)
		return nil
	})
	m.presenter.StopProgress()
	if err != nil {
		return stats, m.abort(err)
	}

	if err := m.transition(domain.RunStateDone); err != nil {
		return stats, err
	}

	m.logger.Info("run completed",
		"mode", m.cfg.ModeLabel(),
		"processed", stats.Processed,
		"discovered", stats.Discovered,
		"duration_ms", m.clock().Sub(start).Milliseconds(),
	)
	m.presenter.Summary(ui.RunSummary{
		Outcome:   stats.Outcome(),
		DryRun:    stats.DryRun,
		Processed: stats.Processed,
		Total:     stats.Discovered,
		Duration:  m.clock().Sub(start),
	})

	return stats, nil
}

// prepare checks the root and, in live mode, creates the destination.
// Both paths are returned absolute.
func (m *Migrator) prepare() (root, dest string, err error) {
	root, err = filepath.Abs(m.cfg.Root)
	if err != nil {
		return "", "", errors.Errorf("%w: %s: %w", domain.ErrRootNotFound, m.cfg.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", "", errors.Errorf("%w: %s", domain.ErrRootNotFound, m.cfg.Root)
	}
	if !info.IsDir() {
		return "", "", errors.Errorf("%w: %s", domain.ErrRootNotDir, m.cfg.Root)
	}

	dest, err = filepath.Abs(m.cfg.Dest)
	if err != nil {
		return "", "", errors.Errorf("%w: %w", domain.ErrDestination, err)
	}
	switch {
	case validator.IsSamePath(root, dest):
		m.presenter.Warning("Destination is the root directory, copies are written next to the sources.")
	case validator.IsWithin(dest, root):
		m.logger.Debug("destination inside root is not scanned", "dest", dest)
	}

	if m.cfg.DryRun {
		return root, dest, nil
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", "", errors.Errorf("%w: %w", domain.ErrDestination, err)
	}
	return root, dest, nil
}

// migrate handles one candidate and returns the destination file name.
func (m *Migrator) migrate(c walker.Candidate, root string, namer *destinationNamer) (string, error) {
	if m.cfg.DryRun {
		name := namer.Plan(c.BaseName(), c.OutputExt)
		m.logger.Debug("would copy", "source", c.Path, "dest", name)
		return name, nil
	}

	content, err := readSource(c.Path)
	if err != nil {
		return "", err
	}

	f, name, err := namer.Create(c.BaseName(), c.OutputExt)
	if err != nil {
		return "", &domain.FileError{
			Op:     domain.FileOpCreate,
			Source: c.Path,
			Dest:   filepath.Join(namer.Dir(), name),
			Err:    err,
		}
	}

	header := domain.FormatHeader(c.OutputExt, c.Path, root, m.clock())
	if err := writeOutput(f, c.Path, header, content); err != nil {
		return "", err
	}

	m.logger.Debug("copied", "source", c.Path, "dest", name)
	return name, nil
}

// transition moves the run to next, rejecting moves the lifecycle forbids.
func (m *Migrator) transition(next domain.RunState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.CanTransitionTo(next) {
		return errors.Errorf("%w: cannot move from %s to %s", domain.ErrRunAborted, m.state, next)
	}
	m.logger.Debug("state changed", "from", m.state.String(), "to", next.String())
	m.state = next
	return nil
}

// abort marks the run as failed and returns err unchanged.
func (m *Migrator) abort(err error) error {
	m.presenter.StopProgress()
	if terr := m.transition(domain.RunStateAborted); terr != nil {
		m.logger.Warn("abort after terminal state", "error", terr.Error())
	}
	m.logger.Err(err, "state", domain.RunStateAborted.String())
	return err
}

func (m *Migrator) runInfo() ui.RunInfo {
	info := ui.RunInfo{
		DryRun:    m.cfg.DryRun,
		Root:      absOrRaw(m.cfg.Root),
		Dest:      absOrRaw(m.cfg.Dest),
		Excludes:  m.cfg.Excludes,
		GitIgnore: m.cfg.UseGitIgnore,
	}
	if m.cfg.DryRun {
		info.Mode = "[" + m.cfg.ModeLabel() + "]"
	} else {
		info.Mode = m.cfg.ModeLabel()
	}
	for _, pair := range m.mapping.Pairs() {
		info.Mappings = append(info.Mappings, ui.MappingRow{
			Input:   pair.Input,
			Output:  pair.Output,
			Comment: domain.CommentStyleFor(pair.Output).Family,
		})
	}
	return info
}

func absOrRaw(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
