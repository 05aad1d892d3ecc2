package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rkm/rkm-eod/internal/model"
	"github.com/rkm/rkm-eod/internal/store"
)

// Checker decides whether a date is a business day.
type Checker interface {
	IsBusinessDay(ctx context.Context, date time.Time) (bool, error)
}

// Fetcher returns the reference rows to extract.
type Fetcher interface {
	FetchTools(ctx context.Context) ([]model.Tool, error)
}

// FileWriter persists the rows and returns the written path.
type FileWriter interface {
	Write(runTime time.Time, tools []model.Tool) (string, error)
}

// Options controls a single run.
type Options struct {
	// BypassBizCheck skips the rkm_calendar lookup entirely.
	BypassBizCheck bool

	// RunTime is captured once at startup; it supplies the calendar date,
	// the file name date and the header timestamp.
	RunTime time.Time
}

// Result describes what a run did.
type Result struct {
	Skipped bool   // Not a business day; nothing written
	Rows    int    // Data rows written
	Path    string // Output file path
}

// Runner wires the run steps together.
type Runner struct {
	checker Checker
	fetcher Fetcher
	writer  FileWriter
	out     io.Writer
	logger  *slog.Logger
}

// NewRunner creates a new Runner. Status lines go to out.
func NewRunner(checker Checker, fetcher Fetcher, writer FileWriter, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		checker: checker,
		fetcher: fetcher,
		writer:  writer,
		out:     out,
		logger:  logger,
	}
}

// Run executes the extract once.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.RunTime.IsZero() {
		opts.RunTime = time.Now()
	}

	if opts.BypassBizCheck {
		r.logger.Info("business day check bypassed")
	} else {
		ok, err := r.checker.IsBusinessDay(ctx, opts.RunTime)
		if err != nil {
			return Result{}, fmt.Errorf("check business day: %w", err)
		}
		if !ok {
			r.logger.Info("not a business day", "date", opts.RunTime.Format(time.DateOnly))
			Infof(r.out, "Today is not a valid biz day. Skipping ...")
			return Result{Skipped: true}, nil
		}
	}

	tools, err := r.fetcher.FetchTools(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch eod data: %w", err)
	}
	Infof(r.out, "FETCHED %d ROWS.", len(tools))

	path, err := r.writer.Write(opts.RunTime, tools)
	if err != nil {
		return Result{}, fmt.Errorf("write eod file: %w", err)
	}
	Infof(r.out, "WROTE %d DATA ROWS TO '%s'", len(tools), path)

	r.logger.Info("eod extract complete",
		"rows", len(tools),
		"path", path,
	)
	return Result{Rows: len(tools), Path: path}, nil
}

// Infof writes an "INFO : " status line.
func Infof(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "INFO : "+format+"\n", args...)
}

// StoreAdapter binds the store queries to a connection.
type StoreAdapter struct {
	Q store.Querier
}

// IsBusinessDay implements Checker.
func (a StoreAdapter) IsBusinessDay(ctx context.Context, date time.Time) (bool, error) {
	return store.IsBusinessDay(ctx, a.Q, date)
}

// FetchTools implements Fetcher.
func (a StoreAdapter) FetchTools(ctx context.Context) ([]model.Tool, error) {
	return store.FetchTools(ctx, a.Q)
}
