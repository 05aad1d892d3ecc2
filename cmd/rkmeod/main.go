package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/rkm/rkm-eod/internal/config"
	"github.com/rkm/rkm-eod/internal/database"
	"github.com/rkm/rkm-eod/internal/extract"
	"github.com/rkm/rkm-eod/internal/store"
	"github.com/rkm/rkm-eod/internal/version"
	"github.com/rkm/rkm-eod/internal/writer"
)

const (
	defaultConfigPath = "configs.ini"
	envFile           = ".env"
	logLevelEnv       = "RKMEOD_LOG_LEVEL"
)

// dbConn is the connection surface the run needs; *pgx.Conn satisfies it.
type dbConn interface {
	store.Querier
	database.Closer
}

// connectDB is swapped out in tests.
var connectDB = func(ctx context.Context, cfg config.DBConfig) (dbConn, error) {
	conn, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	bypass      bool
	configPath  string
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseFlags parses args. -n and --by-pass-biz-check set the same option.
func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fset := flag.NewFlagSet(version.Program, flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.BoolVar(&opts.bypass, "n", false, "skip biz day check (shorthand)")
	fset.BoolVar(&opts.bypass, "by-pass-biz-check", false, "skip biz day check")
	fset.StringVar(&opts.configPath, "config", defaultConfigPath, "path to config file (.ini or .yaml)")
	fset.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "Generate EOD file\n\nUsage: %s [-n|--by-pass-biz-check] [-config path]\n\n", version.Program)
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if fset.NArg() > 0 {
		return cliOptions{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fset.Args(), " "))
	}
	return opts, nil
}

// run executes one extract and returns the process exit code:
// 0 on success or a non-business-day skip, 1 on failure, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	// Captured once; drives the calendar lookup, file name and header timestamp.
	runTime := time.Now()

	// .env is optional; it may carry PGPASSWORD or ${VAR} values for the config
	envErr := godotenv.Load(envFile)

	// Set up structured logging. Stdout is reserved for status lines.
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(os.Getenv(logLevelEnv)),
	})).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("starting eod extract",
		"version", version.Version,
		"commit", version.Commit,
		"config", opts.configPath,
		"bypass_biz_check", opts.bypass,
	)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("failed to load env file", "path", envFile, "error", envErr)
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(opts.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
		"user", cfg.Database.User,
	)

	conn, err := connectDB(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return 1
	}
	defer func() {
		if err := database.Close(conn); err != nil {
			logger.Warn("database close error", "error", err)
			return
		}
		extract.Infof(stdout, "DATABASE CONNECTION CLOSED")
	}()

	logger.Info("database connected")

	stores := extract.StoreAdapter{Q: conn}
	runner := extract.NewRunner(
		stores,
		stores,
		writer.NewEODWriter(cfg.Output, logger),
		stdout,
		logger,
	)

	res, err := runner.Run(ctx, extract.Options{
		BypassBizCheck: opts.bypass,
		RunTime:        runTime,
	})
	if err != nil {
		logger.Error("eod extract failed", "error", err)
		return 1
	}

	if res.Skipped {
		logger.Info("eod extract skipped")
	}
	return 0
}

// logLevel parses debug|info|warn|error, defaulting to info.
func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
