// Command checker runs one provider connectivity check and records the outcome.
//
//	checker [--config path] [--no-lock] <provider-id>
//
// The outcome is written to stdout as {"connected": bool, "error": string|null}.
// The exit status is 0 when the check completed (whatever the outcome), 1 when
// it could not be completed, and 2 on a usage error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"provider-connection-checker/config"
	"provider-connection-checker/internal/adapter/cloud"
	pgStorage "provider-connection-checker/internal/adapter/storage/postgres"
	redisStorage "provider-connection-checker/internal/adapter/storage/redis"
	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"
	"provider-connection-checker/internal/service"
	"provider-connection-checker/pkg/apperror"
	"provider-connection-checker/pkg/logger"

	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	configPath string
	noLock     bool
	providerID string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("checker", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	fs.BoolVar(&opts.noLock, "no-lock", false, "skip the per-provider lock")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: checker [flags] <provider-id>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("exactly one provider id is required")
	}
	opts.providerID = fs.Arg(0)
	return opts, nil
}

// exitCode maps a job error onto the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if apperror.CodeOf(err) == apperror.ErrInvalidProviderID().Code {
		return exitUsage
	}
	return exitError
}

func writeResult(w io.Writer, result *domain.CheckResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(result)
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(exitOK)
		}
		os.Exit(exitUsage)
	}
	os.Exit(run(opts))
}

func run(opts options) int {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return exitError
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to PostgreSQL")
		return exitError
	}
	defer pool.Close()

	var lock ports.ProviderLock
	if cfg.Checker.LockEnabled && !opts.noLock {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Redis")
			return exitError
		}
		defer rdb.Close()
		lock = redisStorage.NewProviderLock(rdb)
	}

	providerRepo := pgStorage.NewProviderRepo(pool)
	testers := service.NewTesterTable(cloud.Testers(cfg, log))

	checker := service.NewConnectionService(providerRepo, testers, log)
	job := service.NewConnectionJob(checker, lock, cfg.Checker.LockTTL, log)

	result, err := job.RunConnectionCheck(ctx, opts.providerID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connection check failed: %v\n", err)
		return exitCode(err)
	}

	if err := writeResult(os.Stdout, result); err != nil {
		log.Error().Err(err).Msg("Failed to write result")
		return exitError
	}
	return exitOK
}
