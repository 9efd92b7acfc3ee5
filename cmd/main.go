// Package main provides the CLI entrypoint for phishlens.
// It wires subcommands (extract, batch, censor, keywords), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"phishlens/internal/config"
	"phishlens/pkg/logger"
	"phishlens/pkg/serrors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.yml"

// loadEnvFile loads variables from .env when present. Variables already set
// in the environment win.
func loadEnvFile() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("could not load .env file: ", err)
	}
}

// resolveConfigPath makes the default config file optional: without it the
// configuration comes from the environment only.
func resolveConfigPath(path string) string {
	if path != defaultConfigPath {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}

	return path
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "phishlens",
		Short:        "Extracts link domains and phishing signals from emails",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("c", defaultConfigPath, "The config file path")
	// subcommand flags are unknown here, cobra reports real mistakes later.
	_ = flags.Parse(os.Args[1:])

	loadEnvFile()

	cfg, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.SetupWithOptions(logger.Options{
		Environment: cfg.Environment,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
		Compress:    cfg.Log.Compress,
	})

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		extractCommand(cfg),
		batchCommand(cfg),
		censorCommand(),
		keywordsCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.String("kind", kindOf(err).Error()), zap.Error(err))
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(exitCode(err)) //nolint: gocritic
	}
}

// kindOf is serrors.KindOf with ErrInternal for errors carrying no kind.
func kindOf(err error) serrors.Kind {
	if k := serrors.KindOf(err); k != nil {
		return k
	}

	return serrors.ErrInternal
}

// exitCode maps the kind of a command error to the process exit status.
func exitCode(err error) int {
	switch kindOf(err) {
	case serrors.ErrInvalidInput:
		return 2
	case serrors.ErrNotFound:
		return 3
	case serrors.ErrCanceled:
		return 130
	default:
		return 1
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
