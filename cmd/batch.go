package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"phishlens/internal/config"
	"phishlens/internal/worker"
	"phishlens/pkg/logger"
	"phishlens/pkg/metrics"
	"phishlens/pkg/serrors"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// interruptContext is canceled gracePeriod after SIGINT or SIGTERM so that
// records already in flight get a chance to finish.
func interruptContext(parent context.Context, gracePeriod time.Duration) (context.Context, context.CancelFunc) {
	sigCtx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case <-sigCtx.Done():
			logger.Info(ctx, "interrupted, waiting for in-flight records...", zap.Duration("timeout", gracePeriod))
			select {
			case <-time.After(gracePeriod):
				cancel()
			case <-ctx.Done():
			}
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		stop()
		cancel()
	}
}

func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fileError(err, "could not create output %s", path)
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func batchCommand(cfg *config.Config) *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyzes newline-delimited JSON emails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := interruptContext(cmd.Context(), cfg.GracefulShutdownTimeout)
			defer cancel()

			reg := prometheus.NewRegistry()
			m, err := metrics.New(reg)
			if err != nil {
				return fmt.Errorf("could not create metrics: %w", err)
			}

			a, err := newAnalyzer(cfg, m)
			if err != nil {
				return err
			}

			in, err := openInput(cmd, inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := openOutput(cmd, outPath)
			if err != nil {
				return err
			}

			summary, runErr := worker.New(a, m, worker.NewOptions(cfg)).Run(ctx, in, out)
			if err := out.Close(); err != nil && runErr == nil {
				runErr = serrors.Wrap(serrors.ErrInternal, err, "could not close output")
			}

			if path := cfg.Metrics.TextfilePath; path != "" {
				if err := metrics.WriteTextfile(path, reg); err != nil {
					logger.Warn(ctx, "could not export metrics", zap.Error(err))
				}
			}

			if runErr != nil {
				logger.Error(ctx, "batch failed", zap.Error(runErr),
					zap.Int("processed", summary.Processed), zap.Int("failed", summary.Failed))

				return runErr
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "-", "Input file, - for stdin")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file, - for stdout")

	return cmd
}
