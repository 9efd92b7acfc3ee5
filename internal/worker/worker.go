// Package worker analyzes newline-delimited JSON emails in bulk.
package worker

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"phishlens/internal/analyzer"
	"phishlens/internal/config"
	"phishlens/pkg/domain"
	"phishlens/pkg/logger"
	"phishlens/pkg/metrics"
	"phishlens/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure a batch run.
type Options struct {
	// Concurrency is the number of emails analyzed at the same time.
	Concurrency int
	// MaxLineBytes is the longest input line accepted. Longer lines abort
	// the run since the rest of the stream cannot be framed reliably.
	MaxLineBytes int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:  cfg.Worker.Concurrency,
		MaxLineBytes: cfg.Worker.MaxLineBytes,
	}
}

// Summary reports the outcome of a batch run.
type Summary struct {
	// Processed is the number of records analyzed and written.
	Processed int
	// Failed is the number of non-blank lines that were not valid emails.
	Failed int
}

// Batch reads one email JSON object per line, analyzes the emails
// concurrently and writes one feature JSON object per line, in input order.
type Batch struct {
	options  Options
	analyzer analyzer.Analyzer
	metrics  *metrics.Metrics
}

// New creates a Batch. m may be nil.
func New(a analyzer.Analyzer, m *metrics.Metrics, options Options) *Batch {
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}
	if options.MaxLineBytes < 1 {
		options.MaxLineBytes = bufio.MaxScanTokenSize
	}

	return &Batch{
		options:  options,
		analyzer: a,
		metrics:  m,
	}
}

// record is a decoded input line waiting for analysis.
type record struct {
	line     int
	email    domain.Email
	features domain.Features
}

// Run processes every line of r and writes the results to w. Bad lines are
// logged and counted but never stop the run. A canceled context stops the
// run with serrors.ErrCanceled before anything is written.
func (b *Batch) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	var summary Summary

	records, failed, err := b.read(ctx, r)
	summary.Failed = failed
	if err != nil {
		return summary, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.options.Concurrency)
	for i := range records {
		rec := &records[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint: wrapcheck
			}
			recCtx := logger.WithFields(gctx, zap.String("email_id", rec.email.ID), zap.Int("line", rec.line))
			rec.features = b.analyzer.Analyze(recCtx, rec.email)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, serrors.Wrap(serrors.ErrCanceled, err, "batch interrupted")
	}

	bw := bufio.NewWriter(w)
	var e jx.Encoder
	for _, rec := range records {
		e.Reset()
		rec.features.Encode(&e)
		if _, err := bw.Write(append(e.Bytes(), '\n')); err != nil {
			return summary, serrors.Wrap(serrors.ErrInternal, err, "could not write features of line %d", rec.line)
		}
		summary.Processed++
	}
	if err := bw.Flush(); err != nil {
		return summary, serrors.Wrap(serrors.ErrInternal, err, "could not flush output")
	}

	logger.Info(ctx, "batch finished", zap.Int("processed", summary.Processed), zap.Int("failed", summary.Failed))

	return summary, nil
}

// read decodes all non-blank lines. Records without an ID get a random one.
func (b *Batch) read(ctx context.Context, r io.Reader) ([]record, int, error) {
	var (
		records []record
		failed  int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, b.options.MaxLineBytes)), b.options.MaxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		email, err := domain.DecodeEmail(data)
		if err != nil {
			failed++
			b.recordFailure()
			err = serrors.Wrap(serrors.ErrInvalidInput, err, "line %d is not a valid email", line)
			logger.Warn(ctx, "skipping input line", zap.Int("line", line), zap.Error(err))

			continue
		}
		if email.ID == "" {
			email.ID = uuid.NewString()
		}
		records = append(records, record{line: line, email: email})
	}
	if err := scanner.Err(); err != nil {
		return nil, failed, serrors.Wrap(serrors.ErrInvalidInput, err, "could not read input after line %d", line)
	}
	if err := ctx.Err(); err != nil {
		return nil, failed, serrors.Wrap(serrors.ErrCanceled, err, "batch interrupted")
	}

	return records, failed, nil
}

func (b *Batch) recordFailure() {
	if b.metrics != nil {
		b.metrics.BatchRecordsFailed.Inc()
	}
}
