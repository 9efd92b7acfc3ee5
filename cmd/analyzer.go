package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"phishlens/internal/analyzer"
	"phishlens/internal/config"
	"phishlens/internal/extractor"
	"phishlens/internal/keywords"
	"phishlens/pkg/metrics"
	"phishlens/pkg/serrors"

	"github.com/spf13/cobra"
)

// newAnalyzer builds the analyzer described by cfg. m may be nil.
func newAnalyzer(cfg *config.Config, m *metrics.Metrics) (analyzer.Analyzer, error) {
	parser, err := extractor.NewLinkParser(cfg.Extractor.HTMLParser)
	if err != nil {
		return nil, fmt.Errorf("could not create link parser: %w", err)
	}

	return analyzer.New(analyzer.Deps{
		Engine:  extractor.New(extractor.WithLinkParser(parser)),
		Scorer:  keywords.New(cfg.Keywords.Phrases),
		Metrics: m,
	}, analyzer.NewOptions(cfg)), nil
}

// openInput returns stdin for "-" and the named file otherwise.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fileError(err, "could not open input %s", path)
	}

	return f, nil
}

// fileError tags a file system error with ErrNotFound or ErrInternal.
func fileError(err error, msgFmt string, args ...any) error {
	if errors.Is(err, fs.ErrNotExist) {
		return serrors.Wrap(serrors.ErrNotFound, err, msgFmt, args...)
	}

	return serrors.Wrap(serrors.ErrInternal, err, msgFmt, args...)
}

// readInput reads the whole input named by path.
func readInput(cmd *cobra.Command, path string) (string, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not read input")
	}

	return string(data), nil
}
