package worker_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"phishlens/internal/analyzer"
	mockanalyzer "phishlens/internal/analyzer/mock"
	"phishlens/internal/worker"
	"phishlens/pkg/domain"
	"phishlens/pkg/metrics"
	"phishlens/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func echo(_ context.Context, e domain.Email) domain.Features {
	return domain.Features{ID: e.ID, From: e.From, Domains: []string{}}
}

func outputLines(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()

	var lines []string
	s := bufio.NewScanner(out)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	require.NoError(t, s.Err())

	return lines
}

func TestBatch_Run_KeepsInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const n = 20
	a := mockanalyzer.NewMockAnalyzer(ctrl)
	a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(n).DoAndReturn(
		func(ctx context.Context, e domain.Email) domain.Features {
			// later records finish first
			var i int
			_, _ = fmt.Sscanf(e.ID, "e-%d", &i)
			time.Sleep(time.Duration(n-i) * time.Millisecond)

			return echo(ctx, e)
		})

	var in strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&in, `{"id":"e-%d","from":"f-%d"}`+"\n", i, i)
	}

	var out bytes.Buffer
	summary, err := worker.New(a, nil, worker.Options{Concurrency: 4}).Run(context.Background(), strings.NewReader(in.String()), &out)
	require.NoError(t, err)
	require.Equal(t, worker.Summary{Processed: n}, summary)

	lines := outputLines(t, &out)
	require.Len(t, lines, n)
	for i, line := range lines {
		require.JSONEq(t,
			fmt.Sprintf(`{"id":"e-%d","from":"f-%d","to":"","date":"","has_phishy_keywords":false,"domains":[]}`, i, i),
			line)
	}
}

func TestBatch_Run_SkipsBadLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mockanalyzer.NewMockAnalyzer(ctrl)
	a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(echo)

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	in := "{\"id\":\"a\",\"body\":\"x\"}\n\n   \nnot json\n{\"from\":\"anon\",\"body\":\"y\"}\n[1,2]\n{\"id\":\"b\"} trailing\n"

	var out bytes.Buffer
	summary, err := worker.New(a, m, worker.Options{Concurrency: 2}).Run(context.Background(), strings.NewReader(in), &out)
	require.NoError(t, err)
	require.Equal(t, worker.Summary{Processed: 2, Failed: 3}, summary)
	require.InDelta(t, 3, testutil.ToFloat64(m.BatchRecordsFailed), 0)

	lines := outputLines(t, &out)
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"id":"a"`)

	got, err := domain.DecodeEmail([]byte(lines[1]))
	require.NoError(t, err)
	require.Equal(t, "anon", got.From)
	_, err = uuid.Parse(got.ID)
	require.NoError(t, err, "missing ids are generated")
}

func TestBatch_Run_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mockanalyzer.NewMockAnalyzer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := worker.New(a, nil, worker.Options{}).Run(ctx, strings.NewReader(`{"id":"a"}`+"\n"), &out)
	require.ErrorIs(t, err, serrors.ErrCanceled)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, out.Len())
}

func TestBatch_Run_LineTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mockanalyzer.NewMockAnalyzer(ctrl)

	in := `{"body":"` + strings.Repeat("x", 256) + `"}` + "\n"

	var out bytes.Buffer
	_, err := worker.New(a, nil, worker.Options{MaxLineBytes: 64}).Run(context.Background(), strings.NewReader(in), &out)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	require.Zero(t, out.Len())
}

func TestBatch_Run_WithAnalyzer(t *testing.T) {
	in := `{"id":"1","from":"a@x.test","to":"b@y.test","date":"today","subject":"Urgent","body":"see https://www.evil.test/x or mail c@z.test","extra":{"k":[1]}}
{"id":"2","from":null,"body":"lunch?"}
`

	var out bytes.Buffer
	b := worker.New(analyzer.New(analyzer.Deps{}, analyzer.Options{}), nil, worker.Options{Concurrency: 2})
	summary, err := b.Run(context.Background(), strings.NewReader(in), &out)
	require.NoError(t, err)
	require.Equal(t, worker.Summary{Processed: 2}, summary)

	lines := outputLines(t, &out)
	require.Len(t, lines, 2)
	require.JSONEq(t,
		`{"id":"1","from":"a@x.test","to":"b@y.test","date":"today","has_phishy_keywords":true,"domains":["evil.test"]}`,
		lines[0])
	require.JSONEq(t,
		`{"id":"2","from":"","to":"","date":"","has_phishy_keywords":false,"domains":[]}`,
		lines[1])
}

func TestBatch_Run_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var out bytes.Buffer
	summary, err := worker.New(mockanalyzer.NewMockAnalyzer(ctrl), nil, worker.Options{}).
		Run(context.Background(), strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Equal(t, worker.Summary{}, summary)
	require.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestBatch_Run_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mockanalyzer.NewMockAnalyzer(ctrl)
	a.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(echo)

	_, err := worker.New(a, nil, worker.Options{}).Run(context.Background(), strings.NewReader(`{"id":"a"}`+"\n"), failingWriter{})
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorContains(t, err, "disk full")
}
