package extract

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkm/rkm-eod/internal/model"
)

type fakeChecker struct {
	ok    bool
	err   error
	calls int
	date  time.Time
}

func (f *fakeChecker) IsBusinessDay(_ context.Context, date time.Time) (bool, error) {
	f.calls++
	f.date = date
	return f.ok, f.err
}

type fakeFetcher struct {
	tools []model.Tool
	err   error
	calls int
}

func (f *fakeFetcher) FetchTools(context.Context) ([]model.Tool, error) {
	f.calls++
	return f.tools, f.err
}

type fakeWriter struct {
	err     error
	calls   int
	runTime time.Time
	tools   []model.Tool
}

func (f *fakeWriter) Write(runTime time.Time, tools []model.Tool) (string, error) {
	f.calls++
	f.runTime = runTime
	f.tools = tools
	if f.err != nil {
		return "", f.err
	}
	return "RKMINFO-" + runTime.Format("2006-01-02") + ".csv", nil
}

var runTime = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

func twoTools() []model.Tool {
	return []model.Tool{
		{ID: pgtype.Int8{Int64: 1, Valid: true}, Name: pgtype.Text{String: "ToolA", Valid: true}},
		{ID: pgtype.Int8{Int64: 2, Valid: true}, Name: pgtype.Text{String: "ToolB", Valid: true}},
	}
}

func TestRun_BusinessDay(t *testing.T) {
	checker := &fakeChecker{ok: true}
	fetcher := &fakeFetcher{tools: twoTools()}
	writer := &fakeWriter{}
	var out bytes.Buffer

	r := NewRunner(checker, fetcher, writer, &out, nil)
	res, err := r.Run(context.Background(), Options{RunTime: runTime})
	require.NoError(t, err)

	assert.Equal(t, Result{Rows: 2, Path: "RKMINFO-2026-10-19.csv"}, res)
	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, runTime, checker.date)
	assert.Equal(t, runTime, writer.runTime)
	assert.Equal(t, twoTools(), writer.tools)
	assert.Equal(t,
		"INFO : FETCHED 2 ROWS.\n"+
			"INFO : WROTE 2 DATA ROWS TO 'RKMINFO-2026-10-19.csv'\n",
		out.String())
}

func TestRun_NotBusinessDay(t *testing.T) {
	checker := &fakeChecker{ok: false}
	fetcher := &fakeFetcher{tools: twoTools()}
	writer := &fakeWriter{}
	var out bytes.Buffer

	r := NewRunner(checker, fetcher, writer, &out, nil)
	res, err := r.Run(context.Background(), Options{RunTime: runTime})
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, writer.calls, "no file is written on a non-business day")
	assert.Equal(t, "INFO : Today is not a valid biz day. Skipping ...\n", out.String())
}

func TestRun_BypassNeverChecks(t *testing.T) {
	checker := &fakeChecker{ok: false, err: errors.New("must not be called")}
	fetcher := &fakeFetcher{tools: twoTools()}
	writer := &fakeWriter{}

	r := NewRunner(checker, fetcher, writer, nil, nil)
	res, err := r.Run(context.Background(), Options{BypassBizCheck: true, RunTime: runTime})
	require.NoError(t, err)

	assert.Zero(t, checker.calls)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 1, writer.calls)
}

func TestRun_ZeroRunTimeDefaultsToNow(t *testing.T) {
	writer := &fakeWriter{}
	r := NewRunner(&fakeChecker{ok: true}, &fakeFetcher{}, writer, nil, nil)

	before := time.Now()
	_, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.False(t, writer.runTime.Before(before))
}

func TestRun_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		checker *fakeChecker
		fetcher *fakeFetcher
		writer  *fakeWriter
		wantMsg string
	}{
		{
			name:    "checker",
			checker: &fakeChecker{err: boom},
			fetcher: &fakeFetcher{},
			writer:  &fakeWriter{},
			wantMsg: "check business day: boom",
		},
		{
			name:    "fetcher",
			checker: &fakeChecker{ok: true},
			fetcher: &fakeFetcher{err: boom},
			writer:  &fakeWriter{},
			wantMsg: "fetch eod data: boom",
		},
		{
			name:    "writer",
			checker: &fakeChecker{ok: true},
			fetcher: &fakeFetcher{},
			writer:  &fakeWriter{err: boom},
			wantMsg: "write eod file: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(tt.checker, tt.fetcher, tt.writer, nil, nil)
			_, err := r.Run(context.Background(), Options{RunTime: runTime})
			require.ErrorIs(t, err, boom)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

type errQuerier struct{ err error }

func (q errQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func TestStoreAdapter(t *testing.T) {
	boom := errors.New("connection refused")
	a := StoreAdapter{Q: errQuerier{err: boom}}

	_, err := a.IsBusinessDay(context.Background(), runTime)
	require.ErrorIs(t, err, boom)

	_, err = a.FetchTools(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestInfof(t *testing.T) {
	var out bytes.Buffer
	Infof(&out, "DATABASE CONNECTION CLOSED")
	assert.Equal(t, "INFO : DATABASE CONNECTION CLOSED\n", out.String())
}
