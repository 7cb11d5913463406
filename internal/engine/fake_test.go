package engine

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
)

type execCall struct {
	query string
	args  []any
}

// fakeExec records statements instead of sending them to a server.
type fakeExec struct {
	calls   []execCall
	failOn  string // query prefix that triggers failErr
	failAt  int    // fail only the n-th matching statement (1-based); 0 means every one
	failErr error
	matched int
}

func (f *fakeExec) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.failOn != "" && strings.HasPrefix(query, f.failOn) {
		f.matched++
		if f.failAt == 0 || f.failAt == f.matched {
			return nil, f.failErr
		}
	}
	return driver.RowsAffected(len(args)), nil
}

func (f *fakeExec) queries() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.query
	}
	return out
}

// liveArgs returns the values inserted since the most recent DROP, i.e. what
// the destination table would hold now.
func (f *fakeExec) liveArgs() []any {
	var args []any
	for _, c := range f.calls {
		switch {
		case strings.HasPrefix(c.query, "DROP"):
			args = nil
		case strings.HasPrefix(c.query, "INSERT"):
			args = append(args, c.args...)
		}
	}
	return args
}
