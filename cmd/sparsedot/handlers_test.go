package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/evilsocket/islazy/str"
	"github.com/stretchr/testify/require"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

func newSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	b, err := sparsedot.New(sparsedot.WithLogger(logging.Discard()))
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &session{bridge: b, out: out}, out
}

// tableRows returns the trimmed cells of every data line of a table.
func tableRows(out string) [][]string {
	rows := [][]string{}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "│") {
			continue
		}
		row := []string{}
		for _, cell := range strings.Split(line, "│") {
			if cell = str.Trim(cell); cell != "" {
				row = append(row, cell)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func findRow(rows [][]string, first string) []string {
	for _, row := range rows {
		if len(row) > 0 && row[0] == first {
			return row
		}
	}
	return nil
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name  string
		eval  string
		check func(t *testing.T, s *session, rows [][]string)
	}{
		{"help", "help", func(t *testing.T, s *session, rows [][]string) {
			for _, h := range handlers {
				require.NotNil(t, findRow(rows, h.Mnemonic), h.Name)
			}
		}},
		{"info", "INFO", func(t *testing.T, s *session, rows [][]string) {
			require.Equal(t, []string{"engine", s.bridge.Engine().Name}, findRow(rows, "engine"))
			require.Equal(t, []string{"index width", s.bridge.Config().Width.String()}, findRow(rows, "index width"))
			require.Equal(t, []string{"handles", "0"}, findRow(rows, "handles"))
		}},
		{"variants for one kind", "variants dot", func(t *testing.T, s *session, rows [][]string) {
			require.Greater(t, len(rows), 1)
			for _, row := range rows[1:] {
				require.Equal(t, "dot", row[0])
			}
		}},
		{"all variants", "variants", func(t *testing.T, s *session, rows [][]string) {
			require.Len(t, rows, len(s.bridge.Variants())+1)
		}},
		{"demo", "demo", func(t *testing.T, s *session, rows [][]string) {
			require.Equal(t, []string{"0", "1", "1"}, findRow(rows, "0"))
			require.Equal(t, []string{"2", "3", "3"}, findRow(rows, "2"))
		}},
		{"solve", "solve 10", func(t *testing.T, s *session, rows [][]string) {
			require.Equal(t, []string{"size", "10"}, findRow(rows, "size"))
			require.Equal(t, []string{"stored", "28"}, findRow(rows, "stored"))
			require.Equal(t, []string{"converged", "true"}, findRow(rows, "converged"))
			require.Zero(t, s.bridge.Outstanding())
		}},
		{"several commands", "info; demo ;quit", func(t *testing.T, s *session, rows [][]string) {
			require.NotNil(t, findRow(rows, "engine"))
			require.NotNil(t, findRow(rows, "2"))
			require.True(t, s.quit)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newSession(t)
			for _, cmd := range str.SplitBy(tt.eval, ";") {
				require.NoError(t, dispatch(cmd, s))
			}
			tt.check(t, s, tableRows(out.String()))
		})
	}
}

func TestDispatchErrors(t *testing.T) {
	s, out := newSession(t)

	require.NoError(t, dispatch("   ", s))
	require.ErrorContains(t, dispatch("transpose", s), "command not found: transpose")
	require.ErrorContains(t, dispatch("solve x", s), "command not found")
	require.ErrorContains(t, dispatch("solve 1", s), `invalid size "1"`)
	require.Empty(t, out.String())

	for _, cmd := range []string{"q", "EXIT"} {
		s.quit = false
		require.NoError(t, dispatch(cmd, s))
		require.True(t, s.quit)
	}
}
