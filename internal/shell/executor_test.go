package shell

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(slog.New(slog.NewTextHandler(discardWriter{}, nil)))
	s.ShellPID = 1
	t.Cleanup(s.Reaper.Stop)
	return s
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestExecuteAndShortCircuit(t *testing.T) {
	ex := NewExecutor()
	s := newTestState(t)
	var out bytes.Buffer

	ex.Execute("cd /nonexistent-path-for-smash-test && echo SHOULD_NOT_PRINT", s, &out)

	assert.NotContains(t, out.String(), "SHOULD_NOT_PRINT")
	assert.Contains(t, out.String(), "does not exist")
}

func TestExecuteAndContinuesOnSuccess(t *testing.T) {
	ex := NewExecutor()
	s := newTestState(t)
	var out bytes.Buffer

	ex.Execute("showpid && showpid", s, &out)

	count := strings.Count(out.String(), "smash pid is")
	assert.Equal(t, 2, count)
}

func TestExecuteEmptyLineIsNoop(t *testing.T) {
	ex := NewExecutor()
	s := newTestState(t)
	var out bytes.Buffer

	ex.Execute("   ", s, &out)
	assert.Empty(t, out.String())
}

func TestExecuteBackgroundJobRegistersInTable(t *testing.T) {
	ex := NewExecutor()
	s := newTestState(t)
	var out bytes.Buffer

	ex.Execute("sleep 2 &", s, &out)

	list := s.Jobs.List()
	require.Len(t, list, 1)
	assert.Equal(t, "sleep 2", list[0].CommandText)

	// Clean up the child so the test doesn't leak a sleeping process.
	ex.Execute("kill 9 0", s, &out)
	time.Sleep(50 * time.Millisecond)
}

func TestExecuteAliasExpansion(t *testing.T) {
	ex := NewExecutor()
	s := newTestState(t)
	var out bytes.Buffer

	ex.Execute("alias greet='showpid'", s, &out)
	out.Reset()
	ex.Execute("greet", s, &out)

	assert.Contains(t, out.String(), "smash pid is")
}

func TestExecuteParseErrorFormatting(t *testing.T) {
	ex := NewExecutor()
	s := newTestState(t)
	var out bytes.Buffer

	ex.Execute("echo a &&", s, &out)
	assert.Contains(t, out.String(), "smash error:")
}
