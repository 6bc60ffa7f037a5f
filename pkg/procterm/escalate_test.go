package procterm

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalate_TermExits(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	killed, err := Escalate(context.Background(), cmd.Process.Pid, 2*time.Second)
	assert.NoError(t, err)
	assert.False(t, killed, "a process that exits on SIGTERM shouldn't need SIGKILL")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("process did not exit after Escalate")
	}
}

func TestEscalate_IgnoresTermFallsBackToKill(t *testing.T) {
	cmd := exec.Command("sh", "-c", "trap '' TERM; sleep 30")
	require.NoError(t, cmd.Start())
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	start := time.Now()
	killed, err := Escalate(context.Background(), cmd.Process.Pid, 200*time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, killed, "a process that ignores SIGTERM should need SIGKILL")
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("process did not die after SIGKILL escalation")
	}
}

func TestEscalate_AlreadyDeadIsNotAnError(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())

	killed, err := Escalate(context.Background(), cmd.Process.Pid, time.Second)
	assert.NoError(t, err)
	assert.False(t, killed)
}
