package shellcolor

import (
	"bytes"
	"testing"
)

func TestNewDisabledForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, false, false)
	if s.Enabled() {
		t.Error("expected color disabled for a non-terminal writer")
	}
}

func TestNoColorPassthrough(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, false, false)
	if got := s.Prompt("smash > "); got != "smash > " {
		t.Errorf("got %q, want unmodified prompt text", got)
	}
}

func TestNoColorEnvOverridesForceColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	s := New(&buf, false, true)
	if s.Enabled() {
		t.Error("NO_COLOR should override an explicit forceColor request")
	}
}
