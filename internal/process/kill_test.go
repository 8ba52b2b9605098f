package process

// Notes:
// - KillProcessGroup is only exercised with an invalid PID: a real PID or 0
//   would target live processes, including the test binary's own group.
// - Group teardown of real children is covered by the converter's runner tests.

import (
	"os/exec"
	"testing"
)

// ---------------------------------------------------------------------------
// TestKillProcessGroup - Invalid PID Handling
// ---------------------------------------------------------------------------

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}

// ---------------------------------------------------------------------------
// TestKillOnCancel
// ---------------------------------------------------------------------------

func TestKillOnCancel_SetsCancel(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("true")
	KillOnCancel(cmd)

	if cmd.Cancel == nil {
		t.Fatal("expected Cancel to be set")
	}
	if cmd.SysProcAttr == nil {
		t.Fatal("expected SysProcAttr to be set")
	}
	// Not started: nothing to kill.
	if err := cmd.Cancel(); err != nil {
		t.Errorf("Cancel() on unstarted command = %v, want nil", err)
	}
}
