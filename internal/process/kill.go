// Package process starts subprocesses in their own process group and tears
// the whole group down when a run is cancelled.
package process

import "os/exec"

// KillOnCancel makes exec.CommandContext kill cmd's entire process group,
// not just the direct child, when the context is done. It must be called
// before cmd.Start.
func KillOnCancel(cmd *exec.Cmd) {
	SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}
