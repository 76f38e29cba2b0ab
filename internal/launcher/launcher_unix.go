//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"
)

func startDetached(cmd *exec.Cmd) error {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	// new session, so the child outlives the launcher's terminal
	cmd.SysProcAttr.Setsid = true
	return cmd.Start()
}
