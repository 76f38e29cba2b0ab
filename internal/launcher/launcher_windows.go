//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

const detachedProcess = 0x00000008

func startDetached(cmd *exec.Cmd) error {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= detachedProcess
	return cmd.Start()
}
