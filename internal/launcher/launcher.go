package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// ErrEmptyCommand is returned when a command has no program to run
var ErrEmptyCommand = errors.New("empty command")

// Launcher spawns a command and forgets about it
type Launcher interface {
	Spawn(command string) error
}

// ProcessLauncher starts commands as detached OS processes. The child runs
// in its own session with no stdio attached and is never waited on.
type ProcessLauncher struct {
	dirs []string // searched after PATH for bare program names
}

// New creates a process launcher. Program names not found on PATH are
// looked up in dirs, so binaries cataloged from extra directories still run.
func New(dirs ...string) *ProcessLauncher {
	return &ProcessLauncher{dirs: dirs}
}

// Spawn splits command with shell quoting rules and starts it
func (l *ProcessLauncher) Spawn(command string) error {
	args, err := Split(command)
	if err != nil {
		return err
	}

	cmd := exec.Command(l.resolve(args[0]), args[1:]...)
	if err := startDetached(cmd); err != nil {
		return fmt.Errorf("failed to start %q: %w", args[0], err)
	}

	// nothing will ever wait on the child
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %q: %w", args[0], err)
	}
	return nil
}

// Split breaks a command line into program and arguments
func Split(command string) ([]string, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return args, nil
}

// resolve returns the program path to run. PATH wins; the launcher's own
// directories are the fallback.
func (l *ProcessLauncher) resolve(program string) string {
	if strings.ContainsRune(program, filepath.Separator) {
		return program
	}
	if _, err := exec.LookPath(program); err == nil {
		return program
	}
	for _, dir := range l.dirs {
		candidate := filepath.Join(dir, program)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() && info.Mode().Perm()&0o111 != 0 {
			return candidate
		}
	}
	return program
}
