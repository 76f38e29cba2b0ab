//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// markerScript creates a marker file named after the script when run
const markerScript = "#!/bin/sh\n: > \"$MENUVROOM_MARKER-${0##*/}\"\n"

// CreateTestWorkspace creates an isolated home with a bin directory and a
// config whose cache lives inside the workspace
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	if err := os.MkdirAll(tf.BinDir(), 0755); err != nil {
		return "", err
	}
	cfg := fmt.Sprintf("cache_dir = '%s'\n", filepath.Join(tf.workspace, "cache"))
	if err := os.WriteFile(tf.ConfigPath(), []byte(cfg), 0644); err != nil {
		return "", err
	}
	return tf.workspace, nil
}

// AddLauncherScript adds an executable that leaves a marker when launched
func (tf *TUITestFramework) AddLauncherScript(name string) error {
	return os.WriteFile(filepath.Join(tf.BinDir(), name), []byte(markerScript), 0755)
}

// AddDesktopEntry adds a desktop shortcut that runs one of the workspace scripts
func (tf *TUITestFramework) AddDesktopEntry(file, name, exec string) error {
	content := fmt.Sprintf("[Desktop Entry]\nName=%s\nExec=%s\n", name, exec)
	return os.WriteFile(filepath.Join(tf.BinDir(), file), []byte(content), 0644)
}

// Launched reports whether the named script has run
func (tf *TUITestFramework) Launched(name string) bool {
	_, err := os.Stat(tf.MarkerPrefix() + "-" + name)
	return err == nil
}

func (tf *TUITestFramework) BinDir() string {
	return filepath.Join(tf.workspace, "bin")
}

func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

func (tf *TUITestFramework) MarkerPrefix() string {
	return filepath.Join(tf.workspace, "launched")
}
