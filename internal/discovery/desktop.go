package discovery

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrIncompleteDesktopEntry is returned when Name= or Exec= is missing
var ErrIncompleteDesktopEntry = errors.New("desktop entry has no Name or Exec")

const desktopEntryGroup = "[Desktop Entry]"

// fieldCodePattern matches Exec field codes such as %U, %f or %i
var fieldCodePattern = regexp.MustCompile(`%[A-Za-z]`)

// DesktopEntry holds the two keys the launcher needs from a .desktop file
type DesktopEntry struct {
	Name string
	Exec string // field codes already stripped
}

// ParseDesktopEntry scans key=value lines. The first Name and the first
// Exec win, even when empty; an entry whose Name or stripped Exec is blank
// is incomplete. Keys under any group other than [Desktop Entry] are
// ignored. Lines that are not key=value pairs are skipped.
func ParseDesktopEntry(r io.Reader) (DesktopEntry, error) {
	var entry DesktopEntry
	var seenName, seenExec bool
	inEntryGroup := true

	scanner := bufio.NewScanner(r)
	for !(seenName && seenExec) && scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inEntryGroup = strings.TrimSpace(line) == desktopEntryGroup
			continue
		}
		if !inEntryGroup {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimLeft(value, " \t")

		switch strings.TrimSpace(key) {
		case "Name":
			if !seenName {
				seenName = true
				entry.Name = value
			}
		case "Exec":
			if !seenExec {
				seenExec = true
				entry.Exec = StripFieldCodes(value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return DesktopEntry{}, fmt.Errorf("failed to read desktop entry: %w", err)
	}

	// an Exec made only of field codes leaves nothing to run
	if strings.TrimSpace(entry.Name) == "" || strings.TrimSpace(entry.Exec) == "" {
		return DesktopEntry{}, ErrIncompleteDesktopEntry
	}
	return entry, nil
}

// StripFieldCodes removes every %<letter> token without substituting anything
func StripFieldCodes(exec string) string {
	return fieldCodePattern.ReplaceAllString(exec, "")
}
