package domain

import "sort"

// Executable represents a runnable target discovered on the search path
type Executable struct {
	Command     string // string handed to the process launcher
	DisplayName string // only set for desktop-derived entries
	Desktop     bool
}

// NewBinary creates an executable found as a plain binary
func NewBinary(name string) Executable {
	return Executable{Command: name}
}

// NewDesktopEntry creates an executable parsed from a desktop shortcut
func NewDesktopEntry(command, displayName string) Executable {
	return Executable{
		Command:     command,
		DisplayName: displayName,
		Desktop:     true,
	}
}

// DisplayText is the text shown to the user, and the identity of the entry
func (e Executable) DisplayText() string {
	if e.Desktop {
		return e.DisplayName
	}
	return e.Command
}

// IsDesktopFile reports whether the entry came from a desktop shortcut
func (e Executable) IsDesktopFile() bool {
	return e.Desktop
}

// Equal compares two executables by display text
func (e Executable) Equal(other Executable) bool {
	return e.DisplayText() == other.DisplayText()
}

// Less orders two executables by display text
func (e Executable) Less(other Executable) bool {
	return e.DisplayText() < other.DisplayText()
}

// Catalog is the sorted, deduplicated set of executables for a session.
// It is built once and not mutated afterwards.
type Catalog struct {
	entries []Executable
}

// NewCatalog sorts entries by display text and drops duplicates.
// When two entries share a display text the first one wins.
func NewCatalog(entries []Executable) Catalog {
	sorted := make([]Executable, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	deduped := sorted[:0]
	for i, e := range sorted {
		if i > 0 && e.Equal(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, e)
	}
	return Catalog{entries: deduped}
}

// Len returns the number of entries
func (c Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i
func (c Catalog) At(i int) Executable {
	return c.entries[i]
}

// Entries returns a copy of the catalog entries
func (c Catalog) Entries() []Executable {
	out := make([]Executable, len(c.entries))
	copy(out, c.entries)
	return out
}

// DisplayTexts resolves catalog indices to display texts
func (c Catalog) DisplayTexts(indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, c.entries[i].DisplayText())
	}
	return out
}
