package cache

import (
	"errors"
	"fmt"
	"strings"

	"menuvroom/internal/domain"
)

const (
	desktopPrefix = "D:"
	separator     = " - "
)

// ErrCorruptRecord is returned for cache lines that cannot be decoded
var ErrCorruptRecord = errors.New("corrupt cache record")

// ErrUnencodable is returned for entries that cannot be stored on one line
var ErrUnencodable = errors.New("entry cannot be encoded")

var (
	nameEscaper   = strings.NewReplacer(`\`, `\\`, `-`, `\-`)
	nameUnescaper = strings.NewReplacer(`\\`, `\`, `\-`, `-`)
)

// EncodeRecord renders a single executable as a cache line
func EncodeRecord(e domain.Executable) (string, error) {
	if strings.ContainsAny(e.Command, "\r\n") || strings.ContainsAny(e.DisplayName, "\r\n") {
		return "", fmt.Errorf("%w: %q contains a line break", ErrUnencodable, e.DisplayText())
	}
	if !e.IsDesktopFile() {
		return e.Command, nil
	}
	return desktopPrefix + nameEscaper.Replace(e.DisplayName) + separator + e.Command, nil
}

// DecodeRecord parses a single cache line
func DecodeRecord(line string) (domain.Executable, error) {
	if rest, ok := strings.CutPrefix(line, desktopPrefix); ok {
		name, command, found := strings.Cut(rest, separator)
		if !found || name == "" {
			return domain.Executable{}, fmt.Errorf("%w: desktop entry %q", ErrCorruptRecord, line)
		}
		return domain.NewDesktopEntry(command, nameUnescaper.Replace(name)), nil
	}

	if line == "" || strings.Contains(line, " ") {
		return domain.Executable{}, fmt.Errorf("%w: binary entry %q", ErrCorruptRecord, line)
	}
	return domain.NewBinary(line), nil
}

// Encode renders the catalog as newline-joined records. Entries that
// cannot be encoded are returned separately and left out of the data.
func Encode(catalog domain.Catalog) ([]byte, []error) {
	var errs []error
	lines := make([]string, 0, catalog.Len())
	for _, e := range catalog.Entries() {
		line, err := EncodeRecord(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	return []byte(strings.Join(lines, "\n")), errs
}
