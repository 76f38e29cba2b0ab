package discovery

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"menuvroom/internal/domain"
	"menuvroom/internal/eventbus"
)

const desktopExt = ".desktop"

// Options gates which kinds of entries end up in the catalog
type Options struct {
	IncludeBinaries     bool
	IncludeDesktopFiles bool
}

// Scanner builds a catalog from a list of directories
type Scanner interface {
	Scan(ctx context.Context, dirs []string) (domain.Catalog, error)
}

// scanner is the concrete implementation
type scanner struct {
	opts    Options
	bus     eventbus.EventBus
	readDir func(name string) ([]fs.DirEntry, error)
}

// NewScanner creates a new catalog scanner. bus may be nil.
func NewScanner(opts Options, bus eventbus.EventBus) Scanner {
	return &scanner{
		opts:    opts,
		bus:     bus,
		readDir: os.ReadDir,
	}
}

// Scan lists every directory and classifies its entries. Unreadable
// directories and entries are logged and skipped; only cancellation
// aborts the scan.
func (s *scanner) Scan(ctx context.Context, dirs []string) (domain.Catalog, error) {
	var found []domain.Executable
	for _, dir := range dirs {
		select {
		case <-ctx.Done():
			return domain.Catalog{}, ctx.Err()
		default:
		}
		found = append(found, s.scanDirectory(dir)...)
	}
	return domain.NewCatalog(found), nil
}

// scanDirectory collects executables from a single directory
func (s *scanner) scanDirectory(dir string) []domain.Executable {
	log.Printf("Collecting from dir: %s", dir)

	// on error ReadDir still returns the entries read before it
	entries, err := s.readDir(dir)
	if err != nil && len(entries) == 0 {
		log.Printf("Failed to read entries in %s: %v", dir, err)
		eventbus.Publish(s.bus, eventbus.DirectorySkippedEvent{Dir: dir, Err: err})
		return nil
	}

	executables := make([]domain.Executable, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isDesktop := filepath.Ext(entry.Name()) == desktopExt

		if isDesktop && s.opts.IncludeDesktopFiles {
			if exe, ok := s.readDesktopFile(path); ok {
				executables = append(executables, exe)
			}
			continue
		}
		if !s.opts.IncludeBinaries {
			continue
		}
		if exe, ok := s.readBinary(path, entry); ok {
			executables = append(executables, exe)
		}
	}

	if err != nil {
		log.Printf("Listing of %s ended early: %v", dir, err)
		eventbus.Publish(s.bus, eventbus.DirectorySkippedEvent{Dir: dir, Err: err})
	}
	eventbus.Publish(s.bus, eventbus.DirectoryScannedEvent{Dir: dir, Entries: len(executables)})
	return executables
}

func (s *scanner) readDesktopFile(path string) (domain.Executable, bool) {
	f, err := os.Open(path)
	if err != nil {
		s.skip(path, err.Error())
		return domain.Executable{}, false
	}
	defer f.Close()

	entry, err := ParseDesktopEntry(f)
	if err != nil {
		s.skip(path, err.Error())
		return domain.Executable{}, false
	}
	return domain.NewDesktopEntry(entry.Exec, entry.Name), true
}

// readBinary accepts regular files and symlinks whose own mode carries an
// execute bit. Symlinks are not followed.
func (s *scanner) readBinary(path string, entry fs.DirEntry) (domain.Executable, bool) {
	mode := entry.Type()
	if !mode.IsRegular() && mode&fs.ModeSymlink == 0 {
		return domain.Executable{}, false
	}

	info, err := entry.Info()
	if err != nil {
		s.skip(path, err.Error())
		return domain.Executable{}, false
	}
	if info.Mode().Perm()&0o111 == 0 {
		return domain.Executable{}, false
	}
	return domain.NewBinary(entry.Name()), true
}

func (s *scanner) skip(path, reason string) {
	log.Printf("Skipping %s: %s", path, reason)
	eventbus.Publish(s.bus, eventbus.EntrySkippedEvent{Path: path, Reason: reason})
}
