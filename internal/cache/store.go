package cache

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"menuvroom/internal/discovery"
	"menuvroom/internal/domain"
	"menuvroom/internal/eventbus"
)

// FileName is the cache file inside the cache directory
const FileName = "executables.txt"

// Store reads and writes the catalog cache file
type Store struct {
	dir string
	bus eventbus.EventBus
}

// NewStore creates a store rooted at dir. bus may be nil.
func NewStore(dir string, bus eventbus.EventBus) *Store {
	return &Store{dir: dir, bus: bus}
}

// Path returns the location of the cache file
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// IsStale reports whether the cache must be rebuilt: the file is missing,
// or an existing directory was modified after the file was written.
// Directories that no longer exist are ignored.
func (s *Store) IsStale(dirs []string) (bool, error) {
	info, err := os.Stat(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Cache file %s does not exist", s.Path())
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat cache file: %w", err)
	}

	cachedAt := info.ModTime()
	for _, dir := range dirs {
		dirInfo, err := os.Stat(dir)
		if err != nil {
			continue
		}
		if dirInfo.ModTime().After(cachedAt) {
			log.Printf("Cache file is not up-to-date: %s changed", dir)
			return true, nil
		}
	}

	log.Printf("Cache file is up-to-date")
	return false, nil
}

// Save overwrites the cache file with the catalog
func (s *Store) Save(catalog domain.Catalog) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, errs := Encode(catalog)
	for _, err := range errs {
		log.Printf("Not caching entry: %v", err)
	}

	if err := writeFileAtomic(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to update cache file: %w", err)
	}
	return nil
}

// Load decodes the cache file. Corrupt lines are logged and skipped; the
// number of skipped lines is returned alongside the catalog.
func (s *Store) Load() (domain.Catalog, int, error) {
	f, err := os.Open(s.Path())
	if err != nil {
		return domain.Catalog{}, 0, fmt.Errorf("failed to open cache file: %w", err)
	}
	defer f.Close()

	var (
		entries  []domain.Executable
		rejected int
		lineNo   int
	)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		exe, err := DecodeRecord(line)
		if err != nil {
			log.Printf("Skipping cache line %d: %v", lineNo, err)
			eventbus.Publish(s.bus, eventbus.RecordRejectedEvent{Line: lineNo, Record: line, Err: err})
			rejected++
			continue
		}
		entries = append(entries, exe)
	}
	if err := scanner.Err(); err != nil {
		return domain.Catalog{}, rejected, fmt.Errorf("failed to read cache file: %w", err)
	}

	catalog := domain.NewCatalog(entries)
	eventbus.Publish(s.bus, eventbus.CacheLoadedEvent{Path: s.Path(), Entries: catalog.Len(), Rejected: rejected})
	return catalog, rejected, nil
}

// Rebuild scans the directories and overwrites the cache with the result
func (s *Store) Rebuild(ctx context.Context, dirs []string, scanner discovery.Scanner) (domain.Catalog, error) {
	catalog, err := scanner.Scan(ctx, dirs)
	if err != nil {
		return domain.Catalog{}, err
	}
	if err := s.Save(catalog); err != nil {
		return domain.Catalog{}, err
	}

	log.Printf("Cache rebuilt with %d entries", catalog.Len())
	eventbus.Publish(s.bus, eventbus.CacheRebuiltEvent{Path: s.Path(), Entries: catalog.Len()})
	return catalog, nil
}

// LoadOrRebuild returns the session catalog, rescanning only when the
// cache is stale. The boolean reports whether a rescan happened.
func (s *Store) LoadOrRebuild(ctx context.Context, dirs []string, scanner discovery.Scanner) (domain.Catalog, bool, error) {
	stale, err := s.IsStale(dirs)
	if err != nil {
		return domain.Catalog{}, false, err
	}
	if stale {
		catalog, err := s.Rebuild(ctx, dirs, scanner)
		return catalog, true, err
	}

	catalog, _, err := s.Load()
	return catalog, false, err
}

// writeFileAtomic writes to a temp file in the same directory and renames
// it over the target so readers never see a partial cache.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".executables-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := f.Name()

	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync data to disk: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
