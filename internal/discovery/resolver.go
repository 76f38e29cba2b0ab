package discovery

import (
	"errors"
	"os"
	"sort"
	"strings"
)

// ErrNoSearchPath is returned when PATH is not set at all
var ErrNoSearchPath = errors.New("PATH is not set")

// ResolveFromEnv resolves the scan directories from the process's PATH
func ResolveFromEnv(extra, ignored []string) ([]string, error) {
	pathVar, ok := os.LookupEnv("PATH")
	if !ok {
		return nil, ErrNoSearchPath
	}
	return ResolveDirectories(pathVar, extra, ignored), nil
}

// ResolveDirectories builds the sorted, duplicate-free list of directories
// to scan. Extra directories are merged with the search-path entries and
// filtered the same way: a directory must exist and must not be ignored.
func ResolveDirectories(pathVar string, extra, ignored []string) []string {
	skip := make(map[string]bool, len(ignored))
	for _, dir := range ignored {
		skip[dir] = true
	}

	candidates := append(strings.Split(pathVar, string(os.PathListSeparator)), extra...)

	var dirs []string
	for _, dir := range candidates {
		if dir == "" || skip[dir] {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, dir)
	}

	sort.Strings(dirs)
	return dedupSorted(dirs)
}

func dedupSorted(in []string) []string {
	out := in[:0]
	for i, s := range in {
		if i > 0 && s == out[len(out)-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
