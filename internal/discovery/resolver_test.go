package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) []string {
	t.Helper()
	var out []string
	for _, name := range names {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		out = append(out, dir)
	}
	return out
}

func TestResolveDirectories(t *testing.T) {
	root := t.TempDir()
	dirs := mkdirs(t, root, "bin", "sbin", "local", "extra", "ignored")
	bin, sbin, local, extra, ignored := dirs[0], dirs[1], dirs[2], dirs[3], dirs[4]
	missing := filepath.Join(root, "missing")

	pathVar := strings.Join([]string{sbin, bin, missing, "", ignored, bin, local}, ":")
	got := ResolveDirectories(pathVar, []string{extra, bin, missing}, []string{ignored})

	assert.Equal(t, []string{bin, extra, local, sbin}, got)
}

func TestResolveDirectoriesProperties(t *testing.T) {
	root := t.TempDir()
	existing := mkdirs(t, root, "a", "b", "c", "d")
	missing := []string{filepath.Join(root, "x"), filepath.Join(root, "y")}
	all := append(append([]string{}, existing...), missing...)

	// every combination of ignored subsets over a fixed path/extra split
	for mask := 0; mask < 1<<len(all); mask++ {
		var ignored []string
		for i, dir := range all {
			if mask&(1<<i) != 0 {
				ignored = append(ignored, dir)
			}
		}

		got := ResolveDirectories(strings.Join(all[:3], ":"), all[3:], ignored)

		assert.True(t, sort.StringsAreSorted(got))
		seen := map[string]bool{}
		for _, dir := range got {
			require.False(t, seen[dir], "duplicate %s", dir)
			seen[dir] = true
			assert.NotContains(t, ignored, dir)
			assert.NotContains(t, missing, dir)
		}
	}
}

func TestResolveFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PATH", dir)

	got, err := ResolveFromEnv(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, got)
}

func TestResolveFromEnvWithoutPath(t *testing.T) {
	t.Setenv("PATH", "")
	require.NoError(t, os.Unsetenv("PATH"))

	_, err := ResolveFromEnv(nil, nil)
	assert.ErrorIs(t, err, ErrNoSearchPath)
}
