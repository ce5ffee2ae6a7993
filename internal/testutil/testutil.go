// Package testutil holds helpers shared by the package tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/osutil"
)

// GoldenTest produces the output to compare and the name of its golden
// file. A nil output asserts that no golden file exists.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches the
// golden file under testdata. Run the tests with -update to rewrite it.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings before comparing
		t.Skip("skipping golden file test in Windows")
	}

	output, name := tc.Output()

	if output == nil {
		_, err := os.Stat(filepath.Join("testdata", name+".golden"))
		require.ErrorIs(t, err, os.ErrNotExist, "expected no output for %s", name)

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, name, output)
}

// CopyFixture copies testdata/name into a fresh temporary directory as
// dstName and returns the path of the copy.
func CopyFixture(t *testing.T, name, dstName string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), dstName)
	require.NoError(t, os.WriteFile(dst, b, 0o600))

	return dst
}
