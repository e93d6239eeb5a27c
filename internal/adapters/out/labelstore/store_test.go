package labelstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"fulfillment/internal/adapters/out/labelstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePdftk writes a shell script that concatenates its input files into
// the output path named after "cat output", mimicking the merge tool.
func fakePdftk(t *testing.T) string {
	t.Helper()
	script := `#!/bin/sh
inputs=""
while [ "$1" != "cat" ]; do
  inputs="$inputs $1"
  shift
done
shift # cat
shift # output
cat $inputs > "$1"
`
	path := filepath.Join(t.TempDir(), "pdftk")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// failingPdftk writes a shell script that reports an error.
func failingPdftk(t *testing.T) string {
	t.Helper()
	script := `#!/bin/sh
echo "Error: Unable to find file." >&2
exit 1
`
	path := filepath.Join(t.TempDir(), "pdftk")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func Test_Store_Save_WritesLabelNamedByOrder(t *testing.T) {
	// Arrange
	tempDir := filepath.Join(t.TempDir(), "labels-temp")
	store := labelstore.NewStore(tempDir, t.TempDir(), "pdftk")

	// Act
	path, err := store.Save("SO-100", []byte("%PDF-1.4 label"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "SO-100.pdf"), path)
	saved, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "%PDF-1.4 label", string(saved))
}

func Test_Store_Merge_ConcatenatesIntoRunArchive(t *testing.T) {
	// Arrange
	tempDir := t.TempDir()
	archiveDir := t.TempDir()
	store := labelstore.NewStore(tempDir, archiveDir, fakePdftk(t))

	first, err := store.Save("SO-100", []byte("first-"))
	require.NoError(t, err)
	second, err := store.Save("SO-101", []byte("second"))
	require.NoError(t, err)

	// Act
	mergedPath, err := store.Merge(t.Context(), "1503900000", "batch", []string{first, second})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(archiveDir, "1503900000", "batch.pdf"), mergedPath)
	merged, readErr := os.ReadFile(mergedPath)
	require.NoError(t, readErr)
	assert.Equal(t, "first-second", string(merged))
}

func Test_Store_Merge_ToolFailure(t *testing.T) {
	// Arrange
	store := labelstore.NewStore(t.TempDir(), t.TempDir(), failingPdftk(t))

	// Act
	_, err := store.Merge(t.Context(), "1503900000", "batch", []string{"missing.pdf"})

	// Assert
	var merge *labelstore.MergeError
	require.ErrorAs(t, err, &merge)
	assert.Contains(t, merge.Output, "Unable to find file")
}

func Test_Store_Merge_NoLabels(t *testing.T) {
	// Arrange
	store := labelstore.NewStore(t.TempDir(), t.TempDir(), "pdftk")

	// Act
	_, err := store.Merge(t.Context(), "1503900000", "batch", nil)

	// Assert
	var merge *labelstore.MergeError
	assert.ErrorAs(t, err, &merge)
}

func Test_Store_Archive_MovesLabelsIntoLabelArchive(t *testing.T) {
	// Arrange
	archiveDir := t.TempDir()
	store := labelstore.NewStore(t.TempDir(), archiveDir, "pdftk")

	first, err := store.Save("SO-100", []byte("a"))
	require.NoError(t, err)
	second, err := store.Save("SO-101", []byte("b"))
	require.NoError(t, err)

	// Act
	err = store.Archive("1503900000", []string{first, second})

	// Assert
	require.NoError(t, err)
	assert.NoFileExists(t, first)
	assert.NoFileExists(t, second)
	assert.FileExists(t, filepath.Join(archiveDir, "1503900000", "label_archive", "SO-100.pdf"))
	assert.FileExists(t, filepath.Join(archiveDir, "1503900000", "label_archive", "SO-101.pdf"))
}

func Test_Store_Archive_ReportsFailedMovesButContinues(t *testing.T) {
	// Arrange
	archiveDir := t.TempDir()
	store := labelstore.NewStore(t.TempDir(), archiveDir, "pdftk")

	saved, err := store.Save("SO-101", []byte("b"))
	require.NoError(t, err)
	missing := filepath.Join(t.TempDir(), "SO-100.pdf")

	// Act
	err = store.Archive("1503900000", []string{missing, saved})

	// Assert
	var archive *labelstore.ArchiveError
	require.ErrorAs(t, err, &archive)
	assert.Equal(t, missing, archive.Path)
	assert.FileExists(t, filepath.Join(archiveDir, "1503900000", "label_archive", "SO-101.pdf"))
}
