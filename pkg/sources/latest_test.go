package sources

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLatestExport(t *testing.T) {
	dir := t.TempDir()

	older := filepath.Join(dir, "CoinSnap-Exported-all-2024.csv")
	newer := filepath.Join(dir, "CoinSnap-Exported-all-2025.csv")
	unrelated := filepath.Join(dir, "notes.csv")
	require.NoError(t, os.WriteFile(older, []byte("Issuer\n"), 0644))
	require.NoError(t, os.WriteFile(newer, []byte("Issuer\n"), 0644))
	require.NoError(t, os.WriteFile(unrelated, []byte("Issuer\n"), 0644))

	now := time.Now()
	require.NoError(t, os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))

	found, err := FindLatestExport(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, found)
}

func TestFindLatestExportNoMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\n"), 0644))

	_, err := FindLatestExport(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), dir)
}
