package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/nchub/internal/database"
	"github.com/example/nchub/internal/store"
	"github.com/example/nchub/pkg/models"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	backend, err := database.NewLocal(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	st := store.New(backend, zap.NewNop())
	st.Hydrate(context.Background())
	return st
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terms.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportTermsFromCSV(t *testing.T) {
	st := newTestStore(t)
	path := writeCSV(t, `Term,Definition,Framework,Difficulty
Rewilding,Large-scale restoration letting natural processes lead,TNFD,intermediate
Leakage,Displacement of emissions outside a project boundary,Woodland Carbon Code,advanced
`)

	cfg := DefaultImportConfig()
	cfg.FilePath = path

	result, err := ImportTerms(context.Background(), st, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	terms := st.CustomTerms()
	require.Len(t, terms, 2)
}

func TestImportSkipsDuplicatesAndBlanks(t *testing.T) {
	st := newTestStore(t)
	saved := st.AddCustomTerm(context.Background(), models.CustomTerm{Term: "Rewilding", Definition: "existing"})
	require.NotNil(t, saved)

	path := writeCSV(t, `Term,Definition
rewilding,Duplicate entry with different casing
,Row with no term
Leakage,
Leakage again,Fine row
`)

	cfg := DefaultImportConfig()
	cfg.FilePath = path

	result, err := ImportTerms(context.Background(), st, cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 3, result.Skipped)
	require.Len(t, result.Errors, 1)

	assert.Len(t, st.CustomTerms(), 2)
}

func TestImportMissingFile(t *testing.T) {
	st := newTestStore(t)
	cfg := DefaultImportConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := ImportTerms(context.Background(), st, cfg)
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 3, columnToIndex("D"))
	assert.Equal(t, 26, columnToIndex("AA"))
}
