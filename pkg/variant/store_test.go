package variant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInit(t *testing.T) {
	var s = NewStore()
	s.Init()

	assert.Equal(t,
		[]string{"ataxx", "chess", "fairy", "flipello", "flipersi", "normal"},
		s.GetKeys())

	// "normal" is a second chess instance, not an alias.
	chess, _ := s.Get("chess")
	normal, _ := s.Get("normal")
	require.NotSame(t, chess, normal)
	assert.Equal(t, chess, normal)
}

func TestStoreAddConcludes(t *testing.T) {
	var s = NewStore()
	s.Add("plain", New())

	var v, ok = s.Get("plain")
	require.True(t, ok)
	assert.NotZero(t, v.NnueDimensions)
	assert.Equal(t, King, v.NnueKing)
}

func TestStoreClearAll(t *testing.T) {
	var s = NewStore()
	s.Init()
	s.ClearAll()
	assert.Empty(t, s.GetKeys())

	// A cleared store can be repopulated.
	s.Init()
	assert.Len(t, s.GetKeys(), 6)
}

func TestLoadFile(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, "variants.ini")
	var cfg = "# custom variants\n[tiny]\nmaxRank = 5\nmaxFile = 5\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	var s = NewStore()
	s.Init()
	require.NoError(t, s.LoadFile(path, nil))

	var v, ok = s.Get("tiny")
	require.True(t, ok)
	assert.Equal(t, 4, v.MaxRank)
	assert.Equal(t, 4, v.MaxFile)
}

func TestLoadFileUnreadable(t *testing.T) {
	var s = NewStore()
	s.Init()
	var before = s.GetKeys()

	var err = s.LoadFile(filepath.Join(t.TempDir(), "missing.ini"), nil)
	require.Error(t, err)
	assert.Equal(t, before, s.GetKeys())
}

func TestLoadFileEmptyPath(t *testing.T) {
	var s = NewStore()
	require.NoError(t, s.LoadFile("", nil))
	require.NoError(t, s.LoadFile("<empty>", nil))
}

func TestCheckFileLeavesNoResidue(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, "variants.ini")
	var cfg = "[custom]\nmaxRank = 6\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	var s = NewStore()
	s.Init()
	var before = s.GetKeys()
	require.NoError(t, s.CheckFile(path, nil))
	assert.Equal(t, before, s.GetKeys())
}
