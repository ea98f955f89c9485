package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	t.Parallel()

	d := Default()
	require.Greater(t, d.Len(), 1000)
	assert.Same(t, d, Default())

	for _, w := range []string{"TEST", "CAT", "BILLYCAN", "BANDIT", "INKBLOT", "BAILSMAN", "OX", "ZED"} {
		assert.True(t, d.Contains(w), w)
	}
	assert.False(t, d.Contains("test"), "lookups are case sensitive")
	assert.False(t, d.Contains("QXZ"))
	assert.True(t, strings.Compare(d.Words()[0], d.Words()[1]) < 0, "words are sorted")
}

func TestNewDictionary(t *testing.T) {
	t.Parallel()

	d, err := NewDictionary([]string{"dog", " Cat ", "DOG", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG"}, d.Words())

	_, err = NewDictionary([]string{"can't"})
	require.Error(t, err)
}

func TestReadDictionary(t *testing.T) {
	t.Parallel()

	d, err := ReadDictionary(strings.NewReader("# header\nzebra\n\napple\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("APPLE"))
}

func TestLoadDictionary(t *testing.T) {
	t.Parallel()

	d, err := LoadDictionary("")
	require.NoError(t, err)
	assert.Same(t, Default(), d)

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))
	d, err = LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ONE", "TWO"}, d.Words())

	_, err = LoadDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestNilDictionary(t *testing.T) {
	t.Parallel()

	var d *Dictionary
	assert.False(t, d.Contains("TEST"))
	assert.Zero(t, d.Len())
	assert.Nil(t, d.Words())
}
