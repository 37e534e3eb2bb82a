package envelope

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	files := []File{
		{Type: "layout", Name: "main", Config: "", Payload: []byte{1, 2, 3}},
		{Type: "drawable", Name: "icon", Config: "hdpi", Payload: []byte{4, 5}},
	}
	decoded, err := Decode(Encode(files))
	require.NoError(t, err)
	require.Len(t, decoded, len(files))
	for i, f := range files {
		assert.Equal(t, f.Type, decoded[i].Type, "entry %d type", i)
		assert.Equal(t, f.Name, decoded[i].Name, "entry %d name", i)
		assert.Equal(t, f.Config, decoded[i].Config, "entry %d config", i)
		assert.Equal(t, f.Payload, decoded[i].Payload, "entry %d payload", i)
	}
}

func TestEncode_Empty(t *testing.T) {
	decoded, err := Decode(Encode(nil))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDirWriter_WritesLooseFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDirWriter(filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.NoError(t, w.WriteEntry("layout_main.flat", []byte("payload")))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "out", "layout_main.flat"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestZipWriter_WritesZipArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zip")
	w, err := NewZipWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteEntry("layout_main.flat", []byte("payload")))
	require.NoError(t, w.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
