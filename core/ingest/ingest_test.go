package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b-section", "2.jpg"))
	touch(t, filepath.Join(root, "b-section", "1.JPG"))
	touch(t, filepath.Join(root, "a-section", "photo.png"))
	touch(t, filepath.Join(root, "a-section", "notes.txt"))
	touch(t, filepath.Join(root, "a-section", ".hidden.jpg"))
	touch(t, filepath.Join(root, "a-section", "nested", "deep.jpg"))
	touch(t, filepath.Join(root, ".thumbnails", "x.jpg"))
	touch(t, filepath.Join(root, "loose.jpg"))

	sections, err := New(nil).Load(root)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, "a-section", sections[0].Name)
	assert.Equal(t, []string{filepath.Join(root, "a-section", "photo.png")}, sections[0].Images)

	assert.Equal(t, "b-section", sections[1].Name)
	assert.Equal(t, []string{
		filepath.Join(root, "b-section", "1.JPG"),
		filepath.Join(root, "b-section", "2.jpg"),
	}, sections[1].Images)
}

func TestLoad_EmptyRoot(t *testing.T) {
	sections, err := New(nil).Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestLoad_SectionWithoutImages(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))

	sections, err := New(nil).Load(root)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "empty", sections[0].Name)
	assert.Empty(t, sections[0].Images)
}

func TestLoad_RelativeRootBecomesAbsolute(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "abc", "1.jpg"))
	t.Chdir(root)

	sections, err := New(nil).Load(".")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Images, 1)
	assert.True(t, filepath.IsAbs(sections[0].Images[0]))
	assert.Equal(t, "1.jpg", filepath.Base(sections[0].Images[0]))
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := New(nil).Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestIsImage(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.JPEG", "b.png", "c.Gif", "d.tiff", "e.webp", "f.bmp"} {
		assert.True(t, IsImage(name), name)
	}
	for _, name := range []string{"README", "notes.txt", "movie.mp4", ".jpg.bak"} {
		assert.False(t, IsImage(name), name)
	}
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".DS_Store"))
	assert.False(t, IsHidden("photo.jpg"))
}
