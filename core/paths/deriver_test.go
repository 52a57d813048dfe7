package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	derived, err := Derive("/input/section-1/1.jpg", "/output")
	require.NoError(t, err)

	assert.Equal(t, "/input/section-1/1.jpg", derived.Source)
	assert.Equal(t, filepath.FromSlash("/output/section-1/1_small.jpg"), derived.Small)
	assert.Equal(t, filepath.FromSlash("/output/section-1/1_large.jpg"), derived.Large)
}

func TestDerive_SharedParent(t *testing.T) {
	sources := []string{
		"/photos/board meeting/IMG_0001.JPG",
		"/a/b/c/d/photo.v2.png",
		"/in/abc/1.jpeg",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			derived, err := Derive(source, "/out")
			require.NoError(t, err)

			parentName := filepath.Base(filepath.Dir(source))
			assert.Equal(t, filepath.Dir(derived.Small), filepath.Dir(derived.Large))
			assert.Equal(t, filepath.Join("/out", parentName), filepath.Dir(derived.Small))
		})
	}
}

func TestDerive_PreservesExtension(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantSmall string
		wantLarge string
	}{
		{
			name:      "upper case extension",
			source:    "/in/sec/IMG_0001.JPG",
			wantSmall: "IMG_0001_small.JPG",
			wantLarge: "IMG_0001_large.JPG",
		},
		{
			name:      "only last extension is split off",
			source:    "/in/sec/photo.v2.png",
			wantSmall: "photo.v2_small.png",
			wantLarge: "photo.v2_large.png",
		},
		{
			name:      "spaces in names",
			source:    "/in/board meeting/group photo.jpeg",
			wantSmall: "group photo_small.jpeg",
			wantLarge: "group photo_large.jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived, err := Derive(tt.source, "/out")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSmall, filepath.Base(derived.Small))
			assert.Equal(t, tt.wantLarge, filepath.Base(derived.Large))
		})
	}
}

func TestDerive_RelativeOutputRoot(t *testing.T) {
	derived, err := Derive("/in/abc/1.jpg", "out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "abc", "1_small.jpg"), derived.Small)
}

func TestDerive_NormalizesSource(t *testing.T) {
	for _, source := range []string{"/in/abc/1.jpg/", "/in/abc/./1.jpg", "/in//abc/1.jpg"} {
		t.Run(source, func(t *testing.T) {
			derived, err := Derive(source, "/out")
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash("/out/abc/1_small.jpg"), derived.Small)
			assert.Equal(t, filepath.FromSlash("/out/abc/1_large.jpg"), derived.Large)
		})
	}
}

func TestDerive_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{name: "empty path", source: "", wantErr: ErrNoParent},
		{name: "filesystem root", source: "/", wantErr: ErrNoParent},
		{name: "file directly below root", source: "/1.jpg", wantErr: ErrNoParentName},
		{name: "bare file name", source: "1.jpg", wantErr: ErrNoParentName},
		{name: "parent reference", source: "/input/..", wantErr: ErrNoStem},
		{name: "no extension", source: "/input/section/README", wantErr: ErrNoExtension},
		{name: "dot file", source: "/input/section/.env", wantErr: ErrNoExtension},
		{name: "trailing dot", source: "/input/section/photo.", wantErr: ErrNoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.source, "/output")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDerive_ErrorMentionsPath(t *testing.T) {
	_, err := Derive("/1.jpg", "/output")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direct parent for /1.jpg")
}

func TestOutputName(t *testing.T) {
	name, err := OutputName("/input/section-1/1.jpg", SuffixSmall)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("section-1", "1_small.jpg"), name)
}
