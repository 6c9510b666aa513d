package storage

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestListImages_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.PNG", "notes.txt", "c.jpeg", "clip.mov"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	paths, err := ListImages(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.PNG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpeg"),
	}, paths)
}

func TestListImages_MissingDir(t *testing.T) {
	_, err := ListImages(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestIsVideo(t *testing.T) {
	require.True(t, IsVideo("selfie.MOV"))
	require.True(t, IsVideo("clip.mp4"))
	require.False(t, IsVideo("photo.jpg"))
}

func TestImageFrameSource_SingleFrameThenEOF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	require.NoError(t, imaging.Save(imaging.New(6, 4, color.NRGBA{A: 255}), path))

	src := NewImageFrameSource(path)
	defer src.Close()

	frame, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, 6, frame.Bounds().Dx())

	_, err = src.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestImageFrameSource_MissingFile(t *testing.T) {
	src := NewImageFrameSource(filepath.Join(t.TempDir(), "gone.png"))
	_, err := src.Next()
	require.Error(t, err)
}
