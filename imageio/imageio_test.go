package imageio

import (
	"bytes"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicpen/vicpen/vic"
)

func writeTempFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, data, 0644))
	return path
}

func TestIdentify(t *testing.T) {
	dir, err := ioutil.TempDir("", "imageio")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	fluff := writeTempFile(t, dir, "picture.flf", fluffFixture(1, [8]byte{}))
	raster := writeTempFile(t, dir, "picture.png", pngData.Bytes())
	native := writeTempFile(t, dir, "picture.vicpen", []byte(`{"columns": 1}`))

	format, err := Identify(fluff)
	require.NoError(t, err)
	assert.Equal(t, FormatFluff, format)

	format, err = Identify(raster)
	require.NoError(t, err)
	assert.Equal(t, FormatStandardImage, format)

	format, err = Identify(native)
	require.NoError(t, err)
	assert.Equal(t, FormatUnknown, format)

	_, err = Identify(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLoadImageStandard(t *testing.T) {
	dir, err := ioutil.TempDir("", "imageio")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, image.NewRGBA(image.Rect(0, 0, 16, 8))))
	path := writeTempFile(t, dir, "picture.png", pngData.Bytes())

	m, err := LoadImage(path, FormatStandardImage)
	require.NoError(t, err)
	assert.Equal(t, 2, m.SizeInCells().Width)
	assert.Equal(t, 1, m.SizeInCells().Height)
}

func TestDecodeRaster(t *testing.T) {
	dir, err := ioutil.TempDir("", "imageio")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, image.NewRGBA(image.Rect(0, 0, 3, 5))))
	path := writeTempFile(t, dir, "picture.png", pngData.Bytes())

	src, err := DecodeRaster(path)
	require.NoError(t, err)
	assert.Equal(t, 3, src.Bounds().Dx())
	assert.Equal(t, 5, src.Bounds().Dy())

	garbage := writeTempFile(t, dir, "garbage.png", []byte("plain text"))
	_, err = DecodeRaster(garbage)
	assert.Error(t, err)
}

func TestIsNative(t *testing.T) {
	assert.True(t, IsNative("work/picture.vicpen"))
	assert.True(t, IsNative("PICTURE.VICPEN"))
	assert.False(t, IsNative("picture.png"))
	assert.False(t, IsNative("picture"))
}

func TestExport(t *testing.T) {
	dir, err := ioutil.TempDir("", "imageio")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	m := vic.DefaultImage()
	for _, name := range []string{"out.png", "out.gif", "out.jpg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Export(path, m, vic.ViewNormal))

		f, err := os.Open(path)
		require.NoError(t, err)
		decoded, _, err := image.Decode(f)
		f.Close()
		require.NoError(t, err, name)
		w, h := m.SizeInPixels()
		assert.Equal(t, w, decoded.Bounds().Dx())
		assert.Equal(t, h, decoded.Bounds().Dy())
	}

	// An unknown extension errors without leaving a file behind.
	bad := filepath.Join(dir, "out.bmp")
	assert.Error(t, Export(bad, m, vic.ViewNormal))
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}
