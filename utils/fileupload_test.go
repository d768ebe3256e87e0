package utils

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileHeader builds a multipart.FileHeader; size overrides the reported size
func newFileHeader(t *testing.T, filename string, size int64, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["image"], 1)
	fileHeader := form.File["image"][0]
	fileHeader.Size = size
	return fileHeader
}

func TestValidateImageFile(t *testing.T) {
	content := []byte("fake png content")

	tests := []struct {
		name     string
		filename string
		size     int64
		wantCode string
	}{
		{"valid png", "sherwani.png", int64(len(content)), ""},
		{"uppercase extension", "sherwani.PNG", int64(len(content)), ""},
		{"exactly at limit", "big.png", MaxFileSize, ""},
		{"too large", "large.png", 11 * 1024 * 1024, "FILE_TOO_LARGE"},
		{"jpg", "photo.jpg", int64(len(content)), "INVALID_FILE_FORMAT"},
		{"jpeg", "photo.jpeg", int64(len(content)), "INVALID_FILE_FORMAT"},
		{"gif", "photo.gif", int64(len(content)), "INVALID_FILE_FORMAT"},
		{"no extension", "photo", int64(len(content)), "INVALID_FILE_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageFile(newFileHeader(t, tt.filename, tt.size, content))
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			var fileErr *FileUploadError
			require.ErrorAs(t, err, &fileErr)
			assert.Equal(t, tt.wantCode, fileErr.Code)
			assert.Equal(t, fileErr.Message, err.Error())
		})
	}
}

func TestSaveUploadedFile(t *testing.T) {
	content := []byte("\x89PNG fake image bytes")
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	filename := NewImageFilename()
	require.NoError(t, SaveUploadedFile(newFileHeader(t, "kurta.png", int64(len(content)), content), dir, filename))

	saved, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestNewImageFilename(t *testing.T) {
	first := NewImageFilename()
	second := NewImageFilename()

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".png"))
	assert.True(t, IsValidFilename(first))
}

func TestIsValidFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"abc.png", true},
		{"ABC.PNG", true},
		{"", false},
		{"abc.jpg", false},
		{"../secret.png", false},
		{"dir/abc.png", false},
		{`dir\abc.png`, false},
		{"..png", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidFilename(tt.filename), tt.filename)
	}
}

func TestImageURLRoundTrip(t *testing.T) {
	assert.Equal(t, "", GetImageURL(""))

	url := GetImageURL("abc.png")
	assert.Equal(t, "/api/v1/uploads/abc.png", url)

	filename, ok := FilenameFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "abc.png", filename)

	filename, ok = FilenameFromURL("https://shop.example.com/api/v1/uploads/xyz.png")
	require.True(t, ok)
	assert.Equal(t, "xyz.png", filename)

	_, ok = FilenameFromURL("https://cdn.example.com/gallery/xyz.png")
	assert.False(t, ok)

	_, ok = FilenameFromURL("/api/v1/uploads/../etc/passwd")
	assert.False(t, ok)
}
