package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		data       []byte
		wantFormat string
		wantErr    error
	}{
		{
			name:       "plain text",
			file:       "notes.txt",
			data:       []byte("Goroutines are cheap. Channels are typed."),
			wantFormat: "txt",
		},
		{
			name:       "pdf by content",
			file:       "paper.bin",
			data:       []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n"),
			wantFormat: "pdf",
		},
		{
			name:    "image rejected",
			file:    "photo.txt",
			data:    []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "too large",
			file:    "big.txt",
			data:    bytes.Repeat([]byte("a"), MaxFileSize+1),
			wantErr: ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := FromBytes(tt.file, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, doc.Metadata.SourceFormat)
			assert.Equal(t, tt.file, doc.Name)
			assert.Equal(t, int64(len(tt.data)), doc.Metadata.FileSizeBytes)
		})
	}
}

func TestFromBytesMetadata(t *testing.T) {
	doc, err := FromBytes("first-day.txt", []byte("Met the team today.\nShipped a fix!"))
	require.NoError(t, err)

	assert.Equal(t, "first-day", doc.Metadata.Title)
	assert.Equal(t, 7, doc.Metadata.WordCount)
	assert.Equal(t, "Met the team today.\nShipped a fix!", doc.Content)
	assert.False(t, doc.Metadata.LoadedAt.IsZero())
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.txt")
	require.NoError(t, os.WriteFile(path, []byte("A story worth sharing."), 0o644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "story.txt", doc.Name)
	assert.Equal(t, path, doc.Metadata.SourcePath)
	assert.Equal(t, "A story worth sharing.", doc.Content)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "file not found")

	_, err = Read(dir)
	assert.ErrorContains(t, err, "is a directory")
}

func TestFileSizeHuman(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := Metadata{FileSizeBytes: tt.size}
			if got := m.FileSizeHuman(); got != tt.want {
				t.Errorf("FileSizeHuman() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	doc := &Document{Content: "one   two\nthree four"}

	if got := doc.Preview(100); got != "one two three four" {
		t.Errorf("Preview(100) = %q", got)
	}
	if got := doc.Preview(7); got != "one two..." {
		t.Errorf("Preview(7) = %q", got)
	}
}
