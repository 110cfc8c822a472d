// Package document reads uploaded files and hands their text to the
// composer. PDF and Word files are accepted but not parsed: their raw
// bytes are decoded as text.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize is the largest accepted upload.
const MaxFileSize = 5 << 20

var (
	ErrUnsupportedType = errors.New("unsupported file type: use a PDF, TXT, or DOCX file")
	ErrTooLarge        = errors.New("file is larger than 5 MB")
)

type format struct {
	mime string
	ext  string
}

var formats = []format{
	{"text/plain", ".txt"},
	{"application/pdf", ".pdf"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
}

// Read loads the file at path.
func Read(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := FromBytes(filepath.Base(absPath), data)
	if err != nil {
		return nil, err
	}
	doc.Metadata.SourcePath = absPath
	return doc, nil
}

// FromBytes builds a Document from uploaded bytes. The type is sniffed
// from the content; the file name's extension is only consulted when the
// content gives no answer.
func FromBytes(name string, data []byte) (*Document, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: %w", name, ErrTooLarge)
	}

	f, err := detect(name, data)
	if err != nil {
		return nil, err
	}

	content := strings.ToValidUTF8(string(data), "�")
	return &Document{
		Name:    name,
		Content: content,
		Metadata: Metadata{
			Title:         strings.TrimSuffix(name, filepath.Ext(name)),
			SourceFormat:  strings.TrimPrefix(f.ext, "."),
			FileSizeBytes: int64(len(data)),
			WordCount:     len(strings.Fields(content)),
			LoadedAt:      time.Now(),
		},
	}, nil
}

func detect(name string, data []byte) (format, error) {
	mt := mimetype.Detect(data)
	// Text subtypes such as CSV or HTML have text/plain as an ancestor.
	for m := mt; m != nil; m = m.Parent() {
		for _, f := range formats {
			if m.Is(f.mime) {
				return f, nil
			}
		}
	}

	if mt.Is("application/octet-stream") {
		ext := strings.ToLower(filepath.Ext(name))
		for _, f := range formats {
			if f.ext == ext {
				return f, nil
			}
		}
	}

	return format{}, fmt.Errorf("%s (%s): %w", name, mt.String(), ErrUnsupportedType)
}
