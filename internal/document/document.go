package document

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Document is an uploaded file decoded as text.
type Document struct {
	Name     string
	Content  string
	Metadata Metadata
}

// Metadata contains document metadata
type Metadata struct {
	Title         string    `json:"title"`
	SourcePath    string    `json:"source_path,omitempty"`
	SourceFormat  string    `json:"source_format"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	WordCount     int       `json:"word_count"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// FileSizeHuman returns human-readable file size
func (m Metadata) FileSizeHuman() string {
	bytes := m.FileSizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}

// Preview returns the first n characters of the content with whitespace
// collapsed.
func (d *Document) Preview(n int) string {
	compact := strings.Join(strings.Fields(d.Content), " ")
	if utf8.RuneCountInString(compact) <= n {
		return compact
	}
	runes := []rune(compact)
	return string(runes[:n]) + "..."
}
