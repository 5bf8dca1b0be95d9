// Package model defines the data structures shared by the test generation pipeline.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Ext returns the final extension of the path including the leading dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// SourceFile is a discovered source file with its decoded content.
type SourceFile struct {
	Path      Path
	Content   string
	Extension string
}

// NewSourceFile builds a SourceFile, deriving the extension from the path.
func NewSourceFile(path Path, content string) SourceFile {
	return SourceFile{
		Path:      path,
		Content:   content,
		Extension: path.Ext(),
	}
}

// LanguageHint returns the extension without the dot, used to tag the code fence
// sent to the oracle.
func (s SourceFile) LanguageHint() string {
	return strings.TrimPrefix(s.Extension, ".")
}
