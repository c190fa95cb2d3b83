// Package render defines the narrow contract both output backends implement
// and the shared font configuration injected into them at construction time.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concursalia/filingdocs/internal/doctree"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
)

// Renderer serialises a document tree into one binary format. Renderers
// perform no computation of their own: every value they emit already exists
// in the tree.
type Renderer interface {
	Render(doc *doctree.Document) ([]byte, error)
}

// Error is a fatal rendering failure tagged with the format that produced
// it, so the caller can retry the other format independently.
type Error struct {
	Format valueobject.DocumentFormat
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FontConfig locates the optional TTF assets of the PDF backend. It is
// resolved once at process start and treated as immutable; a missing asset
// degrades to the built-in core fonts instead of failing generation.
type FontConfig struct {
	// Dir holds the font directory; empty means core fonts only.
	Dir string
	// Family is the base name of the TTF file inside Dir, without extension.
	Family string
}

// TTFPath returns the path of the configured font file.
func (c FontConfig) TTFPath() string {
	return filepath.Join(c.Dir, c.Family+".ttf")
}

// Available reports whether the configured font asset exists on disk.
func (c FontConfig) Available() bool {
	if c.Dir == "" || c.Family == "" {
		return false
	}
	info, err := os.Stat(c.TTFPath())
	return err == nil && !info.IsDir()
}
