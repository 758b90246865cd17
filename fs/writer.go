// Package fs provides file-based storage for raw product page dumps.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	dibkb "github.com/dibkb/dibkb-scraper"
)

// ContentHash returns a stable hex digest of the given HTML. Dumps of the
// same page content hash identically, which makes re-fetches easy to spot.
func ContentHash(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

// Ensure Writer implements dibkb.DumpWriter at compile time.
var _ dibkb.DumpWriter = (*Writer)(nil)

// Writer writes raw page dumps as HTML files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDump writes a page dump to disk as <name>.html and returns its
// on-disk metadata. The name is typically an ASIN and must not contain
// path separators.
func (w *Writer) WriteDump(ctx context.Context, name, html string) (*dibkb.Dump, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, dibkb.Errorf(dibkb.EINVALID, "dump name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, dibkb.Errorf(dibkb.EINVALID, "dump name must not contain path separators")
	}
	if html == "" {
		return nil, dibkb.Errorf(dibkb.EINVALID, "dump content is empty")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(w.baseDir, name+".html")
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return nil, err
	}

	return &dibkb.Dump{
		Name:        name,
		Path:        path,
		ContentHash: ContentHash(html),
	}, nil
}
