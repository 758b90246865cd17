package mock

import (
	"context"

	dibkb "github.com/dibkb/dibkb-scraper"
)

var _ dibkb.DumpWriter = (*DumpWriter)(nil)

// DumpWriter is a mock implementation of dibkb.DumpWriter.
type DumpWriter struct {
	WriteDumpFn func(ctx context.Context, name, html string) (*dibkb.Dump, error)
}

func (w *DumpWriter) WriteDump(ctx context.Context, name, html string) (*dibkb.Dump, error) {
	return w.WriteDumpFn(ctx, name, html)
}
