package dibkb

import "context"

// Dump describes one saved page snapshot.
type Dump struct {
	// Name the snapshot was saved under, typically the ASIN.
	Name string

	// Path of the written file.
	Path string

	// ContentHash is a hash of the saved HTML, for spotting identical
	// snapshots across runs.
	ContentHash string
}

// DumpWriter saves fetched page HTML for offline inspection. It is a
// debugging side-channel and takes no part in the extraction contract.
type DumpWriter interface {
	// WriteDump saves the HTML under the given name and reports where it
	// was written.
	WriteDump(ctx context.Context, name, html string) (*Dump, error)
}
