package catalog

import "sync/atomic"

// Latest tracks fetch generations so a caller issuing overlapping catalog
// calls can discard responses that arrive after a newer request was started.
// Catalog calls are not cancelled when superseded, so without this guard a
// slow stale response can overwrite fresher results.
//
//	gen := guard.Next()
//	page, err := cat.Filter(ctx, q)
//	if !guard.Current(gen) {
//		return // superseded, drop the result
//	}
type Latest struct {
	gen atomic.Uint64
}

// Next starts a new generation and returns its token. Any previously issued
// token stops being current.
func (l *Latest) Next() uint64 {
	return l.gen.Add(1)
}

// Current reports whether the token still belongs to the newest generation.
func (l *Latest) Current(gen uint64) bool {
	return l.gen.Load() == gen
}
