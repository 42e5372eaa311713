// Package storage provides the durable client-side key-value persistence the
// cart and compare stores snapshot themselves into. Each namespace holds one
// serialized snapshot; writes are best-effort and callers are expected to
// log rather than propagate failures.
package storage

// Store is namespaced snapshot persistence. A missing namespace is not an
// error: Load reports it with ok == false.
type Store interface {
	// Load returns the snapshot stored under namespace, if any.
	Load(namespace string) (data []byte, ok bool, err error)

	// Save replaces the snapshot stored under namespace.
	Save(namespace string, data []byte) error

	// Delete removes the snapshot stored under namespace, if any.
	Delete(namespace string) error
}
