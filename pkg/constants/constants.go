// Package constants provides shared constants used throughout the storefront
// codebase, including defaults for the simulated data source, pagination,
// storage namespaces, and file permissions.
package constants

import "time"

// Data source constants control the simulated network behavior of the
// product catalog.
const (
	// DefaultLatency is the fixed simulated delay applied to every catalog call.
	DefaultLatency = 500 * time.Millisecond
)

// Pagination constants define the defaults of the filter engine.
const (
	// DefaultPageSize is the number of products on a result page when the
	// query does not specify one.
	DefaultPageSize = 8
)

// Store constants define store capacities and persistence namespaces.
const (
	// MaxCompareProducts is the capacity of the comparison store.
	MaxCompareProducts = 2

	// CartStorageKey is the durable storage namespace for the cart store.
	CartStorageKey = "cart-storage"

	// CompareStorageKey is the durable storage namespace for the compare store.
	CompareStorageKey = "compare-storage"

	// DefaultDataDirName is the per-user directory holding durable store
	// snapshots when no explicit data dir is configured.
	DefaultDataDirName = ".storefront"
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
