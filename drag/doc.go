// Package drag implements pointer-driven row reordering for tables.
//
// A Controller owns the drag session and indicator registry of one table. The
// host asks it for per-row handlers, feeds pointer and drag events back into
// them, and renders rows from the registry. Nothing in this package renders
// or blocks; every handler runs to completion on the host's event loop.
package drag
