// Package tools implements the nine MCP tools that expose sizzle's
// pipeline stages to external callers (spec.md §6.5). Every tool is a
// thin JSON adapter over the pure internal packages — no tool does any
// computation of its own beyond request parsing and response shaping.
package tools

import (
	"github.com/sizzlehq/sizzle/internal/catalog"
)

// deps bundles the catalog every tool resolves against. Tools hold a
// *catalog.Catalog directly rather than a client/factory (contrast the
// reference MCP server's per-request Emergent client): the catalog is
// immutable, process-wide, read-only state, not a remote connection.
type deps struct {
	cat *catalog.Catalog
}
