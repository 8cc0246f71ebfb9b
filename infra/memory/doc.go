// Package memory provides the low-level primitives for safe memory
// reuse under concurrency: epoch-based reclamation domains, guard
// pinning, a lock-free garbage list, and typed object pools.
//
// The memory package is dependency-free and forms the foundation the
// lock-free stack builds on: nodes unlinked from a stack are retired
// here and returned to their pool only once no pinned guard could
// still hold a reference to them.
package memory
