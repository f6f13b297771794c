package source

// ModuleID identifies a compilation unit. Every interned entry is tagged
// with the module that produced it; eviction operates at this granularity.
type ModuleID uint32

// BuiltinModule owns prelude entries that survive for the whole session.
// Callers must never evict it.
const BuiltinModule ModuleID = 0

// SourceID identifies an interned source file path.
type SourceID uint32
