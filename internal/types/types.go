package types

// EntityID identifies an entity in the registry. Zero is never issued.
type EntityID uint64
