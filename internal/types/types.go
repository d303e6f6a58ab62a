// internal/types/types.go
package types

// EntityID identifies a single entity inside the ECS.
type EntityID uint64
