// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности в ECS.
// Физический движок хранит его как тег тела вместо указателя на сущность.
type EntityID uint64

// NoEntity is the zero ID; NewEntity never returns it.
const NoEntity EntityID = 0
