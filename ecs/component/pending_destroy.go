package component

// PendingDestroy marks an entity for removal after the physics step. Marking
// twice is harmless.
type PendingDestroy struct {
	Reason string
}

var PendingDestroyComponent = NewComponent[PendingDestroy]()
