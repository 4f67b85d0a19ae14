package ecs

import "github.com/milk9111/freefall/ecs/component"

// Query returns the live entities holding every given kind, in the storage
// order of the smallest matching store.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range stores {
		if len(s.entities()) < len(stores[smallest].entities()) {
			smallest = i
		}
	}
	out := make([]Entity, 0, len(stores[smallest].entities()))
outer:
	for _, e := range stores[smallest].entities() {
		for i, s := range stores {
			if i != smallest && !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any live entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || len(s.entities()) == 0 {
		return 0, false
	}
	return s.entities()[0], true
}
