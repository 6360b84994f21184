package ecs

import "reflect"

// Component is a typed accessor over EntityManager.GetComponent. T is
// the concrete pointer type of the component, e.g.
// *components.ParticleComponent.
func Component[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// EntitiesWith1 returns all entities carrying a component of type T.
func EntitiesWith1[T any](em *EntityManager) []EntityID {
	var t T
	return em.GetEntitiesWith(reflect.TypeOf(t))
}

// EntitiesWith2 returns all entities carrying components of both type
// T1 and type T2.
func EntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	return em.GetEntitiesWith(reflect.TypeOf(t1), reflect.TypeOf(t2))
}
