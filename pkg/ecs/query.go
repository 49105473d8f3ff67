package ecs

import "reflect"

// AddComponent 为实体添加类型为 T 的组件
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体上类型为 T 的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, ok := em.GetComponent(id, reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}

	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有类型为 T 的组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// RemoveComponent 移除实体上类型为 T 的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 查询拥有组件 A 的所有实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[A]())
}

// GetEntitiesWith2 查询同时拥有组件 A 和 B 的所有实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[A](), reflect.TypeFor[B]())
}

// GetEntitiesWith3 查询同时拥有组件 A、B 和 C 的所有实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]())
}

// Single 返回唯一一个拥有组件 T 的实体
//
// 没有匹配实体时返回 ErrNoEntities，多于一个时返回 ErrMultipleEntities。
func Single[T any](em *EntityManager) (EntityID, error) {
	entities := GetEntitiesWith1[T](em)
	switch len(entities) {
	case 0:
		return InvalidEntity, ErrNoEntities
	case 1:
		return entities[0], nil
	default:
		return InvalidEntity, ErrMultipleEntities
	}
}
