package ecs

import (
	"errors"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 保留为无效实体 ID
const InvalidEntity EntityID = 0

var (
	// ErrNoEntities 查询单个实体时没有匹配的实体
	ErrNoEntities = errors.New("ecs: no entity matches the query")
	// ErrMultipleEntities 查询单个实体时匹配到多个实体
	ErrMultipleEntities = errors.New("ecs: more than one entity matches the query")
)

type entityRecord struct {
	components map[reflect.Type]any
	parent     EntityID
	children   []EntityID
}

// EntityManager 管理所有实体、组件以及实体之间的父子关系
//
// 查询结果按实体 ID 升序返回（即创建顺序），
// 这样布局和渲染的顺序在每一帧都是稳定的。
type EntityManager struct {
	nextID   uint64
	entities *intmap.Map[EntityID, *entityRecord]
	// 存活实体 ID，按创建顺序排列
	alive []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          intmap.New[EntityID, *entityRecord](64),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities.Put(id, &entityRecord{components: make(map[reflect.Type]any)})
	em.alive = append(em.alive, id)
	return id
}

// Exists 检查实体是否存活
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.entities.Get(id)
	return ok
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	return len(em.alive)
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// DestroyRecursive 标记实体及其所有子孙实体待删除
func (em *EntityManager) DestroyRecursive(id EntityID) {
	record, ok := em.entities.Get(id)
	if !ok {
		return
	}

	for _, child := range record.children {
		em.DestroyRecursive(child)
	}
	em.DestroyEntity(id)
}

// AddComponent 为实体添加组件
// 同一类型的组件只保留最后一次添加的实例
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if record, ok := em.entities.Get(id); ok {
		record.components[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if record, ok := em.entities.Get(id); ok {
		delete(record.components, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	record, ok := em.entities.Get(id)
	if !ok {
		return nil, false
	}

	comp, found := record.components[componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// SetParent 将 child 挂到 parent 下，子实体按挂载顺序排列
func (em *EntityManager) SetParent(child, parent EntityID) {
	childRecord, ok := em.entities.Get(child)
	if !ok {
		return
	}
	parentRecord, ok := em.entities.Get(parent)
	if !ok {
		return
	}

	if childRecord.parent != InvalidEntity {
		em.detach(child, childRecord.parent)
	}

	childRecord.parent = parent
	parentRecord.children = append(parentRecord.children, child)
}

// Parent 返回实体的父实体，没有父实体时返回 InvalidEntity
func (em *EntityManager) Parent(id EntityID) EntityID {
	if record, ok := em.entities.Get(id); ok {
		return record.parent
	}
	return InvalidEntity
}

// Children 返回实体的子实体（按挂载顺序）
func (em *EntityManager) Children(id EntityID) []EntityID {
	if record, ok := em.entities.Get(id); ok {
		return slices.Clone(record.children)
	}
	return nil
}

func (em *EntityManager) detach(child, parent EntityID) {
	parentRecord, ok := em.entities.Get(parent)
	if !ok {
		return
	}
	parentRecord.children = slices.DeleteFunc(parentRecord.children, func(id EntityID) bool {
		return id == child
	})
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}

	for _, id := range em.entitiesToDestroy {
		record, ok := em.entities.Get(id)
		if !ok {
			continue
		}

		if record.parent != InvalidEntity {
			em.detach(id, record.parent)
		}

		// 子实体如果没有一起删除，则变为根实体
		for _, child := range record.children {
			if childRecord, ok := em.entities.Get(child); ok {
				childRecord.parent = InvalidEntity
			}
		}

		em.entities.Del(id)
	}

	em.alive = slices.DeleteFunc(em.alive, func(id EntityID) bool {
		return !em.Exists(id)
	})
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按ID升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.alive {
		record, ok := em.entities.Get(id)
		if !ok {
			continue
		}

		hasAll := true
		for _, ct := range componentTypes {
			if _, found := record.components[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
