package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testRectComponent struct {
	X, Y, W, H float64
}

type testLabelComponent struct {
	Value string
}

type testMarker struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// ID 从 1 开始，0 保留为无效 ID
	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, 2, em.Count())
	assert.False(t, em.Exists(InvalidEntity))
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testRectComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testRectComponent{}))
	require.True(t, found)

	rect := comp.(*testRectComponent)
	assert.Equal(t, 100.0, rect.X)
	assert.Equal(t, 200.0, rect.Y)
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	assert.False(t, HasComponent[*testLabelComponent](em, id))

	AddComponent(em, id, &testLabelComponent{Value: "Play"})
	label, ok := GetComponent[*testLabelComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, "Play", label.Value)

	// 组件以指针存储，修改立即可见
	label.Value = "Quit"
	again, _ := GetComponent[*testLabelComponent](em, id)
	assert.Equal(t, "Quit", again.Value)

	RemoveComponent[*testLabelComponent](em, id)
	assert.False(t, HasComponent[*testLabelComponent](em, id))
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testRectComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	assert.True(t, HasComponent[*testRectComponent](em, id))

	em.RemoveMarkedEntities()
	assert.False(t, em.Exists(id))
	assert.Empty(t, GetEntitiesWith1[*testRectComponent](em))
}

func TestGetEntitiesWithIsOrderedByCreation(t *testing.T) {
	em := NewEntityManager()

	var created []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testRectComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testLabelComponent{})
		}
		created = append(created, id)
	}

	assert.Equal(t, created, GetEntitiesWith1[*testRectComponent](em))

	both := GetEntitiesWith2[*testRectComponent, *testLabelComponent](em)
	require.Len(t, both, 10)
	for i := 1; i < len(both); i++ {
		assert.Less(t, both[i-1], both[i])
	}

	assert.Empty(t, GetEntitiesWith3[*testRectComponent, *testLabelComponent, testMarker](em))
}

func TestSingle(t *testing.T) {
	em := NewEntityManager()

	_, err := Single[testMarker](em)
	assert.ErrorIs(t, err, ErrNoEntities)

	id := em.CreateEntity()
	AddComponent(em, id, testMarker{})
	found, err := Single[testMarker](em)
	require.NoError(t, err)
	assert.Equal(t, id, found)

	other := em.CreateEntity()
	AddComponent(em, other, testMarker{})
	_, err = Single[testMarker](em)
	assert.ErrorIs(t, err, ErrMultipleEntities)
}

func TestHierarchy(t *testing.T) {
	em := NewEntityManager()
	root := em.CreateEntity()
	a := em.CreateEntity()
	b := em.CreateEntity()
	grandChild := em.CreateEntity()

	em.SetParent(a, root)
	em.SetParent(b, root)
	em.SetParent(grandChild, a)

	assert.Equal(t, []EntityID{a, b}, em.Children(root))
	assert.Equal(t, root, em.Parent(a))
	assert.Equal(t, InvalidEntity, em.Parent(root))

	// 重新挂载时从旧父实体上移除
	em.SetParent(b, a)
	assert.Equal(t, []EntityID{a}, em.Children(root))
	assert.Equal(t, []EntityID{grandChild, b}, em.Children(a))
}

func TestDestroyRecursive(t *testing.T) {
	em := NewEntityManager()
	unrelated := em.CreateEntity()
	root := em.CreateEntity()
	child := em.CreateEntity()
	grandChild := em.CreateEntity()
	em.SetParent(child, root)
	em.SetParent(grandChild, child)

	em.DestroyRecursive(root)
	em.RemoveMarkedEntities()

	assert.False(t, em.Exists(root))
	assert.False(t, em.Exists(child))
	assert.False(t, em.Exists(grandChild))
	assert.True(t, em.Exists(unrelated))
	assert.Equal(t, 1, em.Count())
}

func TestDestroyParentOrphansChildren(t *testing.T) {
	em := NewEntityManager()
	root := em.CreateEntity()
	child := em.CreateEntity()
	em.SetParent(child, root)

	em.DestroyEntity(root)
	em.RemoveMarkedEntities()

	require.True(t, em.Exists(child))
	assert.Equal(t, InvalidEntity, em.Parent(child))
}
