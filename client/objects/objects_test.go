package objects

import (
	"errors"
	"testing"

	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObject struct {
	*BaseObject
	events  *[]string
	initErr error
}

func newRecordingObject(id string, events *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: NewBaseObject(id, nil),
		events:     events,
	}
}

func (o *recordingObject) Init() error {
	*o.events = append(*o.events, "init:"+o.GetID())
	return o.initErr
}

func (o *recordingObject) Destroy() error {
	*o.events = append(*o.events, "destroy:"+o.GetID())
	return nil
}

func TestBaseObject_WorldPosition(t *testing.T) {
	root := NewBaseObject("root", &NewBaseObjectOpts{Position: kinematic.Vector{X: 100, Y: 50}})
	child := NewBaseObject("child", &NewBaseObjectOpts{Position: kinematic.Vector{X: 10, Y: -5}})
	grandchild := NewBaseObject("grandchild", &NewBaseObjectOpts{Position: kinematic.Vector{X: 1, Y: 1}})

	require.NoError(t, root.AddChild("child", child))
	require.NoError(t, child.AddChild("grandchild", grandchild))

	assert.Equal(t, kinematic.Vector{X: 110, Y: 45}, child.GetWorldPosition())
	assert.Equal(t, kinematic.Vector{X: 111, Y: 46}, grandchild.GetWorldPosition())
	assert.Same(t, grandchild, root.GetChild("child").GetChild("grandchild"))
}

func TestBaseObject_AddChildDuplicate(t *testing.T) {
	root := NewBaseObject("root", nil)
	require.NoError(t, root.AddChild("a", NewBaseObject("a", nil)))
	assert.Error(t, root.AddChild("a", NewBaseObject("a", nil)))
	assert.Len(t, root.GetChildren(), 1)
}

func TestBaseObject_AddChildInitError(t *testing.T) {
	events := []string{}
	root := NewBaseObject("root", nil)
	child := newRecordingObject("broken", &events)
	child.initErr = errors.New("boom")

	assert.Error(t, root.AddChild("broken", child))
	assert.Nil(t, root.GetChild("broken"))
}

func TestTreeLifecycleOrder(t *testing.T) {
	events := []string{}
	root := newRecordingObject("root", &events)
	child := newRecordingObject("child", &events)
	require.NoError(t, root.AddChild("child", child))
	events = events[:0]

	require.NoError(t, InitTree(root))
	require.NoError(t, UpdateTree(root))
	require.NoError(t, DestroyTree(root))

	assert.Equal(t, []string{"init:root", "init:child", "destroy:child", "destroy:root"}, events)
}

func TestBaseObject_RemoveChild(t *testing.T) {
	events := []string{}
	root := NewBaseObject("root", nil)
	child := newRecordingObject("child", &events)
	require.NoError(t, root.AddChild("child", child))

	require.NoError(t, root.RemoveChild("child"))
	assert.Nil(t, child.GetParent())
	assert.Empty(t, root.GetChildren())
	assert.Contains(t, events, "destroy:child")

	assert.Error(t, root.RemoveChild("child"))
}

func TestSortedZIndexObject_AddChild(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("top", NewBaseObject("top", &NewBaseObjectOpts{ZIndex: 10})))
	require.NoError(t, root.AddChild("bottom", NewBaseObject("bottom", &NewBaseObjectOpts{ZIndex: -1})))
	require.NoError(t, root.AddChild("middle", NewBaseObject("middle", &NewBaseObjectOpts{ZIndex: 5})))

	ids := []string{}
	for _, c := range root.GetChildren() {
		ids = append(ids, c.GetID())
	}
	assert.Equal(t, []string{"bottom", "middle", "top"}, ids)

	require.NoError(t, root.RemoveChild("middle"))
	assert.Len(t, root.GetChildren(), 2)
}
