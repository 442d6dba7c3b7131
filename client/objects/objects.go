package objects

import (
	"fmt"

	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
// Objects form a tree; positions are local to the parent.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	GetChild(id string) GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	GetPosition() kinematic.Vector
	SetPosition(position kinematic.Vector)
	GetWorldPosition() kinematic.Vector
}

type BaseObject struct {
	id       string
	zIndex   int
	position kinematic.Vector
	parent   GameObject
	children *childObjects
}

type NewBaseObjectOpts struct {
	// ZIndex is the draw order among siblings.
	ZIndex int
	// Position is the position relative to the parent.
	Position kinematic.Vector
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildObjects(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
		o.position = opts.Position
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

// AddChild initializes the child's tree and attaches it.
func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

// RemoveChild destroys the child's tree and detaches it.
func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) GetPosition() kinematic.Vector {
	return o.position
}

func (o *BaseObject) SetPosition(position kinematic.Vector) {
	o.position = position
}

func (o *BaseObject) GetWorldPosition() kinematic.Vector {
	if o.parent == nil {
		return o.position
	}
	return o.parent.GetWorldPosition().Add(o.position)
}

// childObjects keeps children in insertion order with an id index.
type childObjects struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildObjects() *childObjects {
	return &childObjects{
		idxIDObjects: make(map[string]GameObject),
		ordered:      make([]GameObject, 0),
	}
}

func (c *childObjects) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = obj
	c.ordered = append(c.ordered, obj)
}

func (c *childObjects) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childObjects) Remove(id string) {
	obj, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, o := range c.ordered {
		if o == obj {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

func (c *childObjects) List() []GameObject {
	return c.ordered
}

// InitTree initializes obj and then its children.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of obj before obj itself.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", obj.GetID(), err)
	}
	return nil
}

func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
