package objects

import (
	"image/color"

	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelObject is a filled rectangle drawn at its world position.
type LevelObject struct {
	*BaseObject

	w, h float32
	clr  color.Color
}

type NewLevelObjectOptions struct {
	// Position is the position relative to the parent.
	Position kinematic.Vector
	// W is the width of the level object.
	W float32
	// H is the height of the level object.
	H float32
	// Color is the color of the level object.
	Color color.Color
	// ZIndex is the z-index of the level object.
	ZIndex int
}

func NewLevelObject(id string, opts NewLevelObjectOptions) *LevelObject {
	return &LevelObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex:   opts.ZIndex,
			Position: opts.Position,
		}),
		w:   opts.W,
		h:   opts.H,
		clr: opts.Color,
	}
}

func (o *LevelObject) Size() (float32, float32) {
	return o.w, o.h
}

func (o *LevelObject) Draw(screen *ebiten.Image) {
	p := o.GetWorldPosition()
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), o.w, o.h, o.clr, false)
}
