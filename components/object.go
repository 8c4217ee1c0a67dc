package components

import (
	cfg "github.com/automoto/starblaster/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's proxy in the collision broad-phase.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase grid.
var Space = donburi.NewComponentType[resolv.Space]()

// NewObject creates a broad-phase proxy for a box centred on pos.
func NewObject(pos Vector, half float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(0, 0, 0, 0, tags...)
	place(obj, pos, half)
	return obj
}

// Sync moves the proxy to pos and resizes it for half, then re-registers it
// with the grid.
func (o *ObjectData) Sync(pos Vector, half float64) {
	if o == nil || o.Object == nil {
		return
	}
	place(o.Object, pos, half)
	o.Update()
}

// place converts a centre and half size to the grid's shifted, padded
// coordinates.
func place(obj *resolv.Object, pos Vector, half float64) {
	r := half + cfg.Collision.Padding
	obj.X = pos.X - r + cfg.Collision.Margin
	obj.Y = pos.Y - r + cfg.Collision.Margin
	obj.W = 2 * r
	obj.H = 2 * r
}
