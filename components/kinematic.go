package components

import (
	"math"

	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector, or the zero vector for a zero input.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// ID identifies an entity for the lifetime of a session. Zero is never
// assigned and means "no entity".
type ID uint32

const NoID ID = 0

// IDSource hands out monotonically increasing IDs.
type IDSource struct {
	last ID
}

// Next returns a fresh ID.
func (s *IDSource) Next() ID {
	s.last++
	return s.last
}

// BlendMode is a rendering hint; the zero value means no blending.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendAlpha
	BlendAdd
)

// KinematicData is the state every simulated entity shares.
type KinematicData struct {
	ID       ID
	Position Vector
	Velocity Vector
	Health   int
	Rotation float32
	Blend    BlendMode
	Variant  string // visual variant tag for the renderer
}

var Kinematic = donburi.NewComponentType[KinematicData]()

// NewKinematic allocates the next ID from ids and returns an entity with one
// health point, no rotation and no blending.
func NewKinematic(ids *IDSource, pos, velo Vector) KinematicData {
	return KinematicData{
		ID:       ids.Next(),
		Position: pos,
		Velocity: velo,
		Health:   1,
	}
}

func (k KinematicData) WithHealth(health int) KinematicData {
	k.Health = health
	return k
}

func (k KinematicData) WithBlend(mode BlendMode) KinematicData {
	k.Blend = mode
	return k
}

func (k KinematicData) WithRotation(rotation float32) KinematicData {
	k.Rotation = rotation
	return k
}

func (k KinematicData) WithVariant(variant string) KinematicData {
	k.Variant = variant
	return k
}

// Animate integrates one frame of movement and reports whether the entity
// died. Health takes precedence over leaving the playfield. An entity that
// is outside the playfield but heading back in is kept alive.
func (k *KinematicData) Animate() DeathReason {
	k.Position = k.Position.Add(k.Velocity)

	if k.Health <= 0 {
		return DeathKilled
	}
	if outward(k.Position.X, k.Velocity.X, cfg.Playfield.Width) ||
		outward(k.Position.Y, k.Velocity.Y, cfg.Playfield.Height) {
		return DeathRangeOut
	}
	return DeathNone
}

func outward(pos, velo, extent float64) bool {
	return (pos < 0 && velo < 0) || (extent < pos && 0 < velo)
}

// HitsEntity reports whether the two boxes overlap. Touching edges do not
// count.
func (k *KinematicData) HitsEntity(other *KinematicData, ownHalf, otherHalf float64) bool {
	reach := ownHalf + otherHalf
	return math.Abs(k.Position.X-other.Position.X) < reach &&
		math.Abs(k.Position.Y-other.Position.Y) < reach
}
