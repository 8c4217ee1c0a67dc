package systems

import (
	"image/color"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broad-phase proxy when collider debugging is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	margin := cfg.Collision.Margin

	for _, obj := range space.Objects() {
		x := obj.X - margin
		y := obj.Y - margin

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
