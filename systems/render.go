package systems

import (
	"image/color"
	"math"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	playfield *ebiten.Image
)

// DrawPlayfield renders the snapshot of every entity onto an offscreen
// playfield image and blits it to the screen with the screen-shake offset.
func DrawPlayfield(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := int(cfg.Playfield.Width), int(cfg.Playfield.Height)
	if playfield == nil || playfield.Bounds().Dx() != w || playfield.Bounds().Dy() != h {
		playfield = ebiten.NewImage(w, h)
	}
	playfield.Clear()

	snap := TakeSnapshot(ecs)
	drawLightBeam(playfield, snap.Telemetry.LightBeam)
	for _, v := range snap.Items {
		vector.DrawFilledCircle(playfield, float32(v.Position.X), float32(v.Position.Y), float32(v.HalfSize), cfg.UI.ItemColor, true)
	}
	for _, v := range snap.Enemies {
		drawEnemy(playfield, v)
	}
	if !snap.Telemetry.GameOver {
		drawPlayer(playfield, snap.Player)
	}
	for _, v := range snap.Projectiles {
		drawProjectile(playfield, v)
	}
	for _, v := range snap.Effects {
		drawEffect(playfield, v)
	}

	dx, dy := ShakeOffset(GetOrCreateScreenShake(ecs.World))
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(dx, dy)
	screen.DrawImage(playfield, drawOp)
}

func drawLightBeam(dst *ebiten.Image, beam components.LightBeamData) {
	if !beam.Active {
		return
	}
	half := float32(cfg.Weapon.LightHalfWidth)
	vector.FillRect(dst, float32(beam.X)-half, 0, 2*half, float32(beam.Bottom), cfg.UI.LightColor, false)
}

func drawPlayer(dst *ebiten.Image, p PlayerView) {
	// Flicker while invulnerable
	if p.InvulnFrames > 0 && p.InvulnFrames%8 < 4 {
		return
	}
	drawBox(dst, p.EntityView, cfg.UI.PlayerColor)
}

func drawEnemy(dst *ebiten.Image, v EntityView) {
	clr := cfg.Enemy.Basic.Color
	switch v.Variant {
	case cfg.Enemy.Boss.Variant:
		clr = cfg.Enemy.Boss.Color
	case cfg.Enemy.ShieldedBoss.Variant:
		clr = cfg.Enemy.ShieldedBoss.Color
		vector.StrokeCircle(dst, float32(v.Position.X), float32(v.Position.Y), float32(v.HalfSize), 2, cfg.UI.ShieldColor, true)
		v.HalfSize = cfg.Enemy.ShieldedBoss.HalfSize
	}
	drawBox(dst, v, clr)
}

func drawProjectile(dst *ebiten.Image, v EntityView) {
	switch v.Variant {
	case "missile":
		drawTrail(dst, v.Trail)
		length := float32(v.HalfSize)
		x, y := float32(v.Position.X), float32(v.Position.Y)
		dx := float32(math.Cos(float64(v.Rotation))) * length
		dy := float32(math.Sin(float64(v.Rotation))) * length
		vector.StrokeLine(dst, x-dx, y-dy, x+dx, y+dy, 3, cfg.UI.MissileColor, true)
	case "ebullet":
		vector.DrawFilledCircle(dst, float32(v.Position.X), float32(v.Position.Y), 3, cfg.UI.EnemyBullet, true)
	default:
		vector.FillRect(dst, float32(v.Position.X)-1, float32(v.Position.Y)-4, 2, 8, cfg.UI.BulletColor, false)
	}
}

// drawTrail fades the missile trail out toward its oldest point.
func drawTrail(dst *ebiten.Image, trail []components.Vector) {
	for i := 1; i < len(trail); i++ {
		alpha := float32(i) / float32(len(trail))
		a, b := trail[i-1], trail[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, fade(cfg.UI.TrailColor, alpha), true)
	}
}

func drawEffect(dst *ebiten.Image, v EntityView) {
	if v.FrameCount <= 0 {
		return
	}
	// Grows and fades with the animation frame
	progress := float32(v.Frame) / float32(v.FrameCount)
	radius := float32(v.HalfSize) * (0.5 + progress)
	alpha := float32(1)
	if v.Blend == components.BlendAdd {
		alpha = 0.75
	}
	alpha *= max(0, 1-progress)
	vector.DrawFilledCircle(dst, float32(v.Position.X), float32(v.Position.Y), radius, fade(cfg.UI.ExplosionColor, alpha), true)
}

func drawBox(dst *ebiten.Image, v EntityView, clr color.Color) {
	half := float32(v.HalfSize)
	vector.FillRect(dst, float32(v.Position.X)-half, float32(v.Position.Y)-half, 2*half, 2*half, clr, false)
}
