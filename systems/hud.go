package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 12
	hudLineHeight = 20
)

// UpdateHUD advances the wave banner and the screen shake. It is a
// presentation system and is registered separately from the simulation.
func UpdateHUD(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	banner := GetOrCreateBanner(ecs)

	wave := session.Telemetry.Wave + 1
	if wave != banner.Wave || session.Frame == 0 {
		banner.Wave = wave
		banner.Text = fmt.Sprintf("WAVE %d", wave)
		banner.Fade = gween.New(1, 0, float32(cfg.UI.BannerFrames), ease.InQuad)
		banner.Alpha = 1
	}
	if banner.Fade != nil {
		alpha, done := banner.Fade.Update(1)
		banner.Alpha = alpha
		if done {
			banner.Fade = nil
			banner.Alpha = 0
		}
	}

	updateScreenShake(GetOrCreateScreenShake(ecs.World))
}

// updateScreenShake decays the shake intensity one frame along its tween.
func updateScreenShake(shake *components.ScreenShakeData) {
	if shake.Decay == nil {
		return
	}
	shake.Elapsed++
	intensity, done := shake.Decay.Update(1)
	shake.Intensity = float64(intensity)
	if done {
		shake.Decay = nil
		shake.Intensity = 0
	}
}

// TriggerScreenShake starts a screen shake unless a stronger one is running.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	shake := GetOrCreateScreenShake(w)
	if shake.Decay != nil && shake.Intensity >= intensity {
		return
	}
	shake.Decay = gween.New(float32(intensity), 0, float32(duration), ease.OutQuad)
	shake.Intensity = intensity
	shake.Elapsed = 0
}

// ShakeOnPlayerHit is an EntityDied subscriber that shakes the screen when
// an enemy projectile reaches the player.
func ShakeOnPlayerHit(w donburi.World, ev EntityDiedEvent) {
	if ev.Reason != components.DeathHitPlayer {
		return
	}
	TriggerScreenShake(w, cfg.ScreenShake.PlayerHitIntensity, cfg.ScreenShake.PlayerHitDuration)
}

// ShakeOffset is the playfield translation for the current shake.
func ShakeOffset(shake *components.ScreenShakeData) (float64, float64) {
	if shake.Intensity == 0 {
		return 0, 0
	}
	t := float64(shake.Elapsed)
	return math.Sin(t*1.1) * shake.Intensity, math.Cos(t*1.3) * shake.Intensity
}

// DrawHUD renders the telemetry panel to the right of the playfield and the
// wave banner over it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	snap := TakeSnapshot(ecs)
	t := snap.Telemetry
	p := snap.Player

	panelX := float32(cfg.Playfield.Width)
	vector.FillRect(screen,
		panelX, 0,
		float32(cfg.C.Width)-panelX, float32(cfg.C.Height),
		cfg.UI.PanelColor, false)

	face := fonts.Regular.Get()
	x := int(panelX) + hudMargin
	y := hudMargin + hudLineHeight
	line := func(s string) {
		text.Draw(screen, s, face, x, y, cfg.UI.PanelTextColor)
		y += hudLineHeight
	}

	line(fmt.Sprintf("Score  %d", t.Score))
	line(fmt.Sprintf("Kills  %d", t.Kills))
	line(fmt.Sprintf("Lives  %d", p.Lives))
	line(fmt.Sprintf("Power  %d (Lv %d)", p.Power, p.PlayerData.PowerLevel()))
	line(fmt.Sprintf("Wave   %d", t.Wave+1))
	line(fmt.Sprintf("Diff   %d", t.Difficulty))
	y += hudLineHeight / 2
	for w := cfg.WeaponKind(0); w < cfg.WeaponCount; w++ {
		marker := "  "
		if w == p.Weapon {
			marker = "> "
		}
		line(fmt.Sprintf("%s%-8s %d", marker, w, t.Shots[w]))
	}
	y += hudLineHeight / 2
	line(fmt.Sprintf("Enemies %d", len(snap.Enemies)))
	line(fmt.Sprintf("Shots   %d", len(snap.Projectiles)))

	drawBanner(ecs, screen)
}

func drawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPlaying(ecs) {
		return
	}
	banner := GetOrCreateBanner(ecs)
	if banner.Alpha <= 0 {
		return
	}
	face := fonts.Title.Get()
	clr := fade(cfg.UI.PanelTextColor, banner.Alpha)

	width := text.BoundString(face, banner.Text).Dx()
	x := (int(cfg.Playfield.Width) - width) / 2
	text.Draw(screen, banner.Text, face, x, int(cfg.Playfield.Height)/3, clr)
}

// fade scales every channel of a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// GetOrCreateBanner returns the singleton Banner component, creating if needed.
func GetOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = archetypes.Banner.Spawn(ecs)
	}
	return components.Banner.Get(entry)
}

// GetOrCreateScreenShake returns the singleton ScreenShake component,
// creating if needed.
func GetOrCreateScreenShake(w donburi.World) *components.ScreenShakeData {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.ScreenShake))
	}
	return components.ScreenShake.Get(entry)
}
