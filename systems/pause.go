package systems

import (
	"image/color"

	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay over the playfield.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateSession(ecs).State != cfg.SessionPaused {
		return
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(cfg.Playfield.Width), float32(cfg.Playfield.Height),
		cfg.Pause.OverlayColor,
		false,
	)
	drawCentered(screen, cfg.Pause.Title, fonts.Title, cfg.Playfield.Height/2, cfg.Pause.TextColor)
	drawCentered(screen, cfg.Pause.Hint, fonts.Small, cfg.Playfield.Height/2+32, cfg.Pause.TextColor)
}

// drawCentered draws s horizontally centred on the playfield with its
// baseline at y.
func drawCentered(screen *ebiten.Image, s string, font fonts.FontName, y float64, clr color.Color) {
	face := font.Get()
	width := text.BoundString(face, s).Dx()
	x := (int(cfg.Playfield.Width) - width) / 2
	text.Draw(screen, s, face, x, int(y), clr)
}
