package systems

import (
	"fmt"

	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the game over overlay, or the start prompt before
// the first session.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State != cfg.SessionGameOver && session.State != cfg.SessionNotStarted {
		return
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(cfg.Playfield.Width), float32(cfg.Playfield.Height),
		cfg.GameOver.OverlayColor,
		false,
	)

	mid := cfg.Playfield.Height / 2
	if session.State == cfg.SessionNotStarted {
		drawCentered(screen, cfg.GameOver.IdleHint, fonts.Bold, mid, cfg.GameOver.TextColor)
		return
	}

	drawCentered(screen, cfg.GameOver.Title, fonts.Title, mid-24, cfg.GameOver.TitleColor)
	if pd := getPlayerData(e); pd != nil {
		summary := fmt.Sprintf("Score %d   Kills %d", pd.Score, pd.Kills)
		drawCentered(screen, summary, fonts.Regular, mid+12, cfg.GameOver.TextColor)
	}
	drawCentered(screen, cfg.GameOver.Hint, fonts.Small, mid+40, cfg.GameOver.TextColor)
}
