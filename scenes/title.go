package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/starblaster/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScene shows the title screen until the player starts a game.
type TitleScene struct {
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldStart  bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.titleUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ts.shouldStart = true
	}
	if ts.shouldStart {
		ts.sceneChanger.ChangeScene(NewShooterScene(ts.sceneChanger, true))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.titleUI = ui.NewTitleUI(
		func() { ts.shouldStart = true },
		func() { os.Exit(0) },
	)
}
