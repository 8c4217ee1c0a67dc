package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShooterScene runs a play session.
type ShooterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	autoStart    bool
	once         sync.Once
}

// NewShooterScene creates the play scene. With autoStart the first session
// begins immediately instead of waiting for the reset intent.
func NewShooterScene(sc SceneChanger, autoStart bool) *ShooterScene {
	return &ShooterScene{sceneChanger: sc, autoStart: autoStart}
}

func (ss *ShooterScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *ShooterScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must be polled before the session sees it
	ecs.AddSystem(systems.UpdateInput)
	systems.RegisterSimulation(ecs, systems.NewRand(cfg.Debug.Seed))

	// Presentation
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))
	systems.EntityDied.Subscribe(ecs.World, systems.ShakeOnPlayerHit)

	ecs.AddRenderer(cfg.Default, systems.DrawPlayfield)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawGameOver)

	ss.ecs = ecs

	if ss.autoStart {
		systems.ResetSession(ss.ecs)
	}
}
