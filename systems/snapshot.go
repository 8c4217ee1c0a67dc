package systems

import (
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EntityView is everything a renderer needs to draw one entity.
type EntityView struct {
	ID         components.ID
	Position   components.Vector
	Rotation   float32
	Variant    string
	Blend      components.BlendMode
	HalfSize   float64
	Health     int
	Frame      int // sprite-sheet frame, effects only
	FrameCount int
	Trail      []components.Vector // missiles only; a copy
}

// PlayerView is the player's kinematic view plus its progression.
type PlayerView struct {
	EntityView
	components.PlayerData
}

// Telemetry is the scalar session state.
type Telemetry struct {
	RunID      string
	Score      uint32
	Kills      uint32
	Shots      [cfg.WeaponCount]uint64
	Wave       int
	Difficulty int
	Frame      uint64
	State      cfg.SessionState
	Paused     bool
	GameOver   bool
	LightBeam  components.LightBeamData
}

// Snapshot is a read-only copy of the simulation after a frame.
type Snapshot struct {
	Player      PlayerView
	Enemies     []EntityView
	Projectiles []EntityView
	Items       []EntityView
	Effects     []EntityView
	Telemetry   Telemetry
}

// TakeSnapshot copies the current session state in container order. The
// result shares no memory with the world.
func TakeSnapshot(ecs *ecs.ECS) Snapshot {
	session := GetOrCreateSession(ecs)
	var snap Snapshot

	if playerEntry := getPlayer(ecs); playerEntry != nil {
		k := components.Kinematic.Get(playerEntry)
		pd := components.Player.Get(playerEntry)
		snap.Player = PlayerView{
			EntityView: kinematicView(k, cfg.Player.HalfSize),
			PlayerData: *pd,
		}
		snap.Telemetry.Score = pd.Score
		snap.Telemetry.Kills = pd.Kills
		snap.Telemetry.Difficulty = pd.DifficultyLevel()
	}

	snap.Enemies = views(ecs, session.Enemies, func(entry *donburi.Entry, v *EntityView) {
		v.HalfSize = components.Enemy.Get(entry).HalfSize()
	})
	snap.Projectiles = views(ecs, session.Projectiles, func(entry *donburi.Entry, v *EntityView) {
		p := components.Projectile.Get(entry)
		v.HalfSize = p.HalfSize()
		if len(p.Trail) > 0 {
			v.Trail = append([]components.Vector(nil), p.Trail...)
		}
	})
	snap.Items = views(ecs, session.Items, func(_ *donburi.Entry, v *EntityView) {
		v.HalfSize = cfg.Item.HalfSize
	})
	snap.Effects = views(ecs, session.Effects, func(entry *donburi.Entry, v *EntityView) {
		fx := components.TempEffect.Get(entry)
		v.Frame = fx.Frame(v.Health)
		v.FrameCount = fx.MaxFrameCount
		v.HalfSize = float64(fx.FrameWidth) / 2
	})

	snap.Telemetry.RunID = session.RunID
	snap.Telemetry.Shots = session.Telemetry.Shots
	snap.Telemetry.Wave = session.Telemetry.Wave
	snap.Telemetry.Frame = session.Frame
	snap.Telemetry.State = session.State
	snap.Telemetry.Paused = session.State == cfg.SessionPaused
	snap.Telemetry.GameOver = session.State == cfg.SessionGameOver
	snap.Telemetry.LightBeam = session.LightBeam
	return snap
}

func views(ecs *ecs.ECS, list []donburi.Entity, fill func(*donburi.Entry, *EntityView)) []EntityView {
	out := make([]EntityView, 0, len(list))
	for _, e := range list {
		entry := ecs.World.Entry(e)
		v := kinematicView(components.Kinematic.Get(entry), 0)
		fill(entry, &v)
		out = append(out, v)
	}
	return out
}

func kinematicView(k *components.KinematicData, half float64) EntityView {
	return EntityView{
		ID:       k.ID,
		Position: k.Position,
		Rotation: k.Rotation,
		Variant:  k.Variant,
		Blend:    k.Blend,
		HalfSize: half,
		Health:   k.Health,
	}
}
