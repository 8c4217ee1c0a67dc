package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRand returns the session RNG. A zero seed means "seed from the clock".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// InitSession creates the session singletons: the session itself, the
// intent snapshot, the broad-phase space and the player. The session starts
// in SessionNotStarted.
func InitSession(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	if entry, ok := components.Session.First(ecs.World); ok {
		return entry
	}

	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		State: cfg.SessionNotStarted,
		Rand:  rng,
	})
	archetypes.Intent.Spawn(ecs)
	factory.CreateSpace(ecs)
	factory.CreatePlayer(ecs)
	return entry
}

// RegisterSimulation creates the session and adds the frame pipeline to ecs
// in its fixed order. Everything after UpdateSession only runs while the
// session is playing.
func RegisterSimulation(ecs *ecs.ECS, rng *rand.Rand) {
	InitSession(ecs, rng)

	ecs.AddSystem(UpdateSession)
	ecs.AddSystem(WithGameplayChecks(UpdatePlayer))
	ecs.AddSystem(WithGameplayChecks(UpdateWeapons))
	ecs.AddSystem(WithGameplayChecks(UpdateSpawner))
	ecs.AddSystem(WithGameplayChecks(UpdateEnemies))
	ecs.AddSystem(WithGameplayChecks(UpdateProjectiles))
	ecs.AddSystem(WithGameplayChecks(UpdateItems))
	ecs.AddSystem(WithGameplayChecks(UpdateTempEffects))
	ecs.AddSystem(WithGameplayChecks(UpdateDeaths))
}

// UpdateSession applies the reset and pause intents, then advances the
// frame counter and the player's invulnerability while playing.
func UpdateSession(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	intent := GetOrCreateIntent(ecs)

	switch session.State {
	case cfg.SessionNotStarted, cfg.SessionGameOver:
		if intent.Action(cfg.ActionReset).JustPressed {
			ResetSession(ecs)
		}
		return
	case cfg.SessionPaused:
		if intent.Action(cfg.ActionPause).JustPressed {
			session.State = cfg.SessionPlaying
		}
		return
	case cfg.SessionPlaying:
		if intent.Action(cfg.ActionPause).JustPressed {
			session.State = cfg.SessionPaused
			return
		}
	}

	session.Frame++
	if pd := getPlayerData(ecs); pd != nil && pd.InvulnFrames > 0 {
		pd.InvulnFrames--
	}
}

// ResetSession clears every entity container, restores the player and
// starts playing from frame zero. Identifiers keep counting up.
func ResetSession(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)

	for _, list := range [][]donburi.Entity{session.Enemies, session.Projectiles, session.Items, session.Effects} {
		for _, e := range list {
			factory.Destroy(ecs, ecs.World.Entry(e))
		}
	}
	session.Enemies = session.Enemies[:0]
	session.Projectiles = session.Projectiles[:0]
	session.Items = session.Items[:0]
	session.Effects = session.Effects[:0]

	if player := getPlayer(ecs); player != nil {
		components.Player.Get(player).Reset()
		components.ResetPlayerBody(components.Kinematic.Get(player))
	}

	session.RunID = uuid.NewString()
	session.Frame = 0
	session.Telemetry = components.TelemetryData{}
	session.LightBeam = components.LightBeamData{}
	session.State = cfg.SessionPlaying
	log.Printf("session %s started (lives=%d)", session.RunID, cfg.Player.StartingLives)
}

// WithGameplayChecks wraps a system to skip execution unless the session
// is playing.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateSession(e).Playing() {
			return
		}
		system(e)
	}
}

// GetOrCreateSession returns the singleton Session component, creating the
// session with a clock-seeded RNG if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = InitSession(ecs, NewRand(cfg.Debug.Seed))
	}
	return components.Session.Get(entry)
}

// GetOrCreateIntent returns the singleton Intent component, creating if
// needed.
func GetOrCreateIntent(ecs *ecs.ECS) *components.IntentData {
	entry, ok := components.Intent.First(ecs.World)
	if !ok {
		entry = archetypes.Intent.Spawn(ecs)
	}
	return components.Intent.Get(entry)
}

// IsPlaying reports whether the simulation advances this frame.
func IsPlaying(ecs *ecs.ECS) bool {
	return GetOrCreateSession(ecs).Playing()
}

func getPlayer(ecs *ecs.ECS) *donburi.Entry {
	session := GetOrCreateSession(ecs)
	if !ecs.World.Valid(session.Player) {
		return nil
	}
	return ecs.World.Entry(session.Player)
}

func getPlayerData(ecs *ecs.ECS) *components.PlayerData {
	player := getPlayer(ecs)
	if player == nil {
		return nil
	}
	return components.Player.Get(player)
}
