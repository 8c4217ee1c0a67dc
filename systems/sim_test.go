package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// quietConfig turns off spawning and enemy return fire so tests control
// every entity. The tuning globals are restored afterwards.
func quietConfig(t *testing.T) {
	t.Helper()
	spawn, enemy, weapon, player := cfg.Spawn, cfg.Enemy, cfg.Weapon, cfg.Player
	t.Cleanup(func() {
		cfg.Spawn, cfg.Enemy, cfg.Weapon, cfg.Player = spawn, enemy, weapon, player
	})

	cfg.Spawn.BaseAmount = 0
	cfg.Spawn.LevelAmount = 0
	cfg.Enemy.Basic.FireChance = 1 << 30
	cfg.Enemy.Boss.FireChance = 1 << 30
	cfg.Enemy.ShieldedBoss.FireChance = 1 << 30
}

func newTestSim(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	quietConfig(t)
	e := ecs.NewECS(donburi.NewWorld())
	RegisterSimulation(e, rand.New(rand.NewSource(seed)))
	return e
}

// startedSim returns a simulation that has just been reset into play at
// frame zero.
func startedSim(t *testing.T) *ecs.ECS {
	t.Helper()
	e := newTestSim(t, 1)
	step(e, cfg.ActionReset)
	require.Equal(t, cfg.SessionPlaying, GetOrCreateSession(e).State)
	return e
}

// step feeds one frame of input and runs the pipeline once.
func step(e *ecs.ECS, pressed ...cfg.ActionID) {
	GetOrCreateIntent(e).Push(pressed...)
	e.Update()
}

func playerKinematic(e *ecs.ECS) *components.KinematicData {
	return components.Kinematic.Get(getPlayer(e))
}

func spawnEnemy(e *ecs.ECS, kind components.EnemyKind, pos components.Vector, health int) *donburi.Entry {
	entry := factory.CreateEnemy(e, kind, pos, components.Vector{})
	components.Kinematic.Get(entry).Health = health
	return entry
}

func kinematicOf(e *ecs.ECS, entity donburi.Entity) *components.KinematicData {
	return components.Kinematic.Get(e.World.Entry(entity))
}
