package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPickEnemyKind(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, ok := pickEnemyKind(rng, [components.EnemyKindCount]int{})
	assert.False(t, ok)

	var weights [components.EnemyKindCount]int
	weights[components.EnemyBoss] = 4
	for i := 0; i < 100; i++ {
		kind, ok := pickEnemyKind(rng, weights)
		require.True(t, ok)
		assert.Equal(t, components.EnemyBoss, kind)
	}
}

func TestSpawnWeights(t *testing.T) {
	var counts [components.EnemyKindCount]int

	w := spawnWeights(counts, 0)
	assert.Equal(t, cfg.Enemy.Basic.SpawnWeight, w[components.EnemyBasic])
	assert.Equal(t, cfg.Enemy.Boss.SpawnWeight, w[components.EnemyBoss])
	assert.Zero(t, w[components.EnemyShieldedBoss], "no shielded bosses at difficulty 0")

	counts[components.EnemyShieldedBoss] = 1
	assert.Zero(t, spawnWeights(counts, 1)[components.EnemyShieldedBoss])
	assert.Equal(t, cfg.Enemy.ShieldedBoss.SpawnWeight, spawnWeights(counts, 2)[components.EnemyShieldedBoss])
	counts[components.EnemyShieldedBoss] = cfg.Enemy.ShieldedBoss.MaxCount
	assert.Zero(t, spawnWeights(counts, 100)[components.EnemyShieldedBoss])

	counts[components.EnemyBoss] = cfg.Enemy.Boss.MaxCount
	counts[components.EnemyBasic] = cfg.Enemy.Basic.MaxCount
	assert.Equal(t, [components.EnemyKindCount]int{}, spawnWeights(counts, 100))
}

func TestSpawnPointHeadsInward(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		kind := components.EnemyKind(rapid.IntRange(0, int(components.EnemyKindCount)-1).Draw(t, "kind"))

		pos, velo := spawnPoint(rng, kind)
		half := kind.Config().HalfSize
		switch {
		case pos.Y == -half:
			assert.Positive(t, velo.Y)
			assert.GreaterOrEqual(t, pos.X, 0.0)
			assert.LessOrEqual(t, pos.X, cfg.Playfield.Width)
		case pos.X == -half:
			assert.Positive(t, velo.X)
			assert.GreaterOrEqual(t, velo.Y, 0.0)
		case pos.X == cfg.Playfield.Width+half:
			assert.Negative(t, velo.X)
			assert.GreaterOrEqual(t, velo.Y, 0.0)
		default:
			t.Fatalf("spawn point %v is not on an edge", pos)
		}
	})
}

func TestSpawnerRespectsWaveWindow(t *testing.T) {
	e := startedSim(t)
	cfg.Spawn.BaseAmount = 4 * cfg.Spawn.Dice
	session := GetOrCreateSession(e)

	session.Frame = uint64(float64(cfg.Spawn.WavePeriod) * cfg.Spawn.ActiveFraction)
	UpdateSpawner(e)
	assert.Empty(t, session.Enemies, "quiet part of the wave")

	session.Frame = uint64(cfg.Spawn.WavePeriod)
	UpdateSpawner(e)
	assert.NotEmpty(t, session.Enemies)
	assert.Equal(t, 1, session.Telemetry.Wave)

	for _, en := range session.Enemies {
		kind := components.Enemy.Get(e.World.Entry(en)).Kind
		assert.NotEqual(t, components.EnemyShieldedBoss, kind, "difficulty 0 never spawns shielded bosses")
	}
	counts := countEnemies(e, session)
	assert.LessOrEqual(t, counts[components.EnemyBoss], cfg.Enemy.Boss.MaxCount)
}

func TestSpawnerIsDeterministic(t *testing.T) {
	run := func() []components.Vector {
		e := newTestSim(t, 99)
		cfg.Spawn.BaseAmount = 32
		step(e, cfg.ActionReset)
		for i := 0; i < 200; i++ {
			step(e)
		}
		var out []components.Vector
		for _, en := range GetOrCreateSession(e).Enemies {
			out = append(out, kinematicOf(e, en).Position)
		}
		return out
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}
