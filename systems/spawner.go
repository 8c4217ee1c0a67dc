package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/automoto/starblaster/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner runs the wave director. During the active part of each wave
// window it rolls dice against a difficulty-scaled target and spawns one
// enemy per roll that stays below it.
func UpdateSpawner(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	session.Telemetry.Wave = session.WaveIndex()

	period := uint64(cfg.Spawn.WavePeriod)
	if float64(session.Frame%period) >= float64(period)*cfg.Spawn.ActiveFraction {
		return
	}
	player := getPlayerData(ecs)
	if player == nil {
		return
	}

	difficulty := player.DifficultyLevel()
	target := difficulty*cfg.Spawn.LevelAmount + cfg.Spawn.BaseAmount
	counts := countEnemies(ecs, session)
	rng := session.Rand

	for acc := rng.Intn(cfg.Spawn.Dice); acc < target; acc += rng.Intn(cfg.Spawn.Dice) {
		kind, ok := pickEnemyKind(rng, spawnWeights(counts, difficulty))
		if !ok {
			continue
		}
		pos, velo := spawnPoint(rng, kind)
		factory.CreateEnemy(ecs, kind, pos, velo)
		counts[kind]++
	}
}

func countEnemies(ecs *ecs.ECS, session *components.SessionData) [components.EnemyKindCount]int {
	var counts [components.EnemyKindCount]int
	for _, e := range session.Enemies {
		counts[components.Enemy.Get(ecs.World.Entry(e)).Kind]++
	}
	return counts
}

// spawnWeights zeroes the weight of every kind at its live cap. Shielded
// bosses are further limited by the difficulty level.
func spawnWeights(counts [components.EnemyKindCount]int, difficulty int) [components.EnemyKindCount]int {
	var weights [components.EnemyKindCount]int
	for kind := components.EnemyKind(0); kind < components.EnemyKindCount; kind++ {
		typ := kind.Config()
		limit := typ.MaxCount
		if kind == components.EnemyShieldedBoss {
			limit = min(difficulty, limit)
		}
		if counts[kind] < limit {
			weights[kind] = typ.SpawnWeight
		}
	}
	return weights
}

// pickEnemyKind draws a kind with probability proportional to its weight.
// It reports false when every weight is zero.
func pickEnemyKind(rng *rand.Rand, weights [components.EnemyKindCount]int) (components.EnemyKind, bool) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, false
	}
	roll := rng.Intn(total)
	for kind, w := range weights {
		if roll < w {
			return components.EnemyKind(kind), true
		}
		roll -= w
	}
	return 0, false
}

// spawnPoint places a new enemy just outside the top, left or right edge,
// moving inward.
func spawnPoint(rng *rand.Rand, kind components.EnemyKind) (pos, velo components.Vector) {
	typ := kind.Config()
	half := kind.Config().HalfSize
	jitter := (rng.Float64()*2 - 1) * cfg.Spawn.EdgeJitter * typ.Speed
	w, h := cfg.Playfield.Width, cfg.Playfield.Height

	switch rng.Intn(3) {
	case 0: // top
		pos = components.Vector{X: rng.Float64() * w, Y: -half}
		velo = components.Vector{X: jitter, Y: typ.Speed}
	case 1: // left
		pos = components.Vector{X: -half, Y: rng.Float64() * h / 2}
		velo = components.Vector{X: typ.Speed, Y: math.Abs(jitter)}
	default: // right
		pos = components.Vector{X: w + half, Y: rng.Float64() * h / 2}
		velo = components.Vector{X: -typ.Speed, Y: math.Abs(jitter)}
	}
	return pos, velo
}
