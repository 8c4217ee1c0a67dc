package components

import (
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyBoss
	EnemyShieldedBoss
	EnemyKindCount // Must be last - used for array sizing
)

func (k EnemyKind) String() string {
	return k.Config().Name
}

// Config returns the tuning values for the kind.
func (k EnemyKind) Config() *cfg.EnemyTypeConfig {
	switch k {
	case EnemyBoss:
		return &cfg.Enemy.Boss
	case EnemyShieldedBoss:
		return &cfg.Enemy.ShieldedBoss
	default:
		return &cfg.Enemy.Basic
	}
}

// IsBoss reports whether the kind belongs to the boss class.
func (k EnemyKind) IsBoss() bool {
	return k == EnemyBoss || k == EnemyShieldedBoss
}

type EnemyData struct {
	Kind         EnemyKind
	ShieldHealth int // only meaningful for EnemyShieldedBoss
}

var Enemy = donburi.NewComponentType[EnemyData]()

// HalfSize is the collision half-extent. The shielded boss' box shrinks
// with its shield.
func (e *EnemyData) HalfSize() float64 {
	switch e.Kind {
	case EnemyShieldedBoss:
		return float64(e.ShieldHealth)
	case EnemyBoss:
		return cfg.Enemy.Boss.HalfSize
	default:
		return cfg.Enemy.Basic.HalfSize
	}
}

// Damage applies amount to the enemy. A shielded boss soaks damage in its
// shield while the shield is at or above the threshold; below it, damage
// goes straight to the body and the shield keeps its value.
func (e *EnemyData) Damage(k *KinematicData, amount int) {
	switch e.Kind {
	case EnemyShieldedBoss:
		if e.ShieldHealth >= cfg.Enemy.Shield.Threshold {
			e.ShieldHealth = max(e.ShieldHealth-amount, 0)
			return
		}
		k.Health -= amount
	case EnemyBasic, EnemyBoss:
		k.Health -= amount
	}
}

// Regenerate ticks the shield back up on every RegenPeriod-th frame.
func (e *EnemyData) Regenerate(frame uint64) {
	if e.Kind != EnemyShieldedBoss {
		return
	}
	if frame%uint64(cfg.Enemy.Shield.RegenPeriod) == 0 && e.ShieldHealth < cfg.Enemy.Shield.Max {
		e.ShieldHealth++
	}
}

// AnimateEnemy runs one frame for an enemy. Shield regeneration happens
// whether or not the enemy dies this frame.
func AnimateEnemy(e *EnemyData, k *KinematicData, frame uint64) DeathReason {
	reason := k.Animate()
	e.Regenerate(frame)
	return reason
}
