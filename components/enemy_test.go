package components

import (
	"testing"

	cfg "github.com/automoto/starblaster/config"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDamageBasicAndBoss(t *testing.T) {
	for _, kind := range []EnemyKind{EnemyBasic, EnemyBoss} {
		e := EnemyData{Kind: kind}
		k := KinematicData{Health: kind.Config().Health}
		e.Damage(&k, 2)
		assert.Equal(t, kind.Config().Health-2, k.Health, kind.String())
	}
}

func TestShieldRouting(t *testing.T) {
	tests := []struct {
		name       string
		shield     int
		amount     int
		wantShield int
		wantHealth int
	}{
		{"full shield absorbs", 64, 10, 54, 64},
		{"at threshold absorbs and clamps", 16, 20, 0, 64},
		{"below threshold goes to body", 15, 5, 15, 59},
		{"empty shield goes to body", 0, 3, 0, 61},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EnemyData{Kind: EnemyShieldedBoss, ShieldHealth: tt.shield}
			k := KinematicData{Health: 64}
			e.Damage(&k, tt.amount)
			assert.Equal(t, tt.wantShield, e.ShieldHealth)
			assert.Equal(t, tt.wantHealth, k.Health)
		})
	}
}

func TestShieldRoutingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		shield := rapid.IntRange(0, cfg.Enemy.Shield.Max).Draw(t, "shield")
		amount := rapid.IntRange(1, 100).Draw(t, "amount")

		e := EnemyData{Kind: EnemyShieldedBoss, ShieldHealth: shield}
		k := KinematicData{Health: 64}
		e.Damage(&k, amount)

		if shield >= cfg.Enemy.Shield.Threshold {
			if k.Health != 64 {
				t.Fatalf("shield %d let %d damage through", shield, amount)
			}
			if e.ShieldHealth != max(shield-amount, 0) {
				t.Fatalf("shield %d took %d, now %d", shield, amount, e.ShieldHealth)
			}
			return
		}
		if e.ShieldHealth != shield || k.Health != 64-amount {
			t.Fatalf("weak shield %d: got shield %d health %d", shield, e.ShieldHealth, k.Health)
		}
	})
}

func TestRegenerate(t *testing.T) {
	period := uint64(cfg.Enemy.Shield.RegenPeriod)

	e := EnemyData{Kind: EnemyShieldedBoss, ShieldHealth: 10}
	e.Regenerate(period)
	assert.Equal(t, 11, e.ShieldHealth)
	e.Regenerate(period + 1)
	assert.Equal(t, 11, e.ShieldHealth)

	e.ShieldHealth = cfg.Enemy.Shield.Max
	e.Regenerate(period * 3)
	assert.Equal(t, cfg.Enemy.Shield.Max, e.ShieldHealth)

	basic := EnemyData{Kind: EnemyBasic}
	basic.Regenerate(0)
	assert.Zero(t, basic.ShieldHealth)
}

func TestAnimateEnemyRegeneratesEvenWhenKilled(t *testing.T) {
	e := EnemyData{Kind: EnemyShieldedBoss, ShieldHealth: 10}
	k := KinematicData{Position: Vector{100, 100}, Health: 0}

	assert.Equal(t, DeathKilled, AnimateEnemy(&e, &k, 0))
	assert.Equal(t, 11, e.ShieldHealth)
}

func TestShieldedBossHalfSizeFollowsShield(t *testing.T) {
	e := EnemyData{Kind: EnemyShieldedBoss, ShieldHealth: 40}
	assert.Equal(t, 40.0, e.HalfSize())
	e.ShieldHealth = 0
	assert.Zero(t, e.HalfSize())

	assert.Equal(t, cfg.Enemy.Boss.HalfSize, (&EnemyData{Kind: EnemyBoss}).HalfSize())
	assert.Equal(t, cfg.Enemy.Basic.HalfSize, (&EnemyData{Kind: EnemyBasic}).HalfSize())
}

func TestBossFiresLessOften(t *testing.T) {
	assert.Equal(t, 4*EnemyBasic.Config().FireChance, EnemyBoss.Config().FireChance)
	assert.True(t, EnemyShieldedBoss.IsBoss())
	assert.False(t, EnemyBasic.IsBoss())
}
