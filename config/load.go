package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable sections. Keys are the lowercased field
// names, e.g.
//
//	player:
//	  speed: 3
//	spawn:
//	  waveperiod: 2048
type fileConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Weapon    WeaponConfig    `yaml:"weapon"`
	Missile   MissileConfig   `yaml:"missile"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Item      ItemConfig      `yaml:"item"`
	Effect    EffectConfig    `yaml:"effect"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LoadFile applies YAML overrides from path on top of the current values.
// Sections and fields missing from the file keep their defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes YAML overrides from data. Nothing is changed on error.
func Apply(data []byte) error {
	fc := fileConfig{
		Playfield: Playfield,
		Player:    Player,
		Enemy:     Enemy,
		Weapon:    Weapon,
		Missile:   Missile,
		Spawn:     Spawn,
		Item:      Item,
		Effect:    Effect,
		Debug:     Debug,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := fc.validate(); err != nil {
		return err
	}

	Playfield = fc.Playfield
	Player = fc.Player
	Enemy = fc.Enemy
	Weapon = fc.Weapon
	Missile = fc.Missile
	Spawn = fc.Spawn
	Item = fc.Item
	Effect = fc.Effect
	Debug = fc.Debug
	return nil
}

// validate rejects values that would make frame-modulo cadences divide by zero.
func (fc *fileConfig) validate() error {
	switch {
	case fc.Weapon.BulletPeriod <= 0:
		return fmt.Errorf("weapon.bulletperiod must be positive, got %d", fc.Weapon.BulletPeriod)
	case fc.Weapon.MissilePeriod <= 0:
		return fmt.Errorf("weapon.missileperiod must be positive, got %d", fc.Weapon.MissilePeriod)
	case fc.Spawn.WavePeriod <= 0:
		return fmt.Errorf("spawn.waveperiod must be positive, got %d", fc.Spawn.WavePeriod)
	case fc.Spawn.Dice <= 0:
		return fmt.Errorf("spawn.dice must be positive, got %d", fc.Spawn.Dice)
	case fc.Enemy.Shield.RegenPeriod <= 0:
		return fmt.Errorf("enemy.shield.regenperiod must be positive, got %d", fc.Enemy.Shield.RegenPeriod)
	case fc.Effect.Explosion.PlaybackRate <= 0 || fc.Effect.SmallExplosion.PlaybackRate <= 0:
		return fmt.Errorf("effect playback rates must be positive")
	}
	for _, t := range []EnemyTypeConfig{fc.Enemy.Basic, fc.Enemy.Boss, fc.Enemy.ShieldedBoss} {
		if t.FireChance <= 0 {
			return fmt.Errorf("enemy %s firechance must be positive, got %d", t.Name, t.FireChance)
		}
	}
	return nil
}
