package config

import "image/color"

// PlayfieldConfig is the simulated area. Entities are culled against
// [0, Width] x [0, Height].
type PlayfieldConfig struct {
	Width  float64
	Height float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed    float64 // pixels per frame, per axis
	HalfSize float64

	// Spawn position as a fraction of the playfield
	StartX float64
	StartY float64

	// Combat
	Health       int
	InvulnFrames uint32 // granted after losing a life

	// Lives
	StartingLives uint32
}

// EnemyTypeConfig contains configuration for a specific enemy kind
type EnemyTypeConfig struct {
	Name     string
	Health   int
	HalfSize float64
	Speed    float64 // inward speed on spawn

	// Return fire: one chance in FireChance per frame
	FireChance int

	// Rewards
	Score      uint32
	DropChance int  // percent
	DropBig    bool // drops the 10-point power-up instead of the 1-point one

	// Spawning
	SpawnWeight int
	MaxCount    int

	// Visual
	Variant string
	Color   color.RGBA
}

// ShieldConfig describes the shielded boss' damage-absorbing pool
type ShieldConfig struct {
	Max         int
	Threshold   int // damage goes to the shield only while it is at least this strong
	RegenPeriod int // frames between +1 regen ticks
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Basic        EnemyTypeConfig
	Boss         EnemyTypeConfig
	ShieldedBoss EnemyTypeConfig
	Shield       ShieldConfig

	BulletSpeed  float64
	BulletHealth int
}

// WeaponConfig contains player weapon configuration
type WeaponConfig struct {
	// Bullets
	BulletPeriod   int // frames between volleys
	BulletSpeed    float64
	BulletHealth   int
	BulletHalfSize float64

	// Spread
	SpreadSpeed    float64 // horizontal speed added per spread step
	MaxSpreadLevel int

	// Missiles
	MissilePeriod int
	MissileHealth int

	// Light beam
	LightHalfWidth   float64
	LightBaseDamage  int
	LightLevelDamage int // extra damage per power level
}

// MissileConfig contains homing missile behaviour
type MissileConfig struct {
	Speed          float64
	DetectionRange float64
	HomingAccel    float64 // max velocity change per frame while steering
	TrailLength    int
}

// SpawnConfig drives the stochastic wave director
type SpawnConfig struct {
	WavePeriod     int // frames
	ActiveFraction float64
	Dice           int
	BaseAmount     int
	LevelAmount    int // added per difficulty level

	// Spawn velocity jitter along the edge
	EdgeJitter float64
}

// ItemConfig contains power-up configuration
type ItemConfig struct {
	HalfSize  float64
	FallSpeed float64
	Jitter    float64
}

// TempEffectConfig describes one animated effect sheet
type TempEffectConfig struct {
	MaxFrameCount int
	FrameWidth    int
	PlaybackRate  int
	Variant       string
}

// EffectConfig contains transient effect configuration
type EffectConfig struct {
	Explosion      TempEffectConfig
	SmallExplosion TempEffectConfig
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	PanelColor     color.RGBA
	PanelTextColor color.RGBA
	PlayerColor    color.RGBA
	BulletColor    color.RGBA
	EnemyBullet    color.RGBA
	MissileColor   color.RGBA
	TrailColor     color.RGBA
	LightColor     color.RGBA
	ItemColor      color.RGBA
	ExplosionColor color.RGBA
	ShieldColor    color.RGBA

	BannerFrames int // how long the wave banner takes to fade
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
	IdleHint     string // shown before the first session starts
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	PlayerHitIntensity float64 // pixels
	PlayerHitDuration  int     // frames
}

// CollisionConfig sizes the broad-phase grid. The grid extends Margin
// pixels past every playfield edge so entities entering from off-screen are
// still indexed; proxies are grown by Padding on each side.
type CollisionConfig struct {
	CellSize int
	Margin   float64
	Padding  float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle     bool   // Skip the title screen and go directly to the game
	ShowColliders bool   // Outline broad-phase proxies
	Seed          int64  // 0 = seed from the clock
	ScoreBoost    uint32 // added to the score by the debug intent
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Playfield PlayfieldConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Weapon WeaponConfig
var Missile MissileConfig
var Spawn SpawnConfig
var Item ItemConfig
var Effect EffectConfig
var UI UIConfig
var Pause PauseConfig
var GameOver GameOverConfig
var ScreenShake ScreenShakeConfig
var Collision CollisionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkPanel    = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	// The playfield takes the left three quarters of the window; the HUD
	// panel gets the rest.
	Playfield = PlayfieldConfig{
		Width:  float64(C.Width) * 3 / 4,
		Height: float64(C.Height),
	}

	Player = PlayerConfig{
		Speed:         2.0,
		HalfSize:      8.0,
		StartX:        0.5,
		StartY:        0.75,
		Health:        16,
		InvulnFrames:  128,
		StartingLives: 3,
	}

	Enemy = EnemyConfig{
		Basic: EnemyTypeConfig{
			Name:        "Basic",
			Health:      3,
			HalfSize:    8.0,
			Speed:       1.0,
			FireChance:  64,
			Score:       1,
			DropChance:  20,
			SpawnWeight: 64,
			MaxCount:    128,
			Variant:     "enemy",
			Color:       Red,
		},
		Boss: EnemyTypeConfig{
			Name:        "Boss",
			Health:      64,
			HalfSize:    16.0,
			Speed:       0.5,
			FireChance:  256, // four times less trigger-happy than Basic
			Score:       10,
			DropChance:  100,
			DropBig:     true,
			SpawnWeight: 4,
			MaxCount:    4,
			Variant:     "boss",
			Color:       Purple,
		},
		ShieldedBoss: EnemyTypeConfig{
			Name:        "ShieldedBoss",
			Health:      64,
			HalfSize:    16.0,
			Speed:       0.5,
			FireChance:  256,
			Score:       20,
			DropChance:  100,
			DropBig:     true,
			SpawnWeight: 4,
			MaxCount:    4,
			Variant:     "shield-boss",
			Color:       Magenta,
		},
		Shield: ShieldConfig{
			Max:         64,
			Threshold:   16,
			RegenPeriod: 8,
		},
		BulletSpeed:  3.0,
		BulletHealth: 1,
	}

	Weapon = WeaponConfig{
		BulletPeriod:     5,
		BulletSpeed:      5.0,
		BulletHealth:     1,
		BulletHalfSize:   8.0,
		SpreadSpeed:      1.0,
		MaxSpreadLevel:   4,
		MissilePeriod:    20,
		MissileHealth:    5,
		LightHalfWidth:   8.0,
		LightBaseDamage:  1,
		LightLevelDamage: 1,
	}

	Missile = MissileConfig{
		Speed:          3.0,
		DetectionRange: 256.0,
		HomingAccel:    0.25,
		TrailLength:    20,
	}

	Spawn = SpawnConfig{
		WavePeriod:     1024,
		ActiveFraction: 0.75,
		Dice:           256,
		BaseAmount:     8,
		LevelAmount:    4,
		EdgeJitter:     1.0,
	}

	Item = ItemConfig{
		HalfSize:  8.0,
		FallSpeed: 1.0,
		Jitter:    0.5,
	}

	Effect = EffectConfig{
		Explosion: TempEffectConfig{
			MaxFrameCount: 8,
			FrameWidth:    32,
			PlaybackRate:  2,
			Variant:       "explode",
		},
		SmallExplosion: TempEffectConfig{
			MaxFrameCount: 6,
			FrameWidth:    16,
			PlaybackRate:  2,
			Variant:       "explode2",
		},
	}

	UI = UIConfig{
		PanelColor:     DarkPanel,
		PanelTextColor: White,
		PlayerColor:    Cyan,
		BulletColor:    Yellow,
		EnemyBullet:    Orange,
		MissileColor:   White,
		TrailColor:     color.RGBA{R: 200, G: 200, B: 255, A: 255},
		LightColor:     color.RGBA{R: 120, G: 220, B: 255, A: 160},
		ItemColor:      LightGreen,
		ExplosionColor: color.RGBA{R: 255, G: 200, B: 80, A: 255},
		ShieldColor:    Blue,
		BannerFrames:   120,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P: Resume",
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Red,
		TextColor:    White,
		Title:        "GAME OVER",
		Hint:         "R: Restart",
		IdleHint:     "R: Start",
	}

	ScreenShake = ScreenShakeConfig{
		PlayerHitIntensity: 6.0,
		PlayerHitDuration:  20,
	}

	Collision = CollisionConfig{
		CellSize: 32,
		Margin:   64,
		Padding:  2,
	}

	Debug = DebugConfig{
		ScoreBoost: 1000,
	}
}
