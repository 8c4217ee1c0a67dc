package components

import (
	"math/rand"

	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// TelemetryData is the scalar session state exposed to the HUD.
type TelemetryData struct {
	Shots [cfg.WeaponCount]uint64 // projectiles fired, or beam frames for the light
	Wave  int
}

// LightBeamData is the current state of the light weapon for the renderer.
type LightBeamData struct {
	Active bool
	X      float64 // beam centre
	Bottom float64 // the beam runs from 0 to Bottom
	Hits   int     // enemies touched this frame
}

// SessionData is the singleton owning every live-entity container. The
// slices define iteration and removal order; component data lives in the
// world.
type SessionData struct {
	RunID string // fresh for every reset, used to tag log lines
	State cfg.SessionState
	Frame uint64
	IDs   IDSource
	Rand  *rand.Rand

	Player      donburi.Entity
	Enemies     []donburi.Entity
	Projectiles []donburi.Entity
	Items       []donburi.Entity
	Effects     []donburi.Entity

	Telemetry TelemetryData
	LightBeam LightBeamData
}

var Session = donburi.NewComponentType[SessionData]()

// Playing reports whether the simulation should advance.
func (s *SessionData) Playing() bool {
	return s.State == cfg.SessionPlaying
}

// WaveIndex is the number of completed wave windows.
func (s *SessionData) WaveIndex() int {
	return int(s.Frame / uint64(cfg.Spawn.WavePeriod))
}
