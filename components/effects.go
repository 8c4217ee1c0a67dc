package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TempEffectData describes a short-lived animation. The entity's Health is
// the remaining frame count, not combat health.
type TempEffectData struct {
	MaxFrameCount int
	FrameWidth    int
	PlaybackRate  int
}

var TempEffect = donburi.NewComponentType[TempEffectData]()

// Frame is the sprite-sheet frame to show for the remaining health, in
// [0, MaxFrameCount).
func (t *TempEffectData) Frame(health int) int {
	f := t.MaxFrameCount - 1 - (health-1)/t.PlaybackRate
	return min(max(f, 0), t.MaxFrameCount-1)
}

// AnimateTempEffect counts the effect down by one frame.
func AnimateTempEffect(k *KinematicData) DeathReason {
	k.Health--
	return k.Animate()
}

// ScreenShakeData tracks active screen shake effect on the playfield.
// Decay tweens the intensity down to zero, one unit of time per frame.
type ScreenShakeData struct {
	Decay     *gween.Tween
	Intensity float64 // current max offset in pixels
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
