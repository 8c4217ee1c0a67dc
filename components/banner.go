package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the "WAVE n" announcement faded out over the HUD.
type BannerData struct {
	Text  string
	Wave  int // last announced wave
	Fade  *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
