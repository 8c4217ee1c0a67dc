package components

import (
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// ItemKind is the closed set of pickups.
type ItemKind int

const (
	ItemPowerUp ItemKind = iota
	ItemPowerUp10
)

func (k ItemKind) String() string {
	switch k {
	case ItemPowerUp:
		return "PowerUp"
	case ItemPowerUp10:
		return "PowerUp10"
	}
	return "Unknown"
}

// Value is the number of power points the item grants.
func (k ItemKind) Value() uint32 {
	if k == ItemPowerUp10 {
		return 10
	}
	return 1
}

type ItemData struct {
	Kind ItemKind
}

var Item = donburi.NewComponentType[ItemData]()

// AnimateItem awards the item to the player on contact, otherwise moves it.
func AnimateItem(item *ItemData, k *KinematicData, player *KinematicData, pd *PlayerData) DeathReason {
	if k.HitsEntity(player, cfg.Item.HalfSize, cfg.Player.HalfSize) {
		pd.Power += item.Kind.Value()
		return DeathKilled
	}
	return k.Animate()
}
