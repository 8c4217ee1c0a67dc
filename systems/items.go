package systems

import (
	"github.com/automoto/starblaster/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems moves power-ups and hands them to the player on contact.
func UpdateItems(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	playerEntry := getPlayer(ecs)
	if playerEntry == nil {
		return
	}
	pk := components.Kinematic.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	for _, e := range session.Items {
		entry := ecs.World.Entry(e)
		if components.IsDead(entry) {
			continue
		}
		reason := components.AnimateItem(components.Item.Get(entry), components.Kinematic.Get(entry), pk, player)
		components.MarkDead(entry, reason)
	}
}
