package factory

import (
	"github.com/automoto/starblaster/archetypes"
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the session's only player at the start position.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	s := session(ecs)
	player := archetypes.Player.Spawn(ecs)

	k := components.NewKinematic(&s.IDs, components.PlayerStart(), components.Vector{}).
		WithHealth(cfg.Player.Health).
		WithVariant("player")
	components.Kinematic.SetValue(player, k)

	var pd components.PlayerData
	pd.Reset()
	components.Player.SetValue(player, pd)

	s.Player = player.Entity()
	return player
}
