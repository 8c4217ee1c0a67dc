package systems

import (
	"github.com/automoto/starblaster/components"
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies movement, weapon switching and the debug score
// boost from the frame's intents.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry := getPlayer(ecs)
	if playerEntry == nil {
		return
	}
	intent := GetOrCreateIntent(ecs)
	player := components.Player.Get(playerEntry)
	k := components.Kinematic.Get(playerEntry)

	components.MovePlayer(k,
		intent.Action(cfg.ActionMoveUp).Pressed,
		intent.Action(cfg.ActionMoveDown).Pressed,
		intent.Action(cfg.ActionMoveLeft).Pressed,
		intent.Action(cfg.ActionMoveRight).Pressed,
	)

	if intent.Action(cfg.ActionWeaponNext).JustPressed {
		player.Weapon = player.Weapon.Next()
	}
	if intent.Action(cfg.ActionWeaponPrev).JustPressed {
		player.Weapon = player.Weapon.Prev()
	}

	if intent.Action(cfg.ActionDebugScoreBoost).JustPressed {
		player.Score += cfg.Debug.ScoreBoost
	}
}
