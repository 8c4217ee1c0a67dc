package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Item       = donburi.NewTag().SetName("Item")
	TempEffect = donburi.NewTag().SetName("TempEffect")
)

// Resolv tags for the collision broad-phase
const (
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
