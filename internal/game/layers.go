package game

// Collision layer bits. A collider's Layer says what it is; its Mask says
// what it wants to hear about. A pair interacts only when each side's mask
// matches the other side's layer.
const (
	LayerPlayer uint32 = 1 << iota
	LayerPlayerShot
	LayerEnemy
	LayerEnemyShot
	LayerPickup
)

// Default masks per entity kind.
const (
	MaskPlayer     = LayerEnemy | LayerEnemyShot | LayerPickup
	MaskPlayerShot = LayerEnemy
	MaskEnemy      = LayerPlayer | LayerPlayerShot
	MaskEnemyShot  = LayerPlayer
	MaskPickup     = LayerPlayer
)
