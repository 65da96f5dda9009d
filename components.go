package sunaba

// The built-in component kinds. All of them are plain fixed-layout value
// types: no pointers, no slices, nothing the storage has to do beyond
// copying, and every Storage of them is snapshot-safe.

// Transform places an entity in the world.
type Transform struct {
	Position Vec2
	Rotation float32
	Scale    float32
}

// NewTransform returns a Transform at position with no rotation and
// unit scale.
func NewTransform(position Vec2) Transform {
	return Transform{Position: position, Scale: 1}
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Sprite describes how an entity is drawn. Texture is an id into
// whatever atlas the rendering side maintains; the store does not
// interpret it.
type Sprite struct {
	Texture uint32
	Color   Color
	Width   uint8
	Height  uint8
}

// Animation advances a sprite through the frames of a sheet.
type Animation struct {
	Sheet        uint32
	FrameWidth   uint8
	FrameHeight  uint8
	CurrentFrame uint8
	TotalFrames  uint8
	FrameTime    float32
	Timer        float32
	Loop         bool
	Playing      bool
}

// Physics holds an entity's motion state.
type Physics struct {
	Velocity      Vec2
	Acceleration  Vec2
	GravityScale  float32
	MaxFallSpeed  float32
	LinearDamping float32
	Kinematic     bool
}

// CollisionLayer is a bitflag set naming which collision group an
// entity belongs to and which groups it reacts to.
type CollisionLayer uint16

const (
	LayerDefault CollisionLayer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerPlatform
	LayerTrigger
)

// Collider is an axis-aligned collision box.
type Collider struct {
	Size         Vec2
	Offset       Vec2
	Layer        CollisionLayer
	CollidesWith CollisionLayer
	Trigger      bool
	Static       bool
}

// CollisionState records the contacts found for an entity during the
// current frame.
type CollisionState struct {
	Grounded           bool
	TouchingCeiling    bool
	TouchingWallLeft   bool
	TouchingWallRight  bool
	GroundEntity       Entity
	GroundNormal       Vec2
	TimeSinceGrounded  float32
	TimeSinceWallTouch float32
}

// Reset clears the per-frame contact flags. The contact timers are left
// alone; they accumulate across frames.
func (c *CollisionState) Reset() {
	c.Grounded = false
	c.TouchingCeiling = false
	c.TouchingWallLeft = false
	c.TouchingWallRight = false
	c.GroundEntity = NullEntity
	c.GroundNormal = Vec2{X: 0, Y: -1}
}

// Player marks the player-controlled entity and carries its gameplay
// attributes.
type Player struct {
	Health float32
	Speed  float32
}
