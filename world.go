package sunaba

// World is the top-level registry. It owns the entity allocator and
// exactly one Storage per component kind, and is the entry point for
// the Query functions.
//
// A World is not safe for concurrent mutation; it is meant to be driven
// by a single simulation step at a time.
type World struct {
	alloc allocator

	transforms      Storage[Transform]
	sprites         Storage[Sprite]
	animations      Storage[Animation]
	physics         Storage[Physics]
	colliders       Storage[Collider]
	collisionStates Storage[CollisionState]
	players         Storage[Player]
}

// NewWorld creates a World with every per-kind storage initialized and
// no entities issued.
func NewWorld() *World {
	w := &World{alloc: newAllocator()}
	w.transforms.init()
	w.sprites.init()
	w.animations.init()
	w.physics.init()
	w.colliders.init()
	w.collisionStates.init()
	w.players.init()
	return w
}

// CreateEntity issues a fresh entity id. It returns NullEntity once
// MaxEntities-1 ids have been issued; callers must check for it.
// Ids are never reused, even after DestroyEntity.
func (w *World) CreateEntity() Entity {
	return w.alloc.create()
}

// DestroyEntity removes e from every storage. Kinds e never had are
// no-ops, so no pre-check is needed. The id itself stays retired.
func (w *World) DestroyEntity(e Entity) {
	w.transforms.Remove(e)
	w.sprites.Remove(e)
	w.animations.Remove(e)
	w.physics.Remove(e)
	w.colliders.Remove(e)
	w.collisionStates.Remove(e)
	w.players.Remove(e)
}

// Clear removes every component from every storage, retaining the
// allocated capacity. Issued ids are not recycled; the allocator keeps
// counting from where it was.
func (w *World) Clear() {
	w.transforms.Clear()
	w.sprites.Clear()
	w.animations.Clear()
	w.physics.Clear()
	w.colliders.Clear()
	w.collisionStates.Clear()
	w.players.Clear()
}

// StorageOf returns the World's storage for component kind T, or nil
// for a type that is not a component kind. Each instantiation resolves
// to a single switch arm, so the kind-to-storage mapping costs no map
// lookup and no reflection.
func StorageOf[T any](w *World) *Storage[T] {
	var kind T
	switch any(kind).(type) {
	case Transform:
		return any(&w.transforms).(*Storage[T])
	case Sprite:
		return any(&w.sprites).(*Storage[T])
	case Animation:
		return any(&w.animations).(*Storage[T])
	case Physics:
		return any(&w.physics).(*Storage[T])
	case Collider:
		return any(&w.colliders).(*Storage[T])
	case CollisionState:
		return any(&w.collisionStates).(*Storage[T])
	case Player:
		return any(&w.players).(*Storage[T])
	default:
		return nil
	}
}

// Per-kind accessors. Each forwards to the kind's storage; the storage
// rules apply (overwrite on double add, no-ops on invalid entities,
// pointers valid only until the storage next mutates).

func (w *World) AddTransform(e Entity, t Transform) { w.transforms.Add(e, t) }

func (w *World) GetTransform(e Entity) (*Transform, bool) { return w.transforms.Get(e) }

func (w *World) RemoveTransform(e Entity) { w.transforms.Remove(e) }

func (w *World) HasTransform(e Entity) bool { return w.transforms.Has(e) }

func (w *World) AddSprite(e Entity, s Sprite) { w.sprites.Add(e, s) }

func (w *World) GetSprite(e Entity) (*Sprite, bool) { return w.sprites.Get(e) }

func (w *World) RemoveSprite(e Entity) { w.sprites.Remove(e) }

func (w *World) HasSprite(e Entity) bool { return w.sprites.Has(e) }

func (w *World) AddAnimation(e Entity, a Animation) { w.animations.Add(e, a) }

func (w *World) GetAnimation(e Entity) (*Animation, bool) { return w.animations.Get(e) }

func (w *World) RemoveAnimation(e Entity) { w.animations.Remove(e) }

func (w *World) HasAnimation(e Entity) bool { return w.animations.Has(e) }

func (w *World) AddPhysics(e Entity, p Physics) { w.physics.Add(e, p) }

func (w *World) GetPhysics(e Entity) (*Physics, bool) { return w.physics.Get(e) }

func (w *World) RemovePhysics(e Entity) { w.physics.Remove(e) }

func (w *World) HasPhysics(e Entity) bool { return w.physics.Has(e) }

func (w *World) AddCollider(e Entity, c Collider) { w.colliders.Add(e, c) }

func (w *World) GetCollider(e Entity) (*Collider, bool) { return w.colliders.Get(e) }

func (w *World) RemoveCollider(e Entity) { w.colliders.Remove(e) }

func (w *World) HasCollider(e Entity) bool { return w.colliders.Has(e) }

func (w *World) AddCollisionState(e Entity, c CollisionState) { w.collisionStates.Add(e, c) }

func (w *World) GetCollisionState(e Entity) (*CollisionState, bool) { return w.collisionStates.Get(e) }

func (w *World) RemoveCollisionState(e Entity) { w.collisionStates.Remove(e) }

func (w *World) HasCollisionState(e Entity) bool { return w.collisionStates.Has(e) }

func (w *World) AddPlayer(e Entity, p Player) { w.players.Add(e, p) }

func (w *World) GetPlayer(e Entity) (*Player, bool) { return w.players.Get(e) }

func (w *World) RemovePlayer(e Entity) { w.players.Remove(e) }

func (w *World) HasPlayer(e Entity) bool { return w.players.Has(e) }
