package board

// Vec3 is a three-component float vector.
type Vec3 struct {
	X, Y, Z float32
}

// Transform is the target local transform an item settles into at a slot.
type Transform struct {
	Position Vec3
	Scale    Vec3
	Rotation Vec3
}

// Layout is the fixed external container of slot positions the board is
// built from. The slot count and every per-slot target transform come from
// here and never change afterwards.
type Layout interface {
	Len() int
	SlotTransform(index int) Transform
}

// SliceLayout adapts a fixed slice of transforms into a Layout.
type SliceLayout []Transform

func (l SliceLayout) Len() int {
	return len(l)
}

func (l SliceLayout) SlotTransform(index int) Transform {
	return l[index]
}

// Presenter is the presentation collaborator the engine drives. The engine
// never renders; it only requests opaque asynchronous transitions and merge
// animations.
//
// BeginTransition must eventually invoke done exactly once, on the same
// goroutine the engine runs on. There is no cancellation: a transition that
// never completes leaves the engine locked.
type Presenter interface {
	// BeginTransition starts moving an item toward a slot's target transform.
	BeginTransition(it *Item, target Transform, done func())

	// DisableShadow is fire-and-forget, called once when an item is placed.
	DisableShadow(it *Item)

	// DisablePhysics is fire-and-forget, called once when an item is placed.
	DisablePhysics(it *Item)

	// MergeStarted hands over the merged members in placement order. The
	// presenter owns their removal animation and disposal from here on.
	MergeStarted(items []*Item)
}

// NopPresenter satisfies Presenter with no visuals; every transition
// completes immediately. Useful for headless simulation and benchmarks.
type NopPresenter struct{}

func (NopPresenter) BeginTransition(_ *Item, _ Transform, done func()) { done() }

func (NopPresenter) DisableShadow(*Item) {}

func (NopPresenter) DisablePhysics(*Item) {}

func (NopPresenter) MergeStarted([]*Item) {}
