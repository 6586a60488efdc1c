package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/spatial"
	"github.com/lixenwraith/kinema/transform"
)

// Item pairs one entity's logical record, its visual object, and the
// optional physics body and transformer chain. Pose reads prefer the
// simulated body; writes without a body touch only the visual, leaving
// the logical record exactly as loaded.
type Item struct {
	Entity *Entity
	Visual Visual
	Chain  *transform.Chain

	world physics.World
	body  physics.Body
}

// HasBody reports whether the item is physically simulated.
func (it *Item) HasBody() bool {
	return it.body != nil
}

// Body returns the live body handle, nil for visual-only items.
func (it *Item) Body() physics.Body {
	return it.body
}

// Position reads body first, then the record, then zero.
func (it *Item) Position() mgl64.Vec3 {
	if it.body != nil {
		return it.body.Position()
	}
	if it.Entity != nil {
		return it.Entity.Position
	}
	return mgl64.Vec3{}
}

// Rotation reads body first, then the record, then identity.
func (it *Item) Rotation() mgl64.Quat {
	if it.body != nil {
		return it.body.Rotation()
	}
	if it.Entity != nil && it.Entity.Rotation != (mgl64.Quat{}) {
		return it.Entity.Rotation
	}
	return mgl64.QuatIdent()
}

// Pose returns the item's current pose under the same precedence as
// Position and Rotation.
func (it *Item) Pose() spatial.Pose {
	return spatial.Pose{Position: it.Position(), Rotation: it.Rotation()}
}

// SetPosition teleports the body through the world (keeping the pose cache
// coherent) and moves the visual. Without a body only the visual moves.
func (it *Item) SetPosition(p mgl64.Vec3) {
	if it.body != nil && it.world != nil {
		it.world.SetPosition(it.Entity.ID, p)
	}
	if it.Visual != nil {
		it.Visual.SetPosition(p)
	}
}

// SetRotation orients the body and the visual; without a body, the visual
// only.
func (it *Item) SetRotation(q mgl64.Quat) {
	if it.body != nil {
		it.body.SetRotation(q)
	}
	if it.Visual != nil {
		it.Visual.SetRotation(q)
	}
}
