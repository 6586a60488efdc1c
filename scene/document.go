package scene

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/script"
	"github.com/lixenwraith/kinema/spatial"
	"github.com/lixenwraith/kinema/transform"
)

// Vec3Doc is the document form of a vector.
type Vec3Doc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec returns the runtime vector.
func (v Vec3Doc) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// EntityDoc is one entity as serialized in a scene document. Rotation is
// an XYZ-order Euler triple in degrees, the editor's convention; it leaves
// this package as a quaternion and never comes back.
type EntityDoc struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Position Vec3Doc  `json:"position,omitempty"`
	Rotation Vec3Doc  `json:"rotation,omitempty"`
	Scale    *Vec3Doc `json:"scale,omitempty"`

	Physics      *PhysicsSpec       `json:"physics,omitempty"`
	Transformers []transform.Config `json:"transformers,omitempty"`
	Scripts      *script.Hooks      `json:"scripts,omitempty"`
}

// Document is the on-disk scene format.
type Document struct {
	Name         string            `json:"name,omitempty"`
	Wind         *Vec3Doc          `json:"wind,omitempty"`
	InputMapping *input.Mapping    `json:"inputMapping,omitempty"`
	Scripts      map[string]string `json:"scripts,omitempty"`
	Entities     []EntityDoc       `json:"entities"`
}

// ParseDocument decodes a scene document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene document: %w", err)
	}
	return &doc, nil
}

// WindVec returns the document wind, zero when absent.
func (d *Document) WindVec() mgl64.Vec3 {
	if d.Wind == nil {
		return mgl64.Vec3{}
	}
	return d.Wind.Vec()
}

// Mapping returns the document's input mapping override, or the default.
func (d *Document) Mapping() input.Mapping {
	if d.InputMapping == nil {
		return input.DefaultMapping()
	}
	return d.InputMapping.Clone()
}

// Entity converts one document record to its runtime form.
func (ed *EntityDoc) Entity() *Entity {
	e := &Entity{
		ID:           ed.ID,
		Name:         ed.Name,
		Position:     ed.Position.Vec(),
		Rotation:     spatial.EulerToQuat(ed.Rotation.Vec()),
		Scale:        mgl64.Vec3{1, 1, 1},
		Physics:      ed.Physics,
		Transformers: ed.Transformers,
	}
	if ed.Scale != nil {
		e.Scale = ed.Scale.Vec()
	}
	if ed.Scripts != nil {
		e.Hooks = *ed.Scripts
	}
	return e
}
