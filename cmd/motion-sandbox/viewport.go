package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/runtime"
	"github.com/lixenwraith/kinema/scene"
	"github.com/lixenwraith/kinema/spatial"
)

// cellsPerUnit maps world units onto terminal cells. Columns double up
// because terminal cells are roughly twice as tall as wide.
const (
	cellsPerUnitX = 2.0
	cellsPerUnitZ = 1.0
)

var glyphStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorGreen),
	tcell.StyleDefault.Foreground(tcell.ColorYellow),
	tcell.StyleDefault.Foreground(tcell.ColorAqua),
	tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// cellVisual is the sandbox's render handle: it just stores the pose the
// registry syncs onto it, the draw pass reads it back.
type cellVisual struct {
	pos      mgl64.Vec3
	rot      mgl64.Quat
	glyph    rune
	style    tcell.Style
	disposed bool
}

func (v *cellVisual) SetPosition(p mgl64.Vec3) { v.pos = p }
func (v *cellVisual) SetRotation(q mgl64.Quat) { v.rot = q }
func (v *cellVisual) SetScale(mgl64.Vec3)      {}
func (v *cellVisual) Dispose()                 { v.disposed = true }

// viewport draws the top-down XZ projection of all visuals.
type viewport struct {
	screen  tcell.Screen
	visuals map[string]*cellVisual
	order   []string
}

func newViewport(screen tcell.Screen) *viewport {
	return &viewport{
		screen:  screen,
		visuals: make(map[string]*cellVisual),
	}
}

// visualFor is the scene loader's Visual factory.
func (v *viewport) visualFor(e *scene.Entity) scene.Visual {
	glyph := '@'
	if e.Name != "" {
		glyph = rune(e.Name[0])
	}
	cv := &cellVisual{
		rot:   mgl64.QuatIdent(),
		glyph: glyph,
		style: glyphStyles[len(v.order)%len(glyphStyles)],
	}
	v.visuals[e.ID] = cv
	v.order = append(v.order, e.ID)
	return cv
}

func (v *viewport) draw(reg *scene.Registry, clock *runtime.Clock) {
	v.screen.Clear()
	width, height := v.screen.Size()
	cx, cy := width/2, height/2

	for _, id := range v.order {
		cv := v.visuals[id]
		if cv.disposed {
			continue
		}
		x := cx + int(math.Round(cv.pos.X()*cellsPerUnitX))
		y := cy + int(math.Round(cv.pos.Z()*cellsPerUnitZ))
		if x < 0 || x >= width || y < 0 || y >= height-1 {
			continue
		}
		v.screen.SetContent(x, y, cv.glyph, nil, cv.style)

		// Heading tick one cell ahead of the entity
		fwd := spatial.Forward(cv.rot)
		hx := x + int(math.Round(fwd.X()*1.5))
		hy := y + int(math.Round(fwd.Z()))
		if (hx != x || hy != y) && hx >= 0 && hx < width && hy >= 0 && hy < height-1 {
			v.screen.SetContent(hx, hy, '·', nil, cv.style.Dim(true))
		}
	}

	hud := fmt.Sprintf(" t=%6.1fs frame=%-8d entities=%d | wasd drive · space handbrake · wheel steer · esc quit ",
		clock.Now(), clock.Frame(), reg.Len())
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, r := range hud {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, r, nil, hudStyle)
	}

	v.screen.Show()
}
