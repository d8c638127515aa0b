//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"automata/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 10, G: 10, B: 16, A: 200}
)

// Overlay draws a text panel with the simulation's generation and
// parameters over the top-left corner of the view. H toggles it.
type Overlay struct {
	sim    core.Sim
	hidden bool
	paused bool
	pixel  *ebiten.Image
}

// NewOverlay constructs an overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPaused records whether the host is paused so the panel can show it.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// Update handles the overlay's key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the panel onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	lines := o.lines()
	width := 0
	for _, l := range lines {
		if b := text.BoundString(basicfont.Face7x13, l.text); b.Dx() > width {
			width = b.Dx()
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(len(lines)*lineHeight+panelPadding))
	op.ColorScale.ScaleWithColor(panelColor)
	screen.DrawImage(o.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l.text, basicfont.Face7x13, panelPadding, (i+1)*lineHeight, l.color)
	}
}

type line struct {
	text  string
	color color.Color
}

func (o *Overlay) lines() []line {
	title := fmt.Sprintf("%s  gen %d", o.sim.Name(), o.sim.Generation())
	if o.paused {
		title += "  [paused]"
	}
	out := []line{{text: title, color: titleColor}}
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return out
	}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			out = append(out, line{text: fmt.Sprintf("%s: %s", p.Label, p.Value), color: labelColor})
		}
	}
	return out
}
