package sim

import (
	"math"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
)

// PlateTop returns the y coordinate of the plate's upper surface.
func (b *Button) PlateTop(cfg config.ButtonConfig) float64 {
	return b.Pos.Y - b.Size*cfg.PlateOffset - b.Size*cfg.PlateHeight/2 + b.Offset
}

// PlateHalfWidth returns half the plate width.
func (b *Button) PlateHalfWidth(cfg config.ButtonConfig) float64 {
	return b.Size * cfg.PlateWidth / 2
}

// pressedBy checks whether the player is standing on the plate: horizontally
// over it, feet within tolerance of the plate top, not rising fast.
func (b *Button) pressedBy(p *Player, cfg config.ButtonConfig) bool {
	feet := p.Pos.Y + p.Size/2
	overX := math.Abs(p.Pos.X-b.Pos.X) < p.Size/2+b.PlateHalfWidth(cfg)
	onTop := math.Abs(feet-b.PlateTop(cfg)) < p.Size*cfg.PressTolerance
	return overX && onTop && p.Vel.Y > -cfg.MaxRiseSpeed
}

// update latches the button and eases the plate. Returns true on the press transition.
func (b *Button) update(p *Player, cfg config.ButtonConfig) bool {
	pressed := false
	if !b.Pressed && b.pressedBy(p, cfg) {
		b.Pressed = true
		pressed = true
	}

	target := 0.0
	if b.Pressed {
		target = b.Size * cfg.PressDepth
	}
	b.Offset = core.Lerp(b.Offset, target, cfg.Smoothing)
	return pressed
}

// LinkGates recomputes every gate's open state from the buttons. A gate is
// open exactly when at least one pressed button shares its ID. Returns the
// IDs of gates that opened this call.
func LinkGates(gates []*Gate, buttons []*Button, smoothing float64) []int {
	pressed := make(map[int]bool, len(buttons))
	for _, b := range buttons {
		if b.Pressed {
			pressed[b.ID] = true
		}
	}

	var opened []int
	for _, g := range gates {
		was := g.Open
		g.Open = pressed[g.ID]
		if g.Open && !was {
			opened = append(opened, g.ID)
		}

		target := 0.0
		if g.Open {
			target = 1
		}
		g.Openness = core.Lerp(g.Openness, target, smoothing)
	}
	return opened
}
