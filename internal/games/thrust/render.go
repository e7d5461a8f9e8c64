package thrust

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-thrust/internal/core"
	"github.com/vovakirdan/tui-thrust/internal/games/thrust/sim"
)

// Visual characters for rendering
const (
	TerrainChar     = '█'
	GateClosedChar  = '▓'
	GateOpeningChar = '░'
	UpdraftChar     = '˄'
	ButtonUpChar    = '▄'
	ButtonDownChar  = '▁'
	ExitChar        = '◎'
	ChaserChar      = '✶'
	TurretChar      = '▲'
	BulletChar      = '•'
	EnemyBulletChar = '∘'
	FlameChar       = '*'
	ShieldChar      = '○'
)

// Glyphs for the ship heading, starting east and turning clockwise.
var headingGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Glyphs for turret barrels by octant, same order as headingGlyphs.
var barrelGlyphs = []rune{'─', '╲', '│', '╱', '─', '╲', '│', '╱'}

var pickupGlyphs = map[sim.PickupKind]struct {
	ch    rune
	color core.Color
}{
	sim.PickupFuel:   {'F', core.ColorOrange},
	sim.PickupAmmo:   {'A', core.ColorCyan},
	sim.PickupScore:  {'$', core.ColorBrightYellow},
	sim.PickupShield: {'H', core.ColorBrightCyan},
}

// Each grid cell is drawn as cellCols x cellRows characters.
const (
	cellCols = 2
	cellRows = 1
)

const (
	minScreenW = 24
	minScreenH = 8
	hudRows    = 1
)

// view maps world coordinates onto the screen area below the HUD.
type view struct {
	camX, camY   float64 // world position of the top-left screen cell
	unitX, unitY float64 // world units per character
	top          int
	w, h         int
}

func newView(snap *sim.Snapshot, w, h int) view {
	v := view{
		unitX: snap.Cell / cellCols,
		unitY: snap.Cell / cellRows,
		top:   hudRows,
		w:     w,
		h:     h - hudRows,
	}
	levelW := float64(snap.Cols) * snap.Cell
	levelH := float64(snap.Rows) * snap.Cell
	v.camX = follow(snap.Player.Pos.X, float64(v.w)*v.unitX, levelW)
	v.camY = follow(snap.Player.Pos.Y, float64(v.h)*v.unitY, levelH)
	return v
}

// follow centres the camera on pos, clamped to the level. A level smaller
// than the viewport is centred instead.
func follow(pos, viewSize, levelSize float64) float64 {
	if levelSize <= viewSize {
		return -(viewSize - levelSize) / 2
	}
	return core.ClampF(pos-viewSize/2, 0, levelSize-viewSize)
}

func (v view) toScreen(p sim.Vec2) (int, int) {
	x := int(math.Floor((p.X - v.camX) / v.unitX))
	y := int(math.Floor((p.Y-v.camY)/v.unitY)) + v.top
	return x, y
}

func (v view) visible(x, y int) bool {
	return x >= 0 && x < v.w && y >= v.top && y < v.top+v.h
}

func (v view) set(dst *core.Screen, p sim.Vec2, ch rune, c core.Color) {
	x, y := v.toScreen(p)
	if v.visible(x, y) {
		dst.SetColor(x, y, ch, c)
	}
}

// fill draws every character cell whose centre lies inside box.
func (v view) fill(dst *core.Screen, box sim.Box, ch rune, c core.Color) {
	minP, maxP := box.Min(), box.Max()
	x0 := int(math.Floor((minP.X - v.camX) / v.unitX))
	x1 := int(math.Ceil((maxP.X-v.camX)/v.unitX)) - 1
	y0 := int(math.Floor((minP.Y-v.camY)/v.unitY)) + v.top
	y1 := int(math.Ceil((maxP.Y-v.camY)/v.unitY)) - 1 + v.top

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.visible(x, y) {
				dst.SetColor(x, y, ch, c)
			}
		}
	}
}

// octant maps an angle to 0..7, 0 = east, clockwise (screen y points down).
func octant(angle float64) int {
	o := int(math.Round(angle/(math.Pi/4))) % 8
	if o < 0 {
		o += 8
	}
	return o
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	if g.err != nil {
		dst.DrawTextCentered(h/2-1, "Cannot start thrust")
		dst.DrawTextColor(max(0, (w-len(g.err.Error()))/2), h/2+1, g.err.Error(), core.ColorRed)
		return
	}
	if g.engine == nil {
		return
	}
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	snap := g.engine.Snapshot()
	v := newView(&snap, w, h)

	g.drawWorld(dst, &snap, v)
	g.drawHUD(dst, &snap)
	g.drawOverlay(dst, &snap)
}

func (g *Game) drawWorld(dst *core.Screen, snap *sim.Snapshot, v view) {
	for _, u := range snap.Updrafts {
		v.fill(dst, u, UpdraftChar, core.ColorDarkGray)
	}
	for _, b := range snap.Terrain {
		v.fill(dst, b, TerrainChar, core.ColorGray)
	}
	for _, gate := range snap.Gates {
		switch {
		case !gate.Open:
			v.fill(dst, gate.Area, GateClosedChar, core.ColorMagenta)
		case gate.Openness < 0.5:
			v.fill(dst, gate.Area, GateOpeningChar, core.ColorMagenta)
		}
	}
	for _, b := range snap.Buttons {
		ch, c := ButtonUpChar, core.ColorYellow
		if b.Pressed {
			ch, c = ButtonDownChar, core.ColorGreen
		}
		v.set(dst, b.Pos, ch, c)
	}
	if snap.Exit != nil {
		c := core.ColorGreen
		if snap.Tick/15%2 == 0 {
			c = core.ColorBrightGreen
		}
		v.set(dst, snap.Exit.Pos, ExitChar, c)
	}
	for _, p := range snap.Pickups {
		glyph := pickupGlyphs[p.Kind]
		v.set(dst, p.Pos, glyph.ch, glyph.color)
	}
	for _, en := range snap.Enemies {
		g.drawEnemy(dst, en, v)
	}
	for _, b := range snap.Bullets {
		v.set(dst, b.Pos, BulletChar, core.ColorBrightYellow)
	}
	for _, b := range snap.EnemyBullets {
		v.set(dst, b.Pos, EnemyBulletChar, core.ColorBrightRed)
	}
	g.drawPlayer(dst, snap.Player, v)
}

func (g *Game) drawEnemy(dst *core.Screen, en sim.EnemyView, v view) {
	c := core.ColorRed
	if en.Flash {
		c = core.ColorWhite
	}

	if en.Kind == sim.EnemyChaser {
		v.set(dst, en.Pos, ChaserChar, c)
		return
	}

	v.set(dst, en.Pos, TurretChar, c)
	dir := sim.FromAngle(en.Angle)
	tip := en.Pos.Add(sim.V(dir.X*v.unitX, dir.Y*v.unitY))
	barrel := core.ColorGray
	if en.Mode == sim.TurretTracking {
		barrel = core.ColorOrange
	}
	v.set(dst, tip, barrelGlyphs[octant(en.Angle)], barrel)
}

func (g *Game) drawPlayer(dst *core.Screen, p sim.PlayerView, v view) {
	if p.Thrusting {
		back := sim.FromAngle(p.Angle).Scale(-1)
		v.set(dst, p.Pos.Add(sim.V(back.X*v.unitX, back.Y*v.unitY)), FlameChar, core.ColorOrange)
	}

	c := core.ColorWhite
	if p.Shielded {
		c = core.ColorBrightCyan
		x, y := v.toScreen(p.Pos)
		for _, dx := range []int{-1, 1} {
			if v.visible(x+dx, y) && dst.Get(x+dx, y) == ' ' {
				dst.SetColor(x+dx, y, ShieldChar, core.ColorCyan)
			}
		}
	}
	v.set(dst, p.Pos, headingGlyphs[octant(p.Angle)], c)
}

// fuelBar renders a fixed-width gauge.
func fuelBar(fuel, maxFuel float64, width int) string {
	filled := 0
	if maxFuel > 0 {
		filled = int(math.Round(fuel / maxFuel * float64(width)))
	}
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func (g *Game) drawHUD(dst *core.Screen, snap *sim.Snapshot) {
	w := dst.Width()

	fuelColor := core.ColorGreen
	switch ratio := snap.Fuel / snap.MaxFuel; {
	case ratio < 0.15:
		fuelColor = core.ColorBrightRed
	case ratio < 0.4:
		fuelColor = core.ColorYellow
	}

	left := fmt.Sprintf("L%d/%d ", snap.Level+1, snap.LevelCount)
	dst.DrawTextColor(0, 0, left, core.ColorWhite)
	x := len(left)

	fuel := fmt.Sprintf("Fuel %s %4.0f ", fuelBar(snap.Fuel, snap.MaxFuel, 10), snap.Fuel)
	dst.DrawTextColor(x, 0, fuel, fuelColor)
	x += len(fuel)

	ammo := fmt.Sprintf("Ammo %2d ", snap.Ammo)
	dst.DrawTextColor(x, 0, ammo, core.ColorCyan)
	x += len(ammo)

	if snap.Shield > 0 {
		shield := fmt.Sprintf("Shield %d ", snap.Shield/60+1)
		dst.DrawTextColor(x, 0, shield, core.ColorBrightCyan)
	}

	score := fmt.Sprintf("Score %d", snap.Score)
	dst.DrawTextColor(max(0, w-len(score)), 0, score, core.ColorBrightYellow)

	if g.msgLeft > 0 && g.message != "" {
		dst.DrawTextColor(max(0, (w-len([]rune(g.message)))/2), hudRows, g.message, core.ColorWhite)
	}
}

func (g *Game) drawOverlay(dst *core.Screen, snap *sim.Snapshot) {
	switch {
	case snap.Status == sim.StatusLost:
		drawPanel(dst, "OUT OF FUEL", fmt.Sprintf("Score: %d", snap.Score), "R restart   Q quit")
	case snap.Status == sim.StatusWon:
		drawPanel(dst, "ALL LEVELS CLEAR", fmt.Sprintf("Final score: %d", snap.Score), "R play again   Q quit")
	case g.paused:
		drawPanel(dst, "PAUSED  (P to resume)")
	}
}

// drawPanel draws lines centred in a framed box over the middle of dst.
func drawPanel(dst *core.Screen, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := inner + 4
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
