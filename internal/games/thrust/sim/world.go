package sim

import (
	"math"

	"github.com/vovakirdan/tui-thrust/internal/config"
)

// World holds every entity of the current level.
type World struct {
	Cell float64

	Player       *Player
	Terrain      []Box
	Enemies      []*Enemy
	Bullets      []*Projectile
	EnemyBullets []*Projectile
	Pickups      []*Pickup
	Exit         *Portal
	Updrafts     []Updraft
	Buttons      []*Button
	Gates        []*Gate

	Cols int
	Rows int

	solids []Box
}

// cellCenter returns the world centre of grid cell (row, col).
func cellCenter(row, col int, cell float64) Vec2 {
	return Vec2{
		X: float64(col)*cell + cell/2,
		Y: float64(row)*cell + cell/2,
	}
}

// build replaces the level content from layout. The player object is kept:
// it moves to the start cell if there is one, and always loses its momentum.
func (w *World) build(layout Layout, cfg config.ThrustConfig, rng *RNG) {
	cell := cfg.Grid.CellSize
	w.Cell = cell
	w.Cols = layout.Cols
	w.Rows = layout.Rows
	w.Terrain = w.Terrain[:0]
	w.Enemies = nil
	w.Bullets = nil
	w.EnemyBullets = nil
	w.Pickups = nil
	w.Exit = nil
	w.Updrafts = nil
	w.Buttons = nil
	w.Gates = nil

	if w.Player == nil {
		w.Player = NewPlayer(Vec2{}, cfg.Player)
	}

	for _, p := range layout.Placements {
		pos := cellCenter(p.Row, p.Col, cell)
		switch p.Kind {
		case TokenTerrain:
			w.Terrain = append(w.Terrain, BoxAt(pos, cell, cell))
		case TokenPlayer:
			w.Player.Pos = pos
			w.Player.Angle = -math.Pi / 2
			w.Player.Facing = 1
			w.Player.ShieldTimer = 0
		case TokenChaser:
			w.Enemies = append(w.Enemies, newChaser(pos, cfg.Chaser, rng))
		case TokenTurret:
			w.Enemies = append(w.Enemies, newTurret(pos, p.ID, cell, cfg.Turret))
		case TokenFuel:
			w.Pickups = append(w.Pickups, &Pickup{Kind: PickupFuel, Pos: pos, Size: cfg.Pickups.Size})
		case TokenAmmo:
			w.Pickups = append(w.Pickups, &Pickup{Kind: PickupAmmo, Pos: pos, Size: cfg.Pickups.Size})
		case TokenScore:
			w.Pickups = append(w.Pickups, &Pickup{Kind: PickupScore, Pos: pos, Size: cfg.Pickups.Size})
		case TokenShield:
			w.Pickups = append(w.Pickups, &Pickup{Kind: PickupShield, Pos: pos, Size: cfg.Pickups.Size})
		case TokenExit:
			w.Exit = &Portal{
				Pos:           pos,
				Size:          cell * cfg.Portal.SizeFactor,
				CollisionSize: cell * cfg.Portal.CollisionSizeFactor,
			}
		case TokenUpdraft:
			w.Updrafts = append(w.Updrafts, Updraft{
				Area:     BoxAt(pos, cell, cell*cfg.Updraft.HeightCells),
				Strength: cfg.Physics.Gravity * cfg.Updraft.StrengthGravity,
			})
		case TokenButton:
			w.Buttons = append(w.Buttons, &Button{ID: p.ID, Pos: pos, Size: cell * cfg.Button.SizeFactor})
		case TokenGate:
			w.Gates = append(w.Gates, &Gate{ID: p.ID, Area: BoxAt(pos, cell, cell)})
		}
	}

	w.Player.Vel = Vec2{}
	w.Player.Acc = Vec2{}
	w.Player.Grounded = false
	w.Player.Thrusting = false
}

// Solids returns the colliders for this tick: terrain plus closed gates.
// The slice is reused between calls.
func (w *World) Solids() []Box {
	w.solids = append(w.solids[:0], w.Terrain...)
	for _, g := range w.Gates {
		if !g.Open {
			w.solids = append(w.solids, g.Area)
		}
	}
	return w.solids
}

// GateAt returns the gate with the given id, or nil.
func (w *World) GateAt(id int) *Gate {
	for _, g := range w.Gates {
		if g.ID == id {
			return g
		}
	}
	return nil
}
