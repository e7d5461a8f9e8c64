package sim

import "math"

// PlayerView is the drawable player state.
type PlayerView struct {
	Pos       Vec2
	Angle     float64
	Facing    int
	Size      float64
	Thrusting bool
	Shielded  bool
	Grounded  bool
}

// EnemyView is the drawable state of one enemy.
type EnemyView struct {
	Kind     EnemyKind
	Pos      Vec2
	Size     float64
	Health   int
	Flash    bool
	Angle    float64 // Turret barrel angle
	Mode     TurretMode
	Cooldown int
}

// ButtonView is the drawable state of one button.
type ButtonView struct {
	ID      int
	Pos     Vec2
	Size    float64
	Pressed bool
	Offset  float64
}

// GateView is the drawable state of one gate.
type GateView struct {
	ID       int
	Area     Box
	Open     bool
	Openness float64
}

// PickupView is the drawable state of one pickup.
type PickupView struct {
	Kind PickupKind
	Pos  Vec2
	Size float64
}

// ProjectileView is the drawable state of one projectile.
type ProjectileView struct {
	Pos    Vec2
	Radius float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick       uint64
	Level      int
	LevelCount int
	LevelName  string
	Status     Status

	Score   int
	Fuel    float64
	MaxFuel float64
	Ammo    int
	MaxAmmo int
	Shield  int

	Cell float64
	Cols int
	Rows int

	Player       PlayerView
	Terrain      []Box
	Gates        []GateView
	Buttons      []ButtonView
	Enemies      []EnemyView
	Bullets      []ProjectileView
	EnemyBullets []ProjectileView
	Pickups      []PickupView
	Updrafts     []Box
	Exit         *PickupView // Kind is unused for the exit

	RNGState uint64
}

// Snapshot copies the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	w := &e.world
	p := w.Player

	snap := Snapshot{
		Tick:       e.run.Tick,
		Level:      e.run.Level,
		LevelCount: len(e.levels),
		LevelName:  e.levels[e.run.Level].Name,
		Status:     e.run.Status,

		Score:   e.run.Score,
		Fuel:    e.run.Fuel,
		MaxFuel: e.run.MaxFuel,
		Ammo:    e.run.Ammo,
		MaxAmmo: e.run.MaxAmmo,
		Shield:  p.ShieldTimer,

		Cell: w.Cell,
		Cols: w.Cols,
		Rows: w.Rows,

		Player: PlayerView{
			Pos:       p.Pos,
			Angle:     p.Angle,
			Facing:    p.Facing,
			Size:      p.Size,
			Thrusting: p.Thrusting,
			Shielded:  p.ShieldActive(),
			Grounded:  p.Grounded,
		},
		Terrain: append([]Box(nil), w.Terrain...),

		RNGState: e.rng.State(),
	}

	for _, g := range w.Gates {
		snap.Gates = append(snap.Gates, GateView{ID: g.ID, Area: g.Area, Open: g.Open, Openness: g.Openness})
	}
	for _, b := range w.Buttons {
		snap.Buttons = append(snap.Buttons, ButtonView{ID: b.ID, Pos: b.Pos, Size: b.Size, Pressed: b.Pressed, Offset: b.Offset})
	}
	for _, en := range w.Enemies {
		v := EnemyView{Kind: en.Kind, Pos: en.Pos, Size: en.Size, Health: en.Health, Flash: en.HitTimer > 0}
		if en.Turret != nil {
			v.Angle = en.Turret.Angle
			v.Mode = en.Turret.Mode
			v.Cooldown = en.Turret.Cooldown
		}
		snap.Enemies = append(snap.Enemies, v)
	}
	for _, b := range w.Bullets {
		snap.Bullets = append(snap.Bullets, ProjectileView{Pos: b.Pos, Radius: b.Rad})
	}
	for _, b := range w.EnemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, ProjectileView{Pos: b.Pos, Radius: b.Rad})
	}
	for _, pk := range w.Pickups {
		snap.Pickups = append(snap.Pickups, PickupView{Kind: pk.Kind, Pos: pk.Pos, Size: pk.Size})
	}
	for _, u := range w.Updrafts {
		snap.Updrafts = append(snap.Updrafts, u.Area)
	}
	if w.Exit != nil {
		snap.Exit = &PickupView{Pos: w.Exit.Pos, Size: w.Exit.Size}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Fuel)
	h = h*31 + uint64(snap.Ammo)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shield) //#nosec G115 -- hash computation
	h = hashVec(h, snap.Player.Pos)
	h = h*31 + math.Float64bits(snap.Player.Angle)

	for _, g := range snap.Gates {
		h = h*31 + boolBit(g.Open)
	}
	for _, b := range snap.Buttons {
		h = h*31 + boolBit(b.Pressed)
	}
	for _, en := range snap.Enemies {
		h = h*31 + uint64(en.Kind)   //#nosec G115 -- hash computation
		h = h*31 + uint64(en.Health) //#nosec G115 -- hash computation
		h = hashVec(h, en.Pos)
	}
	for _, b := range snap.Bullets {
		h = hashVec(h, b.Pos)
	}
	for _, b := range snap.EnemyBullets {
		h = hashVec(h, b.Pos)
	}
	h = h*31 + uint64(len(snap.Pickups))
	h = h*31 + snap.RNGState
	return h
}

func hashVec(h uint64, v Vec2) uint64 {
	h = h*31 + math.Float64bits(v.X)
	return h*31 + math.Float64bits(v.Y)
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
