package sim

import (
	"math"

	"github.com/vovakirdan/tui-thrust/internal/config"
)

// Player is the thrust-driven ship.
type Player struct {
	Pos    Vec2
	Vel    Vec2
	Acc    Vec2
	Angle  float64
	Facing int // +1 right, -1 left
	Size   float64
	Sprite float64

	ShieldTimer int
	Grounded    bool
	Thrusting   bool
}

// NewPlayer creates a player at pos pointing up.
func NewPlayer(pos Vec2, cfg config.PlayerConfig) *Player {
	return &Player{
		Pos:    pos,
		Angle:  -math.Pi / 2,
		Facing: 1,
		Size:   cfg.Size,
		Sprite: cfg.SpriteSize,
	}
}

func (p *Player) Bounds() Box { return BoxAt(p.Pos, p.Size, p.Size) }
func (p *Player) Center() Vec2 { return p.Pos }
func (p *Player) Radius() float64 { return p.Size / 2 }
func (p *Player) ShieldActive() bool { return p.ShieldTimer > 0 }

// ApplyForce accumulates f into this tick's acceleration.
func (p *Player) ApplyForce(f Vec2) {
	p.Acc = p.Acc.Add(f)
}

// Rotate turns the ship and refreshes its facing. The facing follows the
// horizontal component of the heading; near vertical headings fall back to
// the heading rotated by a quarter turn.
func (p *Player) Rotate(delta, threshold float64) {
	p.Angle += delta
	if c := math.Cos(p.Angle); math.Abs(c) > threshold {
		p.Facing = sign(c)
		return
	}
	if c := math.Cos(p.Angle + math.Pi/2); math.Abs(c) > threshold {
		p.Facing = sign(c)
	}
}

// Muzzle returns the spawn point and direction for a shot.
func (p *Player) Muzzle() (pos, dir Vec2) {
	dir = Vec2{X: float64(p.Facing)}
	return p.Pos.Add(dir.Scale(p.Sprite / 2)), dir
}

// integrate advances one tick: gravity, velocity, position, drag.
func (p *Player) integrate(gravity, drag float64) {
	p.ApplyForce(Vec2{Y: gravity})
	p.Vel = p.Vel.Add(p.Acc)
	p.Pos = p.Pos.Add(p.Vel)
	p.Acc = Vec2{}
	p.Vel = p.Vel.Scale(drag)
	if p.ShieldTimer > 0 {
		p.ShieldTimer--
	}
}

func (p *Player) body() Body {
	return Body{Pos: &p.Pos, Vel: &p.Vel, HalfW: p.Size / 2, HalfH: p.Size / 2}
}

// Projectile is a short-lived shot. It is removed once Life drops below zero,
// so a shot created with lifespan L survives exactly L+1 advances.
type Projectile struct {
	Pos  Vec2
	Vel  Vec2
	Rad  float64
	Life int
}

func newProjectile(pos, vel Vec2, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{Pos: pos, Vel: vel, Rad: cfg.Radius, Life: cfg.Lifespan}
}

func (p *Projectile) Bounds() Box { return BoxAt(p.Pos, p.Rad*2, p.Rad*2) }
func (p *Projectile) Center() Vec2 { return p.Pos }
func (p *Projectile) Radius() float64 { return p.Rad }

// Expired reports whether the lifespan ran out.
func (p *Projectile) Expired() bool { return p.Life < 0 }

func (p *Projectile) advance() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life--
}

// EnemyKind tags the enemy variants.
type EnemyKind int

const (
	EnemyChaser EnemyKind = iota
	EnemyTurret
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyChaser:
		return "chaser"
	case EnemyTurret:
		return "turret"
	default:
		return "unknown"
	}
}

// Enemy is a hostile entity. Turret is set only for EnemyTurret.
type Enemy struct {
	Kind     EnemyKind
	Pos      Vec2
	Vel      Vec2
	Size     float64
	Health   int
	HitTimer int
	Turret   *Turret
}

func newChaser(pos Vec2, cfg config.ChaserConfig, rng *RNG) *Enemy {
	return &Enemy{
		Kind:   EnemyChaser,
		Pos:    pos,
		Vel:    rng.Unit().Scale(rng.Range(cfg.MinSpeed, cfg.MaxSpeed)),
		Size:   rng.Range(cfg.MinSize, cfg.MaxSize),
		Health: cfg.Health,
	}
}

func newTurret(pos Vec2, id int, cell float64, cfg config.TurretConfig) *Enemy {
	return &Enemy{
		Kind:   EnemyTurret,
		Pos:    pos,
		Size:   cell * cfg.SizeFactor,
		Health: cfg.Health,
		Turret: &Turret{
			ID:         id,
			Cooldown:   cfg.InitialCooldown,
			FirePeriod: cfg.FirePeriod,
			Range:      cfg.RangeCells * cell,
		},
	}
}

func (e *Enemy) Bounds() Box { return BoxAt(e.Pos, e.Size, e.Size) }
func (e *Enemy) Center() Vec2 { return e.Pos }
func (e *Enemy) Radius() float64 { return e.Size / 2 }

// Hit applies damage and starts the hit flash. Returns true when the enemy died.
func (e *Enemy) Hit(damage, flash int) bool {
	e.Health -= damage
	e.HitTimer = flash
	return e.Health <= 0
}

// PickupKind tags the collectible variants.
type PickupKind int

const (
	PickupFuel PickupKind = iota
	PickupAmmo
	PickupScore
	PickupShield
)

func (k PickupKind) String() string {
	switch k {
	case PickupFuel:
		return "fuel"
	case PickupAmmo:
		return "ammo"
	case PickupScore:
		return "score"
	case PickupShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Pickup is a collectible consumed on contact.
type Pickup struct {
	Kind PickupKind
	Pos  Vec2
	Size float64
}

func (p *Pickup) Center() Vec2 { return p.Pos }
func (p *Pickup) Radius() float64 { return p.Size / 2 }

// Portal is the level exit.
type Portal struct {
	Pos           Vec2
	Size          float64
	CollisionSize float64
}

func (p *Portal) Center() Vec2 { return p.Pos }
func (p *Portal) Radius() float64 { return p.CollisionSize / 2 }

// Updraft pushes the player upward while the player's centre is inside it.
type Updraft struct {
	Area     Box
	Strength float64
}

// Button is a floor plate. Once pressed it stays pressed for the rest of the level.
type Button struct {
	ID      int
	Pos     Vec2
	Size    float64
	Pressed bool
	Offset  float64 // visual plate depression, 0 when up
}

// Gate is a barrier whose open state follows the buttons sharing its ID.
type Gate struct {
	ID       int
	Area     Box
	Open     bool
	Openness float64 // visual 0..1
}

func (g *Gate) Bounds() Box { return g.Area }

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
