// Package sim is the thrust simulation: level parsing, entities, collision,
// combat and the fixed-order tick. It has no I/O and no clock; everything it
// does is driven by Step and reproducible from the seed.
package sim

import (
	"errors"
	"slices"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
)

// ErrNoLevels is returned when an engine is created without levels.
var ErrNoLevels = errors.New("sim: no levels")

// LevelDef is a named level grid.
type LevelDef struct {
	ID   string
	Name string
	Rows []string
}

// Intent is the player's input for one tick. Fire is a one-shot request.
type Intent struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Fire        bool
}

// Engine runs a sequence of levels.
type Engine struct {
	cfg    config.ThrustConfig
	levels []LevelDef
	seed   int64

	rng    *RNG
	world  World
	run    RunState
	layout Layout
	events []Event
}

// NewEngine creates an engine positioned at the first level.
func NewEngine(cfg config.ThrustConfig, levels []LevelDef, seed int64) (*Engine, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	e := &Engine{cfg: cfg, levels: levels, seed: seed}
	e.Restart(0)
	return e, nil
}

// Restart resets score, fuel and ammo and loads the given level.
// The random sequence restarts from the seed.
func (e *Engine) Restart(level int) {
	e.rng = NewRNG(e.seed)
	e.run = NewRunState(e.cfg.Economy.MaxFuel, e.cfg.Economy.MaxAmmo)
	e.run.Level = core.Clamp(level, 0, len(e.levels)-1)
	e.world = World{Player: NewPlayer(Vec2{}, e.cfg.Player)}
	e.events = nil
	e.loadLevel()
}

func (e *Engine) Config() config.ThrustConfig { return e.cfg }
func (e *Engine) Levels() []LevelDef { return e.levels }
func (e *Engine) Level() LevelDef { return e.levels[e.run.Level] }
func (e *Engine) Layout() Layout { return e.layout }
func (e *Engine) Run() RunState { return e.run }
func (e *Engine) World() *World { return &e.world }

// Step advances the simulation by one tick and returns what happened.
// A finished run does not advance.
func (e *Engine) Step(in Intent) []Event {
	e.events = nil
	if e.run.Over() {
		return nil
	}
	e.run.Tick++

	p := e.world.Player
	phys := e.cfg.Physics

	e.applyIntent(in)
	p.integrate(phys.Gravity, phys.Drag)
	e.applyUpdrafts()
	e.updateLinkage()

	solids := e.world.Solids()
	p.Grounded = Resolve(p.body(), solids, e.response(phys.PlayerRestitution), e.rng)

	e.updatePlayerBullets(solids)
	e.updateEnemyBullets(solids)
	e.updateEnemies(solids)
	e.collectPickups()

	e.checkExit()
	if !e.run.Over() {
		e.checkFuel()
	}
	return e.events
}

func (e *Engine) emit(ev Event) {
	ev.Tick = e.run.Tick
	ev.Level = e.run.Level
	e.events = append(e.events, ev)
}

func (e *Engine) response(restitution float64) Response {
	phys := e.cfg.Physics
	return Response{
		Restitution: restitution,
		Push:        phys.PushFactor,
		Jitter:      phys.Jitter,
		Passes:      phys.ResolvePasses,
	}
}

func (e *Engine) loadLevel() {
	e.layout = ParseGrid(e.levels[e.run.Level].Rows)
	e.world.build(e.layout, e.cfg, e.rng)
	e.emit(Event{Kind: EventLevelStart, Detail: e.levels[e.run.Level].Name})
}

func (e *Engine) applyIntent(in Intent) {
	p := e.world.Player
	phys := e.cfg.Physics

	if in.Fire {
		e.fire()
	}
	if in.RotateLeft {
		p.Rotate(-phys.RotationSpeed, phys.FacingThreshold)
	}
	if in.RotateRight {
		p.Rotate(phys.RotationSpeed, phys.FacingThreshold)
	}

	p.Thrusting = false
	if in.Thrust && e.run.Fuel > 0 {
		p.ApplyForce(FromAngle(p.Angle).Scale(phys.ThrustForce))
		e.run.SpendFuel(e.cfg.Economy.ThrustFuelCost)
		p.Thrusting = true
	}
}

func (e *Engine) fire() {
	if !e.run.SpendAmmo(e.cfg.Economy.ShootAmmoCost) {
		return
	}
	w := e.cfg.Weapons.Player
	pos, dir := e.world.Player.Muzzle()
	e.world.Bullets = append(e.world.Bullets, newProjectile(pos, dir.Scale(w.Speed), w))
	e.emit(Event{Kind: EventShot})
}

func (e *Engine) applyUpdrafts() {
	p := e.world.Player
	for _, u := range e.world.Updrafts {
		if u.Area.Contains(p.Pos) {
			p.ApplyForce(Vec2{Y: -u.Strength})
		}
	}
}

func (e *Engine) updateLinkage() {
	for _, b := range e.world.Buttons {
		if b.update(e.world.Player, e.cfg.Button) {
			e.emit(Event{Kind: EventButtonPressed, ID: b.ID})
		}
	}
	for _, id := range LinkGates(e.world.Gates, e.world.Buttons, e.cfg.Gate.Smoothing) {
		e.emit(Event{Kind: EventGateOpened, ID: id})
	}
}

func (e *Engine) updatePlayerBullets(solids []Box) {
	all := e.world.Bullets
	kept := all[:0]
	for _, b := range all {
		b.advance()
		if HitsAny(b.Bounds(), solids) {
			continue
		}
		if e.hitEnemy(b) {
			continue
		}
		if b.Expired() {
			continue
		}
		kept = append(kept, b)
	}
	clear(all[len(kept):])
	e.world.Bullets = kept
}

// hitEnemy damages the last spawned enemy the projectile touches.
func (e *Engine) hitEnemy(b *Projectile) bool {
	for i := len(e.world.Enemies) - 1; i >= 0; i-- {
		en := e.world.Enemies[i]
		if !Touching(b, en) {
			continue
		}
		e.emit(Event{Kind: EventEnemyHit, Detail: en.Kind.String()})
		if en.Hit(1, e.cfg.Weapons.HitFlash) {
			e.world.Enemies = slices.Delete(e.world.Enemies, i, i+1)
			e.run.AddScore(e.killScore(en.Kind))
			e.emit(Event{Kind: EventEnemyKilled, Detail: en.Kind.String()})
		}
		return true
	}
	return false
}

func (e *Engine) killScore(k EnemyKind) int {
	if k == EnemyTurret {
		return e.cfg.Economy.TurretKillScore
	}
	return e.cfg.Economy.ChaserKillScore
}

func (e *Engine) updateEnemyBullets(solids []Box) {
	p := e.world.Player
	wc := e.cfg.Weapons

	all := e.world.EnemyBullets
	kept := all[:0]
	for _, b := range all {
		b.advance()
		if HitsAny(b.Bounds(), solids) {
			continue
		}
		if Touching(b, p) {
			if !p.ShieldActive() {
				e.run.SpendFuel(e.cfg.Economy.ProjectileFuelLoss)
			}
			p.ApplyForce(p.Pos.Sub(b.Pos).Normalize().Scale(wc.ProjectileKnockback))
			e.emit(Event{Kind: EventPlayerHit})
			continue
		}
		if b.Expired() {
			continue
		}
		kept = append(kept, b)
	}
	clear(all[len(kept):])
	e.world.EnemyBullets = kept
}

func (e *Engine) updateEnemies(solids []Box) {
	p := e.world.Player
	for _, en := range e.world.Enemies {
		switch en.Kind {
		case EnemyChaser:
			e.updateChaser(en, p.Pos, solids)
		case EnemyTurret:
			e.updateTurret(en, p.Pos)
		}
		if Touching(p, en) {
			e.contact(en)
		}
	}
}

func (e *Engine) updateChaser(en *Enemy, target Vec2, solids []Box) {
	c := e.cfg.Chaser
	en.Pos = en.Pos.Add(en.Vel)
	if en.HitTimer > 0 {
		en.HitTimer--
	}

	d := Dist(en.Pos, target)
	if d < c.DetectRadius && d > en.Size {
		seek := target.Sub(en.Pos).Normalize().Scale(c.SeekAccel)
		en.Vel = en.Vel.Add(seek).Limit(c.SpeedLimit)
	}

	body := Body{Pos: &en.Pos, Vel: &en.Vel, HalfW: en.Size / 2, HalfH: en.Size / 2}
	Resolve(body, solids, e.response(e.cfg.Physics.ChaserRestitution), e.rng)
}

func (e *Engine) updateTurret(en *Enemy, target Vec2) {
	if en.HitTimer > 0 {
		en.HitTimer--
	}
	if !en.Turret.Update(en.Pos, target, e.cfg.Turret.IdleDrift) {
		return
	}
	w := e.cfg.Weapons.Enemy
	vel := target.Sub(en.Pos).Normalize().Scale(w.Speed)
	e.world.EnemyBullets = append(e.world.EnemyBullets, newProjectile(en.Pos, vel, w))
	e.emit(Event{Kind: EventTurretFired, ID: en.Turret.ID})
}

// contact handles the player touching an enemy. A shielded player repels
// the enemy instead of taking damage.
func (e *Engine) contact(en *Enemy) {
	p := e.world.Player
	wc := e.cfg.Weapons

	if p.ShieldActive() {
		en.Vel = en.Vel.Add(en.Pos.Sub(p.Pos).SetMag(wc.ShieldRepel))
		return
	}

	knock := p.Pos.Sub(en.Pos).SetMag(wc.ContactKnockback)
	p.ApplyForce(knock)
	p.Vel = p.Vel.Add(knock.Scale(wc.ContactVelocityPart))
	e.run.SpendFuel(e.cfg.Economy.ContactFuelLoss)
	e.emit(Event{Kind: EventPlayerContact, Detail: en.Kind.String()})
}

func (e *Engine) collectPickups() {
	p := e.world.Player
	eco := e.cfg.Economy

	all := e.world.Pickups
	kept := all[:0]
	for _, pk := range all {
		if !Touching(p, pk) {
			kept = append(kept, pk)
			continue
		}
		switch pk.Kind {
		case PickupFuel:
			e.run.AddFuel(eco.FuelRefill)
		case PickupAmmo:
			e.run.AddAmmo(eco.AmmoRefill)
		case PickupScore:
			e.run.AddScore(eco.ScoreAward)
		case PickupShield:
			p.ShieldTimer = eco.ShieldDuration
		}
		e.emit(Event{Kind: EventPickup, Detail: pk.Kind.String()})
	}
	clear(all[len(kept):])
	e.world.Pickups = kept
}

// checkExit advances to the next level, or wins the run after the last one.
func (e *Engine) checkExit() {
	exit := e.world.Exit
	if exit == nil || !Touching(e.world.Player, exit) {
		return
	}

	e.emit(Event{Kind: EventLevelComplete})
	if e.run.Level+1 >= len(e.levels) {
		e.run.Status = StatusWon
		e.emit(Event{Kind: EventWon})
		return
	}
	e.run.Level++
	e.loadLevel()
}

// checkFuel ends the run when the tank is empty and the ship is either
// resting on something or falling.
func (e *Engine) checkFuel() {
	if e.run.Fuel > 0 {
		return
	}
	p := e.world.Player
	if p.Grounded || p.Vel.Y > e.cfg.Physics.FallingThreshold {
		e.run.Status = StatusLost
		e.emit(Event{Kind: EventGameOver})
	}
}
