package sim

// TurretMode is the aiming state of a turret.
type TurretMode int

const (
	// TurretIdle: player out of range, barrel drifts slowly.
	TurretIdle TurretMode = iota
	// TurretTracking: player in range, barrel follows the player.
	TurretTracking
)

func (m TurretMode) String() string {
	if m == TurretTracking {
		return "tracking"
	}
	return "idle"
}

// Turret is the stationary shooter state attached to an EnemyTurret.
// Cooldown runs down every tick regardless of mode; a tracking turret
// fires whenever it reaches zero.
type Turret struct {
	ID         int
	Angle      float64
	Cooldown   int
	FirePeriod int
	Range      float64
	Mode       TurretMode
}

// Cooling reports whether the turret is waiting to fire again.
func (t *Turret) Cooling() bool {
	return t.Cooldown > 0
}

// Update advances the turret one tick against a target and reports whether it fired.
func (t *Turret) Update(pos, target Vec2, drift float64) bool {
	if t.Cooldown > 0 {
		t.Cooldown--
	}

	if Dist(pos, target) >= t.Range {
		t.Mode = TurretIdle
		t.Angle += drift
		return false
	}

	t.Mode = TurretTracking
	t.Angle = target.Sub(pos).Heading()
	if t.Cooldown > 0 {
		return false
	}
	t.Cooldown = t.FirePeriod
	return true
}
