package sim

import "github.com/vovakirdan/tui-thrust/internal/core"

// Status is the terminal state of a run.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// RunState holds the resources carried across levels. All mutations go
// through the methods below, which keep fuel and ammo within [0, max].
type RunState struct {
	Score   int
	Fuel    float64
	MaxFuel float64
	Ammo    int
	MaxAmmo int
	Level   int
	Status  Status
	Tick    uint64
}

// NewRunState creates a full-tank run at level 0.
func NewRunState(maxFuel float64, maxAmmo int) RunState {
	return RunState{
		Fuel:    maxFuel,
		MaxFuel: maxFuel,
		Ammo:    maxAmmo,
		MaxAmmo: maxAmmo,
	}
}

// AddFuel adds (or with a negative amount removes) fuel.
func (r *RunState) AddFuel(amount float64) {
	r.Fuel = core.ClampF(r.Fuel+amount, 0, r.MaxFuel)
}

// SpendFuel removes fuel, stopping at zero.
func (r *RunState) SpendFuel(amount float64) {
	r.AddFuel(-amount)
}

// AddAmmo adds ammo up to the maximum.
func (r *RunState) AddAmmo(n int) {
	r.Ammo = core.Clamp(r.Ammo+n, 0, r.MaxAmmo)
}

// SpendAmmo takes n rounds if any are left. Returns false when empty.
func (r *RunState) SpendAmmo(n int) bool {
	if r.Ammo <= 0 {
		return false
	}
	r.AddAmmo(-n)
	return true
}

// AddScore adds points.
func (r *RunState) AddScore(n int) {
	r.Score += n
}

// Over reports whether the run has ended.
func (r RunState) Over() bool {
	return r.Status != StatusPlaying
}
