// Package config provides YAML-based game configuration loading and
// difficulty presets for the terminal game platform.
package config

// ThrustConfig contains all tuning for the thrust game.
// Distances are world units (pixels at grid size), durations are ticks.
type ThrustConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Economy EconomyConfig `yaml:"economy"`
	Weapons WeaponsConfig `yaml:"weapons"`
	Chaser  ChaserConfig  `yaml:"chaser"`
	Turret  TurretConfig  `yaml:"turret"`
	Pickups PickupConfig  `yaml:"pickups"`
	Portal  PortalConfig  `yaml:"portal"`
	Updraft UpdraftConfig `yaml:"updraft"`
	Button  ButtonConfig  `yaml:"button"`
	Gate    GateConfig    `yaml:"gate"`
	Input   InputConfig   `yaml:"input"`
}

// GridConfig defines the level grid.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

// PhysicsConfig defines integration and collision response.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	ThrustForce       float64 `yaml:"thrust_force"`
	RotationSpeed     float64 `yaml:"rotation_speed"`
	Drag              float64 `yaml:"drag"`               // Velocity multiplier per tick
	PlayerRestitution float64 `yaml:"player_restitution"` // Bounce factor on terrain
	ChaserRestitution float64 `yaml:"chaser_restitution"` // Bounce factor on terrain
	PushFactor        float64 `yaml:"push_factor"`        // Overlap multiplier, must exceed 1
	Jitter            float64 `yaml:"jitter"`             // Positional nudge for degenerate overlaps
	ResolvePasses     int     `yaml:"resolve_passes"`     // Sweeps over colliders per tick
	FallingThreshold  float64 `yaml:"falling_threshold"`  // vy above which an empty tank ends the run
	FacingThreshold   float64 `yaml:"facing_threshold"`   // |cos| needed to update facing
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Size       float64 `yaml:"size"`        // Collision box edge
	SpriteSize float64 `yaml:"sprite_size"` // Visual size, muzzle sits at half of it
}

// EconomyConfig defines the fuel/ammo/score economy.
type EconomyConfig struct {
	MaxFuel            float64 `yaml:"max_fuel"`
	MaxAmmo            int     `yaml:"max_ammo"`
	ThrustFuelCost     float64 `yaml:"thrust_fuel_cost"`
	ShootAmmoCost      int     `yaml:"shoot_ammo_cost"`
	ContactFuelLoss    float64 `yaml:"contact_fuel_loss"`
	ProjectileFuelLoss float64 `yaml:"projectile_fuel_loss"`
	FuelRefill         float64 `yaml:"fuel_refill"`
	AmmoRefill         int     `yaml:"ammo_refill"`
	ScoreAward         int     `yaml:"score_award"`
	ShieldDuration     int     `yaml:"shield_duration"`
	ChaserKillScore    int     `yaml:"chaser_kill_score"`
	TurretKillScore    int     `yaml:"turret_kill_score"`
}

// ProjectileConfig defines one projectile kind.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Lifespan int     `yaml:"lifespan"`
}

// WeaponsConfig defines projectiles and knockback.
type WeaponsConfig struct {
	Player              ProjectileConfig `yaml:"player"`
	Enemy               ProjectileConfig `yaml:"enemy"`
	ProjectileKnockback float64          `yaml:"projectile_knockback"`
	ContactKnockback    float64          `yaml:"contact_knockback"`
	ContactVelocityPart float64          `yaml:"contact_velocity_part"` // Share of knockback applied to velocity at once
	ShieldRepel         float64          `yaml:"shield_repel"`
	HitFlash            int              `yaml:"hit_flash"`
}

// ChaserConfig defines the roaming enemy.
type ChaserConfig struct {
	Health       int     `yaml:"health"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	DetectRadius float64 `yaml:"detect_radius"`
	SeekAccel    float64 `yaml:"seek_accel"`
	SpeedLimit   float64 `yaml:"speed_limit"`
}

// TurretConfig defines the stationary enemy.
type TurretConfig struct {
	Health          int     `yaml:"health"`
	SizeFactor      float64 `yaml:"size_factor"` // Of the grid cell
	FirePeriod      int     `yaml:"fire_period"`
	InitialCooldown int     `yaml:"initial_cooldown"`
	RangeCells      float64 `yaml:"range_cells"`
	IdleDrift       float64 `yaml:"idle_drift"`
}

// PickupConfig defines collectibles.
type PickupConfig struct {
	Size float64 `yaml:"size"`
}

// PortalConfig defines the level exit.
type PortalConfig struct {
	SizeFactor          float64 `yaml:"size_factor"`
	CollisionSizeFactor float64 `yaml:"collision_size_factor"`
}

// UpdraftConfig defines rising air columns.
type UpdraftConfig struct {
	HeightCells     float64 `yaml:"height_cells"`
	StrengthGravity float64 `yaml:"strength_gravity"` // Multiple of gravity
}

// ButtonConfig defines pressure plates.
type ButtonConfig struct {
	SizeFactor     float64 `yaml:"size_factor"`
	PlateWidth     float64 `yaml:"plate_width"`     // Fraction of button size
	PlateHeight    float64 `yaml:"plate_height"`    // Fraction of button size
	PlateOffset    float64 `yaml:"plate_offset"`    // Plate centre above button centre, fraction of size
	PressTolerance float64 `yaml:"press_tolerance"` // Fraction of player size
	MaxRiseSpeed   float64 `yaml:"max_rise_speed"`  // Upward speed above which a press is ignored
	PressDepth     float64 `yaml:"press_depth"`     // Visual sink, fraction of size
	Smoothing      float64 `yaml:"smoothing"`
}

// GateConfig defines button-linked gates.
type GateConfig struct {
	Smoothing float64 `yaml:"smoothing"`
}

// InputConfig defines how the terminal front-end turns key repeats into held actions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values yield "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
