package config

import (
	_ "embed"
)

//go:embed defaults/thrust.yaml
var defaultThrustYAML []byte

// DefaultThrustConfig returns the default thrust configuration.
func DefaultThrustConfig() ThrustConfig {
	return ThrustConfig{
		Grid: GridConfig{
			CellSize: 40,
		},
		Physics: PhysicsConfig{
			Gravity:           0.08,
			ThrustForce:       0.2,
			RotationSpeed:     0.05,
			Drag:              0.99,
			PlayerRestitution: 0.3,
			ChaserRestitution: 0.8,
			PushFactor:        1.01,
			Jitter:            0.2,
			ResolvePasses:     3,
			FallingThreshold:  0.01,
			FacingThreshold:   0.1,
		},
		Player: PlayerConfig{
			Size:       20,
			SpriteSize: 25,
		},
		Economy: EconomyConfig{
			MaxFuel:            1000,
			MaxAmmo:            20,
			ThrustFuelCost:     0.75,
			ShootAmmoCost:      1,
			ContactFuelLoss:    50,
			ProjectileFuelLoss: 30,
			FuelRefill:         350,
			AmmoRefill:         8,
			ScoreAward:         50,
			ShieldDuration:     300, // 5 seconds at 60fps
			ChaserKillScore:    100,
			TurretKillScore:    150,
		},
		Weapons: WeaponsConfig{
			Player: ProjectileConfig{
				Speed:    12,
				Radius:   4,
				Lifespan: 180,
			},
			Enemy: ProjectileConfig{
				Speed:    5,
				Radius:   5,
				Lifespan: 240,
			},
			ProjectileKnockback: 2,
			ContactKnockback:    6,
			ContactVelocityPart: 0.25,
			ShieldRepel:         3,
			HitFlash:            10,
		},
		Chaser: ChaserConfig{
			Health:       3,
			MinSize:      25,
			MaxSize:      35,
			MinSpeed:     0.5,
			MaxSpeed:     1.5,
			DetectRadius: 300,
			SeekAccel:    0.1,
			SpeedLimit:   1.8,
		},
		Turret: TurretConfig{
			Health:          5,
			SizeFactor:      0.8,
			FirePeriod:      120, // 2 seconds at 60fps
			InitialCooldown: 0,
			RangeCells:      7,
			IdleDrift:       0.005,
		},
		Pickups: PickupConfig{
			Size: 18,
		},
		Portal: PortalConfig{
			SizeFactor:          0.7,
			CollisionSizeFactor: 0.5,
		},
		Updraft: UpdraftConfig{
			HeightCells:     3,
			StrengthGravity: 2.5,
		},
		Button: ButtonConfig{
			SizeFactor:     0.8,
			PlateWidth:     0.9,
			PlateHeight:    0.3,
			PlateOffset:    0.25,
			PressTolerance: 0.25,
			MaxRiseSpeed:   0.8,
			PressDepth:     0.2,
			Smoothing:      0.2,
		},
		Gate: GateConfig{
			Smoothing: 0.1,
		},
		Input: InputConfig{
			HoldTicks: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "thrust":
		return defaultThrustYAML
	default:
		return nil
	}
}
