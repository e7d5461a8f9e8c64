package sim

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-thrust/internal/config"
)

func newTestEngine(t *testing.T, levels ...[]string) *Engine {
	t.Helper()
	defs := make([]LevelDef, len(levels))
	for i, rows := range levels {
		defs[i] = LevelDef{ID: fmt.Sprintf("test-%d", i), Name: fmt.Sprintf("Test %d", i), Rows: rows}
	}
	e, err := NewEngine(config.DefaultThrustConfig(), defs, 1)
	require.NoError(t, err)
	return e
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewEngineRequiresLevels(t *testing.T) {
	_, err := NewEngine(config.DefaultThrustConfig(), nil, 1)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestEngineSpawnsPlayer(t *testing.T) {
	e := newTestEngine(t, []string{"...", ".P.", "..G"})
	p := e.World().Player

	assert.Equal(t, V(60, 60), p.Pos)
	assert.Equal(t, Vec2{}, p.Vel)
	assert.InDelta(t, -math.Pi/2, p.Angle, 1e-9)
	assert.Equal(t, 1, p.Facing)
	assert.Equal(t, StatusPlaying, e.Run().Status)
	assert.InDelta(t, 1000.0, e.Run().Fuel, 1e-9)
	assert.Equal(t, 20, e.Run().Ammo)
}

func TestPlayerRotationFacing(t *testing.T) {
	p := NewPlayer(V(0, 0), config.DefaultThrustConfig().Player)

	for range 10 {
		p.Rotate(-0.05, 0.1)
	}
	assert.Equal(t, -1, p.Facing)

	for range 20 {
		p.Rotate(0.05, 0.1)
	}
	assert.Equal(t, 1, p.Facing)
}

func TestThrustSpendsFuel(t *testing.T) {
	e := newTestEngine(t, []string{"P"})

	e.Step(Intent{Thrust: true})

	p := e.World().Player
	assert.True(t, p.Thrusting)
	assert.InDelta(t, 999.25, e.Run().Fuel, 1e-9)
	// gravity 0.08 minus thrust 0.2 straight up, then drag
	assert.InDelta(t, -0.12*0.99, p.Vel.Y, 1e-9)
}

func TestThrustWithoutFuel(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	e.run.Fuel = 0
	e.world.Player.Vel = V(0, -3)

	e.Step(Intent{Thrust: true})

	assert.False(t, e.World().Player.Thrusting)
	assert.InDelta(t, (-3+0.08)*0.99, e.World().Player.Vel.Y, 1e-9)
	assert.Equal(t, StatusPlaying, e.Run().Status, "rising ship is not out yet")
}

func TestProjectileLifespan(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	life := e.Config().Weapons.Player.Lifespan

	events := e.Step(Intent{Fire: true})
	assert.True(t, hasEvent(events, EventShot))
	assert.Equal(t, 19, e.Run().Ammo)
	require.Len(t, e.World().Bullets, 1)

	// Advanced once during the firing tick; survives L advances in total
	// and is removed on advance L+1.
	for i := 2; i <= life; i++ {
		e.Step(Intent{})
		require.Len(t, e.World().Bullets, 1, "advance %d", i)
	}
	e.Step(Intent{})
	assert.Empty(t, e.World().Bullets)
}

func TestFireNeedsAmmo(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	e.run.Ammo = 0

	events := e.Step(Intent{Fire: true})

	assert.Empty(t, e.World().Bullets)
	assert.False(t, hasEvent(events, EventShot))
	assert.Equal(t, 0, e.Run().Ammo)
}

func TestMuzzleFollowsFacing(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	e.world.Player.Facing = -1

	e.Step(Intent{Fire: true})

	require.Len(t, e.World().Bullets, 1)
	b := e.World().Bullets[0]
	assert.InDelta(t, -12.0, b.Vel.X, 1e-9)
	assert.InDelta(t, 20-12.5-12, b.Pos.X, 1e-9)
}

func gateLevel() []string {
	return []string{
		"XXXXXXXXXX",
		"X......B1X",
		"XP...D1..X",
		"XXXXXXXXXX",
	}
}

func TestClosedGateBlocksProjectiles(t *testing.T) {
	e := newTestEngine(t, gateLevel())
	gate := e.World().GateAt(1)
	require.NotNil(t, gate)

	e.Step(Intent{Fire: true})
	maxX := 0.0
	for range 30 {
		for _, b := range e.World().Bullets {
			maxX = math.Max(maxX, b.Pos.X)
		}
		e.Step(Intent{})
	}

	assert.False(t, gate.Open)
	assert.Empty(t, e.World().Bullets)
	assert.Less(t, maxX, gate.Area.Min().X)
}

func TestOpenGateLetsProjectilesThrough(t *testing.T) {
	e := newTestEngine(t, gateLevel())
	gate := e.World().GateAt(1)
	require.NotNil(t, gate)

	e.World().Buttons[0].Pressed = true
	events := e.Step(Intent{})
	assert.True(t, hasEvent(events, EventGateOpened))
	assert.True(t, gate.Open)

	e.Step(Intent{Fire: true})
	maxX := 0.0
	for range 30 {
		for _, b := range e.World().Bullets {
			maxX = math.Max(maxX, b.Pos.X)
		}
		e.Step(Intent{})
	}

	assert.Greater(t, maxX, gate.Area.Max().X)
	assert.Empty(t, e.World().Bullets, "stopped by the far wall")
	assert.True(t, gate.Open, "buttons never release")
}

func TestPlayerPressesButton(t *testing.T) {
	e := newTestEngine(t, []string{
		"XXXXX",
		"X.P.X",
		"X.B2X",
		"XXXXX",
		"..D2.",
	})
	cfg := e.Config().Button
	b := e.World().Buttons[0]
	p := e.World().Player
	p.Pos = V(b.Pos.X, b.PlateTop(cfg)-p.Size/2)

	events := e.Step(Intent{})

	assert.True(t, hasEvent(events, EventButtonPressed))
	assert.True(t, hasEvent(events, EventGateOpened))
	assert.True(t, e.World().GateAt(2).Open)
}

func TestContactWithoutShield(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	p := e.World().Player
	e.run.Fuel = 100
	e.world.Enemies = append(e.world.Enemies, &Enemy{Kind: EnemyChaser, Pos: p.Pos.Add(V(-15, 0)), Size: 30, Health: 3})

	events := e.Step(Intent{})

	assert.True(t, hasEvent(events, EventPlayerContact))
	assert.InDelta(t, 50.0, e.Run().Fuel, 1e-9)
	assert.Greater(t, p.Vel.X, 0.0, "knocked away from the chaser")
	assert.Greater(t, p.Acc.X, 0.0)
}

func TestContactWithShield(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	p := e.World().Player
	p.ShieldTimer = 300
	e.run.Fuel = 100
	chaser := &Enemy{Kind: EnemyChaser, Pos: p.Pos.Add(V(-15, 0)), Size: 30, Health: 3}
	e.world.Enemies = append(e.world.Enemies, chaser)

	events := e.Step(Intent{})

	assert.False(t, hasEvent(events, EventPlayerContact))
	assert.InDelta(t, 100.0, e.Run().Fuel, 1e-9)
	assert.Less(t, chaser.Vel.X, 0.0, "chaser pushed away")
	assert.Equal(t, 299, p.ShieldTimer)
}

func TestPickups(t *testing.T) {
	tests := []struct {
		kind  PickupKind
		setup func(e *Engine)
		check func(t *testing.T, e *Engine)
	}{
		{PickupFuel, func(e *Engine) { e.run.Fuel = e.run.MaxFuel - 10 }, func(t *testing.T, e *Engine) {
			assert.InDelta(t, e.run.MaxFuel, e.Run().Fuel, 1e-9)
		}},
		{PickupAmmo, func(e *Engine) { e.run.Ammo = 5 }, func(t *testing.T, e *Engine) {
			assert.Equal(t, 13, e.Run().Ammo)
		}},
		{PickupScore, func(e *Engine) {}, func(t *testing.T, e *Engine) {
			assert.Equal(t, 50, e.Run().Score)
		}},
		{PickupShield, func(e *Engine) {}, func(t *testing.T, e *Engine) {
			assert.Equal(t, 300, e.World().Player.ShieldTimer)
			assert.True(t, e.World().Player.ShieldActive())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := newTestEngine(t, []string{"P"})
			tt.setup(e)
			p := e.World().Player
			e.world.Pickups = append(e.world.Pickups, &Pickup{Kind: tt.kind, Pos: p.Pos, Size: 18})

			events := e.Step(Intent{})

			assert.True(t, hasEvent(events, EventPickup))
			assert.Empty(t, e.World().Pickups)
			tt.check(t, e)
		})
	}
}

func TestTurretSpawnsLevel(t *testing.T) {
	e := newTestEngine(t, []string{"P..........T3"})

	require.Len(t, e.World().Enemies, 1)
	tur := e.World().Enemies[0].Turret
	require.NotNil(t, tur)
	assert.Equal(t, 3, tur.ID)
	assert.Equal(t, 0.0, tur.Angle)
	assert.Equal(t, TurretIdle, tur.Mode)
}

func TestTurretShootsPlayer(t *testing.T) {
	e := newTestEngine(t, []string{"P.T1"})

	events := e.Step(Intent{})
	require.True(t, hasEvent(events, EventTurretFired))
	require.Len(t, e.World().EnemyBullets, 1)
	assert.Less(t, e.World().EnemyBullets[0].Vel.X, 0.0)

	hit := false
	for range 30 {
		if hasEvent(e.Step(Intent{}), EventPlayerHit) {
			hit = true
			break
		}
	}
	assert.True(t, hit)
	assert.InDelta(t, 970.0, e.Run().Fuel, 1e-9)
	assert.Empty(t, e.World().EnemyBullets)
}

func TestShieldedProjectileHit(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	p := e.World().Player
	p.ShieldTimer = 300
	shot := &Projectile{Pos: p.Pos.Add(V(-8, 0)), Vel: V(1, 0), Rad: 5, Life: 240}
	e.world.EnemyBullets = append(e.world.EnemyBullets, shot)

	events := e.Step(Intent{})

	assert.True(t, hasEvent(events, EventPlayerHit))
	assert.InDelta(t, 1000.0, e.Run().Fuel, 1e-9, "shield absorbs the fuel loss")
	assert.Greater(t, p.Acc.X, 0.0, "knocked away from the shot")
	assert.Empty(t, e.World().EnemyBullets)
}

func TestShotHitsLastOverlappingEnemy(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	p := e.World().Player
	for range 2 {
		e.world.Enemies = append(e.world.Enemies, &Enemy{
			Kind:   EnemyTurret,
			Pos:    p.Pos.Add(V(60, 0)),
			Size:   30,
			Health: 5,
			Turret: &Turret{FirePeriod: 120, Cooldown: 120, Range: 280},
		})
	}
	first, second := e.world.Enemies[0], e.world.Enemies[1]

	e.Step(Intent{Fire: true})
	hit := false
	for range 10 {
		if hasEvent(e.Step(Intent{}), EventEnemyHit) {
			hit = true
			break
		}
	}

	require.True(t, hit)
	assert.Equal(t, 5, first.Health)
	assert.Equal(t, 4, second.Health)
}

func TestKillScores(t *testing.T) {
	tests := []struct {
		kind  EnemyKind
		score int
	}{
		{EnemyChaser, 100},
		{EnemyTurret, 150},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := newTestEngine(t, []string{"P"})
			p := e.World().Player
			en := &Enemy{Kind: tt.kind, Pos: p.Pos.Add(V(60, 0)), Size: 30, Health: 1}
			if tt.kind == EnemyTurret {
				en.Turret = &Turret{FirePeriod: 120, Cooldown: 120, Range: 280}
			}
			e.world.Enemies = append(e.world.Enemies, en)

			e.Step(Intent{Fire: true})
			killed := false
			for range 10 {
				if hasEvent(e.Step(Intent{}), EventEnemyKilled) {
					killed = true
					break
				}
			}

			assert.True(t, killed)
			assert.Empty(t, e.World().Enemies)
			assert.Equal(t, tt.score, e.Run().Score)
		})
	}
}

func TestUpdraftLiftsPlayer(t *testing.T) {
	e := newTestEngine(t, []string{"...", ".P.", ".U."})

	e.Step(Intent{})

	assert.InDelta(t, -0.08*2.5, e.World().Player.Acc.Y, 1e-9)
}

func TestGameOverWhenFallingWithoutFuel(t *testing.T) {
	e := newTestEngine(t, []string{"P"})
	e.run.Fuel = 0

	events := e.Step(Intent{})

	assert.True(t, hasEvent(events, EventGameOver))
	assert.Equal(t, StatusLost, e.Run().Status)

	tick := e.Run().Tick
	assert.Nil(t, e.Step(Intent{Thrust: true}))
	assert.Equal(t, tick, e.Run().Tick, "finished run does not advance")
}

func TestLandingIsGroundedAndNeverPenetrates(t *testing.T) {
	e := newTestEngine(t, []string{"P", ".", "X"})
	floor := e.World().Terrain[0]

	grounded := false
	for range 200 {
		e.Step(Intent{})
		require.False(t, e.World().Player.Bounds().Intersects(floor))
		if e.World().Player.Grounded {
			grounded = true
		}
	}
	require.True(t, grounded)

	e.run.Fuel = 0
	for range 200 {
		if e.Run().Over() {
			break
		}
		e.Step(Intent{})
	}
	assert.Equal(t, StatusLost, e.Run().Status)
}

func TestExitAdvancesLevelThenWins(t *testing.T) {
	e := newTestEngine(t, []string{"PG"}, []string{"..", "PG"})
	e.Step(Intent{Fire: true})
	e.run.Score = 70

	p := e.world.Player
	p.ShieldTimer = 250
	p.Angle = 1.3
	p.Facing = -1
	p.Pos = e.world.Exit.Pos
	events := e.Step(Intent{})

	assert.True(t, hasEvent(events, EventLevelComplete))
	assert.True(t, hasEvent(events, EventLevelStart))
	assert.Equal(t, 1, e.Run().Level)
	assert.Equal(t, "Test 1", e.Level().Name)
	assert.Equal(t, V(20, 60), e.World().Player.Pos)
	assert.Equal(t, Vec2{}, e.World().Player.Vel)
	assert.Equal(t, 0, p.ShieldTimer, "shield does not carry over")
	assert.InDelta(t, -math.Pi/2, p.Angle, 1e-9)
	assert.Equal(t, 1, p.Facing)
	assert.Empty(t, e.World().Bullets, "level content replaced")
	assert.Equal(t, 70, e.Run().Score, "score carries over")
	assert.Equal(t, 19, e.Run().Ammo, "ammo carries over")

	e.world.Player.Pos = e.world.Exit.Pos
	events = e.Step(Intent{})

	assert.True(t, hasEvent(events, EventWon))
	assert.Equal(t, StatusWon, e.Run().Status)
	assert.Nil(t, e.Step(Intent{}))
}

func TestEmptyTankCheckedAfterLevelChange(t *testing.T) {
	e := newTestEngine(t, []string{"PG", "XX"}, []string{"PG", "XX"})
	e.run.Fuel = 0
	p := e.world.Player
	p.Pos = V(e.world.Exit.Pos.X, 30.5)
	p.Vel = V(0, 1)

	events := e.Step(Intent{})

	assert.True(t, hasEvent(events, EventLevelStart))
	assert.Equal(t, 1, e.Run().Level)
	assert.True(t, hasEvent(events, EventGameOver))
	assert.Equal(t, StatusLost, e.Run().Status)
}

func TestLevelWithoutPlayerKeepsPosition(t *testing.T) {
	e := newTestEngine(t, []string{"PG"}, []string{"...", "..G"})
	e.world.Player.Pos = e.world.Exit.Pos
	e.world.Player.Vel = V(3, 3)

	e.Step(Intent{})

	require.Equal(t, 1, e.Run().Level)
	assert.Equal(t, Vec2{}, e.World().Player.Vel)
	assert.NotEqual(t, Vec2{}, e.World().Player.Pos)
}

func TestRestart(t *testing.T) {
	e := newTestEngine(t, []string{"PG"}, []string{"PG"})
	e.run.Score = 500
	e.run.Fuel = 3
	e.run.Ammo = 1
	e.run.Level = 1
	e.run.Status = StatusLost

	e.Restart(0)

	run := e.Run()
	assert.Equal(t, 0, run.Score)
	assert.InDelta(t, run.MaxFuel, run.Fuel, 1e-9)
	assert.Equal(t, run.MaxAmmo, run.Ammo)
	assert.Equal(t, 0, run.Level)
	assert.Equal(t, StatusPlaying, run.Status)

	e.Restart(99)
	assert.Equal(t, 1, e.Run().Level)
}

var busyLevel = []string{
	"XXXXXXXXXXXXXXX",
	"X.....E.......X",
	"X.P.......T1..X",
	"X...XXX.......X",
	"X..E....U..B1.X",
	"X.F.A.S.H.D1.GX",
	"XXXXXXXXXXXXXXX",
}

func scriptedIntent(tick int) Intent {
	return Intent{
		RotateLeft:  tick%40 < 10,
		RotateRight: tick%40 >= 20 && tick%40 < 28,
		Thrust:      tick%3 != 0,
		Fire:        tick%25 == 0,
	}
}

func TestEngineDeterminism(t *testing.T) {
	a := newTestEngine(t, busyLevel)
	b := newTestEngine(t, busyLevel)

	var hashes []uint64
	for tick := range 600 {
		a.Step(scriptedIntent(tick))
		b.Step(scriptedIntent(tick))

		sa, sb := a.Snapshot(), b.Snapshot()
		require.Equal(t, sa.Hash(), sb.Hash(), "diverged at tick %d", tick)
		hashes = append(hashes, sa.Hash())
	}

	// A restart replays the same run.
	a.Restart(0)
	for tick := range 600 {
		a.Step(scriptedIntent(tick))
		snap := a.Snapshot()
		require.Equal(t, hashes[tick], snap.Hash(), "replay diverged at tick %d", tick)
	}
}

func TestSeedChangesChasers(t *testing.T) {
	defs := []LevelDef{{ID: "busy", Name: "Busy", Rows: busyLevel}}
	a, err := NewEngine(config.DefaultThrustConfig(), defs, 1)
	require.NoError(t, err)
	b, err := NewEngine(config.DefaultThrustConfig(), defs, 2)
	require.NoError(t, err)

	sa, sb := a.Snapshot(), b.Snapshot()
	assert.NotEqual(t, sa.Enemies[0].Size, sb.Enemies[0].Size)
}

func TestSnapshotCopiesState(t *testing.T) {
	e := newTestEngine(t, busyLevel)
	snap := e.Snapshot()

	assert.Equal(t, "Test 0", snap.LevelName)
	assert.Equal(t, 1, snap.LevelCount)
	assert.Len(t, snap.Enemies, 3)
	assert.Len(t, snap.Pickups, 4)
	assert.Len(t, snap.Gates, 1)
	assert.Len(t, snap.Buttons, 1)
	assert.Len(t, snap.Updrafts, 1)
	require.NotNil(t, snap.Exit)
	assert.Equal(t, 15, snap.Cols)
	assert.Equal(t, 7, snap.Rows)

	snap.Terrain[0] = Box{}
	assert.NotEqual(t, Box{}, e.World().Terrain[0])
}
