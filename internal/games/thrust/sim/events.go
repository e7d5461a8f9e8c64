package sim

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLevelStart EventKind = iota
	EventLevelComplete
	EventShot
	EventEnemyHit
	EventEnemyKilled
	EventTurretFired
	EventPlayerHit
	EventPlayerContact
	EventPickup
	EventButtonPressed
	EventGateOpened
	EventGameOver
	EventWon
)

var eventNames = map[EventKind]string{
	EventLevelStart:    "level_start",
	EventLevelComplete: "level_complete",
	EventShot:          "shot",
	EventEnemyHit:      "enemy_hit",
	EventEnemyKilled:   "enemy_killed",
	EventTurretFired:   "turret_fired",
	EventPlayerHit:     "player_hit",
	EventPlayerContact: "player_contact",
	EventPickup:        "pickup",
	EventButtonPressed: "button_pressed",
	EventGateOpened:    "gate_opened",
	EventGameOver:      "game_over",
	EventWon:           "won",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is emitted by Step. The engine never logs; callers decide what to do with events.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Level  int
	ID     int    // Button/gate id where relevant
	Detail string // Enemy or pickup kind where relevant
}
