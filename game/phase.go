package game

// Phase is where a run is in its lifecycle
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// EventKind names something that happened during a tick
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventPickup
	EventCrash
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventPickup:
		return "pickup"
	case EventCrash:
		return "crash"
	case EventRestarted:
		return "restarted"
	}
	return "unknown"
}

// Event is one notification. ID is the coin or car involved, if any.
type Event struct {
	Kind  EventKind
	ID    int
	Bonus float64
}

// Hooks are called synchronously from Tick and Restart, once per event.
// Any of them may be nil.
type Hooks struct {
	OnPhaseChange func(from, to Phase)
	OnPickup      func(coinID int, bonus float64)
	OnGameOver    func(result Result)
}
