package game

// Result reports how an action ended. Anything but Ok leaves the state as it was.
type Result int

const (
	Ok Result = iota
	PlayerNotFound
	InsufficientFunds
	NoChange
	InvalidCard
	GameOver
	NotYourTurn
)

var resultNames = map[Result]string{
	Ok:                "ok",
	PlayerNotFound:    "player-not-found",
	InsufficientFunds: "insufficient-funds",
	NoChange:          "no-change",
	InvalidCard:       "invalid-card",
	GameOver:          "game-over",
	NotYourTurn:       "not-your-turn",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return "unknown"
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
