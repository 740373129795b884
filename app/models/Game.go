package models

type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseRatRace   Phase = "ratRace"
	PhaseFastTrack Phase = "fastTrack"
)

// Piles is the live draw pile (front = next draw) and the discard pile.
type Piles struct {
	Deck           []Card `json:"deck"`
	DiscardedCards []Card `json:"discardedCards"`
}

type GameState struct {
	Players            []Player     `json:"players"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	Turn               int          `json:"turn"`
	Phase              Phase        `json:"phase"`
	Board              []BoardSpace `json:"board"`
	Piles
	GameOver bool   `json:"gameOver"`
	Winner   *int   `json:"winner"`
	SavedAt  string `json:"savedAt,omitempty"`
}

// PlayerIndex returns the slice index of the player with the given id, or -1.
func (s GameState) PlayerIndex(id int) int {
	for i, p := range s.Players {
		if p.Id == id {
			return i
		}
	}
	return -1
}

func (s GameState) Player(id int) (Player, bool) {
	if i := s.PlayerIndex(id); i != -1 {
		return s.Players[i], true
	}
	return Player{}, false
}

func (s GameState) CurrentPlayer() (Player, bool) {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return Player{}, false
	}
	return s.Players[s.CurrentPlayerIndex], true
}

// WithPlayer returns a copy of the state whose player list holds p in place of
// the record with the same id. Sibling records are shared, not copied.
func (s GameState) WithPlayer(p Player) GameState {
	i := s.PlayerIndex(p.Id)
	if i == -1 {
		return s
	}
	players := make([]Player, len(s.Players))
	copy(players, s.Players)
	players[i] = p
	s.Players = players
	return s
}

// Game is the lobby row kept in postgres.
type Game struct {
	Id     string
	Name   string
	Status string
	Type   string
	Winner string
}

type GameCreateDto struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
}

type VerifyGameDto struct {
	Code string `query:"code" validate:"required"`
}

type InitializeGameDto struct {
	Players []PlayerSetup `json:"players" validate:"required,min=1,dive"`
}

type SaveSummary struct {
	Slot    int      `json:"slot"`
	SavedAt string   `json:"savedAt"`
	Players []string `json:"players"`
}

const (
	GameWaiting    = "waiting"
	GameInProgress = "in progress"
	GameFinished   = "finished"
)
