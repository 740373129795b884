package game

import (
	"math/rand/v2"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/board"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/DedS3t/cashflow-backend/platform/deck"
)

// InitialState is a game in the setup phase with a freshly shuffled deck.
func InitialState(c *catalog.Catalog, r *rand.Rand) models.GameState {
	return models.GameState{
		Players: []models.Player{},
		Turn:    1,
		Phase:   models.PhaseSetup,
		Board:   board.LoadSpaces(),
		Piles:   deck.New(c, r),
	}
}

// InitializeGame seats the players (ids 1..n in the given order) and starts the rat race.
func InitializeGame(s models.GameState, setups []models.PlayerSetup) models.GameState {
	players := make([]models.Player, 0, len(setups))
	for i, setup := range setups {
		players = append(players, models.Player{
			Id:            i + 1,
			Name:          setup.Name,
			Color:         setup.Color,
			Job:           setup.Job,
			Insurance:     setup.Insurance,
			Cash:          setup.Savings,
			Income:        setup.Salary,
			Expenses:      setup.Expenses,
			Assets:        []models.Asset{},
			Liabilities:   []models.Liability{},
			TotalExpenses: setup.Expenses,
			LoanApproval:  true,
			Salary:        setup.Salary,
			Savings:       setup.Savings,
		})
	}
	s.Players = players
	s.Phase = models.PhaseRatRace
	s.CurrentPlayerIndex = 0
	s.Turn = 1
	s.GameOver = false
	s.Winner = nil
	return s
}

// Track is the board a player is on. It follows the player's own fast-track
// flag, not the game-wide phase.
func Track(p models.Player) models.Phase {
	if p.FastTrack {
		return models.PhaseFastTrack
	}
	return models.PhaseRatRace
}

func MovePlayer(s models.GameState, id int, spaces int) (models.GameState, Result) {
	size := len(s.Board)
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Position = board.Wrap(p.Position, spaces, size)
		return Ok
	})
}

func MoveFastTrackPlayer(s models.GameState, id int, spaces int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Position = board.Wrap(p.Position, spaces, board.FastTrackSize)
		return Ok
	})
}

// EnterFastTrack moves the player to the start of the fast track. The
// game-wide phase records that the fast track has been reached by someone.
func EnterFastTrack(s models.GameState, id int) (models.GameState, Result) {
	s, res := updatePlayer(s, id, func(p *models.Player) Result {
		p.FastTrack = true
		p.Position = 0
		return Ok
	})
	if res == Ok {
		s.Phase = models.PhaseFastTrack
	}
	return s, res
}

func NextPlayer(s models.GameState) models.GameState {
	if len(s.Players) == 0 {
		return s
	}
	s.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
	if s.CurrentPlayerIndex == 0 {
		s.Turn++
	}
	return s
}

func ProcessFastTrackPayday(s models.GameState, id int, multiplier int) (models.GameState, Result) {
	return updatePlayer(s, id, func(p *models.Player) Result {
		p.Cash += p.PassiveIncome * multiplier
		return Ok
	})
}

// DrawCard draws from the game's piles; see deck.Draw.
func DrawCard(s models.GameState, r *rand.Rand) (models.GameState, models.Card, bool) {
	piles, card, ok := deck.Draw(s.Piles, r)
	s.Piles = piles
	return s, card, ok
}

// RollDice sums n six-sided dice.
func RollDice(r *rand.Rand, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.IntN(6) + 1
	}
	return total
}

type SpaceOutcome struct {
	Space models.BoardSpace `json:"space"`
	Card  *models.Card      `json:"card,omitempty"`
}

// ResolveSpace applies the rat-race space under the player. Card spaces draw
// from the shared deck and hand the card back; charity needs the player's consent
// and is left to ProcessCharity.
func ResolveSpace(s models.GameState, id int, r *rand.Rand) (models.GameState, SpaceOutcome, Result) {
	p, ok := s.Player(id)
	if !ok {
		return s, SpaceOutcome{}, PlayerNotFound
	}
	space, err := board.GetByPos(p.Position, s.Board)
	if err != nil {
		return s, SpaceOutcome{}, NoChange
	}
	out := SpaceOutcome{Space: space}

	switch space.Type {
	case models.SpacePayday:
		s, _ = ProcessPayday(s, id)
		s, _ = ProcessCharityBenefit(s, id)
	case models.SpaceChild:
		s, _ = ProcessChild(s, id)
	case models.SpaceDownsize:
		s, _ = ProcessDownsize(s, id)
	case models.SpaceOpportunity, models.SpaceLiability, models.SpaceOffer:
		var card models.Card
		if s, card, ok = DrawCard(s, r); ok {
			out.Card = &card
		}
	default:
		return s, out, NoChange
	}
	return s, out, Ok
}
