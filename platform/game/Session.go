package game

import (
	"math/rand/v2"
	"sync"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/board"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	log "github.com/sirupsen/logrus"
)

// Saver persists whole game states. saves.Adapter implements it.
type Saver interface {
	Save(slot int, state models.GameState) bool
	Load(slot int) (models.GameState, bool)
	AutoSave(state models.GameState) bool
	LoadAutoSave() (models.GameState, bool)
	HasAutoSave() bool
	ListSaves() []models.SaveSummary
	DeleteSave(slot int) bool
}

// Session owns the current state of one game. Every action is one
// read-modify-write of the whole state under the session lock.
type Session struct {
	mu       sync.Mutex
	id       string
	state    models.GameState
	catalog  *catalog.Catalog
	rng      *rand.Rand
	saver    Saver
	onChange func(id string, state models.GameState)
}

func NewSession(id string, c *catalog.Catalog, r *rand.Rand, saver Saver) *Session {
	return &Session{
		id:      id,
		state:   InitialState(c, r),
		catalog: c,
		rng:     r,
		saver:   saver,
	}
}

// OnChange registers a callback run after every committed transition.
func (s *Session) OnChange(fn func(id string, state models.GameState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) State() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// commit must be called with s.mu held.
func (s *Session) commit(next models.GameState) {
	wasOver := s.state.GameOver
	s.state = next
	if next.GameOver && !wasOver {
		entry := log.WithField("game", s.id)
		if next.Winner != nil {
			entry = entry.WithField("winner", *next.Winner)
		}
		entry.Info("game over")
	}
	if s.onChange != nil {
		s.onChange(s.id, next)
	}
}

// Apply runs a ledger or turn handler against the current state.
func (s *Session) Apply(action func(models.GameState) (models.GameState, Result)) (models.GameState, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, res := action(s.state)
	if res == Ok {
		s.commit(next)
	}
	return s.state, res
}

// Check runs one of the Check* handlers and returns its verdict. The state
// is only committed when the check flagged something new.
func (s *Session) Check(check func(models.GameState, int) (models.GameState, bool), playerId int) (models.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := check(s.state, playerId)
	if checkChanged(s.state, next, playerId) {
		s.commit(next)
	}
	return s.state, ok
}

// checkChanged compares the fields the Check* handlers may set.
func checkChanged(prev, next models.GameState, playerId int) bool {
	if prev.GameOver != next.GameOver || winnerOf(prev) != winnerOf(next) {
		return true
	}
	a, _ := prev.Player(playerId)
	b, _ := next.Player(playerId)
	return a.IsBankrupt != b.IsBankrupt || a.FastTrack != b.FastTrack || a.PassiveIncome != b.PassiveIncome
}

func winnerOf(s models.GameState) int {
	if s.Winner == nil {
		return 0
	}
	return *s.Winner
}

func (s *Session) Initialize(setups []models.PlayerSetup) models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(InitializeGame(s.state, setups))
	return s.state
}

func (s *Session) NextPlayer() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(NextPlayer(s.state))
	return s.state
}

func (s *Session) DrawCard() (models.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, card, ok := DrawCard(s.state, s.rng)
	s.commit(next)
	return card, ok
}

func (s *Session) RollDice(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RollDice(s.rng, n)
}

// EndTurn passes the turn on, but only for the player holding it.
func (s *Session) EndTurn(playerId int) (models.GameState, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.GameOver {
		return s.state, GameOver
	}
	if cur, ok := s.state.CurrentPlayer(); !ok || cur.Id != playerId {
		return s.state, NotYourTurn
	}
	s.commit(NextPlayer(s.state))
	return s.state, Ok
}

// Reset throws the game away and starts over in the setup phase.
func (s *Session) Reset() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(InitialState(s.catalog, s.rng))
	return s.state
}

func (s *Session) Save(slot int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saver.Save(slot, s.state)
}

// Load replaces the whole state with the slot's contents. The state is
// untouched when the slot is empty or unreadable.
func (s *Session) Load(slot int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	loaded, ok := s.saver.Load(slot)
	if ok {
		s.commit(loaded)
	}
	return ok
}

func (s *Session) AutoSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saver.AutoSave(s.state)
}

func (s *Session) LoadAutoSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	loaded, ok := s.saver.LoadAutoSave()
	if ok {
		s.commit(loaded)
	}
	return ok
}

func (s *Session) HasAutoSave() bool {
	return s.saver.HasAutoSave()
}

func (s *Session) ListSaves() []models.SaveSummary {
	return s.saver.ListSaves()
}

func (s *Session) DeleteSave(slot int) bool {
	return s.saver.DeleteSave(slot)
}

// TurnReport describes what happened during PlayTurn.
type TurnReport struct {
	PlayerId  int              `json:"playerId"`
	Roll      int              `json:"roll"`
	Skipped   bool             `json:"skipped"`
	Outcome   *SpaceOutcome    `json:"outcome,omitempty"`
	Payday    bool             `json:"payday"`
	Bankrupt  bool             `json:"bankrupt"`
	FastTrack bool             `json:"fastTrack"`
	Won       bool             `json:"won"`
	State     models.GameState `json:"state"`
}

// PlayTurn runs one full turn for the current player: move by roll, resolve
// where they land, run the end-of-turn checks, pass to the next player and
// auto-save. Doodads drawn on the way are paid immediately; deals and offers
// come back in the report for the player to decide on.
func (s *Session) PlayTurn(playerId int, roll int) (TurnReport, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	report := TurnReport{PlayerId: playerId, Roll: roll}
	if st.GameOver {
		report.State = st
		return report, GameOver
	}
	p, ok := st.Player(playerId)
	if !ok {
		report.State = st
		return report, PlayerNotFound
	}
	if cur, ok := st.CurrentPlayer(); !ok || cur.Id != playerId {
		report.State = st
		return report, NotYourTurn
	}

	switch {
	case p.IsBankrupt:
		report.Skipped = true
	case p.IsDownsized:
		st, _ = TickDownsize(st, playerId)
		report.Skipped = true
	case p.FastTrack:
		st, _ = MoveFastTrackPlayer(st, playerId, roll)
		if p.Position+roll >= board.FastTrackSize {
			st, _ = ProcessFastTrackPayday(st, playerId, 1)
			report.Payday = true
		}
		st, report.Won = CheckWinCondition(st, playerId)
	default:
		st, _ = MovePlayer(st, playerId, roll)
		var outcome SpaceOutcome
		var res Result
		st, outcome, res = ResolveSpace(st, playerId, s.rng)
		if res == Ok {
			report.Outcome = &outcome
			report.Payday = outcome.Space.Type == models.SpacePayday
			if outcome.Card != nil && outcome.Card.Type == models.CardDoodad {
				st, _ = ApplyDoodad(st, playerId, *outcome.Card)
			}
		}
		st, report.Bankrupt = CheckBankruptcy(st, playerId)
		if !report.Bankrupt {
			var eligible bool
			if st, eligible = CheckFastTrackEligibility(st, playerId); eligible && !p.FastTrack {
				st, _ = EnterFastTrack(st, playerId)
				report.FastTrack = true
			}
		}
	}

	if !st.GameOver {
		st = NextPlayer(st)
	}
	s.commit(st)
	if !s.saver.AutoSave(st) {
		log.WithField("game", s.id).Warn("auto-save after turn failed")
	}
	report.State = s.state
	return report, Ok
}
